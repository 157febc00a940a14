package board

import mg "chess-movegen/movegen"

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Optimized to reuse per-depth buffers to avoid allocations.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]mg.Move, depth+1), gen: mg.NewGenerator()}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]mg.Move
	gen  *mg.Generator
}

func (pc *perftCtx) bufFor(depth int) []mg.Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]mg.Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	res, err := pc.gen.GenerateInto(b, pc.bufFor(depth))
	if err != nil {
		panic(err)
	}
	pc.bufs[depth] = res.Moves
	if depth == 1 {
		return uint64(len(res.Moves))
	}
	var nodes uint64
	for _, m := range res.Moves {
		if b.MakeMove(m) {
			nodes += perftRec(b, depth-1, pc)
			b.UnmakeMove()
		}
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[mg.Move]uint64 {
	result := make(map[mg.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		if b.MakeMove(m) {
			result[m] = Perft(b, depth-1)
			b.UnmakeMove()
		}
	}
	return result
}
