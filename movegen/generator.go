package movegen

import (
	"fmt"

	bb "chess-movegen/bitboard"
)

// Result is the outcome of one generation call.
type Result struct {
	Moves []Move

	// Attackers holds the enemy pieces giving check.
	Attackers     bb.Bitboard
	AttackerCount int

	// KingDanger holds every square the opponent attacks, computed with the
	// mover's king lifted off the board.
	KingDanger bb.Bitboard

	// CaptureMask and PushMask restrict non-king destinations.
	CaptureMask bb.Bitboard
	PushMask    bb.Bitboard
}

// InCheck reports whether the side to move was in check.
func (r Result) InCheck() bool { return r.AttackerCount > 0 }

// genState is the transient state of one generation call.
type genState struct {
	pos      Position
	us, them Color
	king     bb.Square

	own, enemy, occ, empty bb.Bitboard

	attackers     bb.Bitboard
	attackerCount int
	captureMask   bb.Bitboard
	pushMask      bb.Bitboard
	kingDanger    bb.Bitboard
	kingPseudo    bb.Bitboard
	pins          [64]bb.Bitboard
}

// Generator produces legal moves. The zero value is ready to use. A
// Generator reuses internal buffers between calls and must not be shared
// between goroutines; the attack tables it reads are shared and immutable.
type Generator struct {
	pieces []PlacedPiece
	st     genState
}

// NewGenerator returns a Generator with preallocated buffers.
func NewGenerator() *Generator {
	return &Generator{pieces: make([]PlacedPiece, 0, 32)}
}

// GenerateMoves returns the legal moves of pos using a fresh Generator.
func GenerateMoves(pos Position) ([]Move, error) {
	res, err := NewGenerator().Generate(pos)
	return res.Moves, err
}

// Generate returns all legal moves for the side to move in a newly
// allocated slice.
func (g *Generator) Generate(pos Position) (Result, error) {
	return g.GenerateInto(pos, make([]Move, 0, 64))
}

// GenerateInto appends all legal moves for the side to move to dst[:0] and
// returns them in Result.Moves. It fails with ErrMissingKing when the side
// to move has no king.
func (g *Generator) GenerateInto(pos Position, dst []Move) (Result, error) {
	moves := dst[:0]
	us := pos.SideToMove()
	kingBB := pos.Pieces(us, PieceTypeKing)
	if kingBB == 0 {
		return Result{}, fmt.Errorf("generate moves for %s: %w", us, ErrMissingKing)
	}

	g.st = genState{
		pos:   pos,
		us:    us,
		them:  us.Other(),
		king:  kingBB.LSB(),
		own:   pos.Occupancy(us),
		enemy: pos.Occupancy(us.Other()),
		occ:   pos.Occupied(),
		empty: pos.Empty(),
	}
	st := &g.st
	g.pieces = pos.AppendPieces(g.pieces[:0])

	st.attackers, st.attackerCount = ComputeAttackers(g.pieces, us, st.king, st.occ)
	st.captureMask, st.pushMask = DeriveMasks(st.attackers, st.attackerCount, st.king)

	// Danger squares must be rebuilt from scratch before any piece moves are emitted.
	st.kingDanger = KingDangerSquares(pos, g.pieces)

	queens := pos.Pieces(st.them, PieceTypeQueen)
	st.pins = PinLines(st.king, st.own, st.occ,
		pos.Pieces(st.them, PieceTypeRook)|queens,
		pos.Pieces(st.them, PieceTypeBishop)|queens)

	if st.attackerCount < 2 {
		moves = st.pawnMoves(moves)
		moves = st.pieceMoves(moves, g.pieces)
		moves = st.castling(moves)
	}
	moves = st.kingMoves(moves)

	res := Result{
		Moves:         moves,
		Attackers:     st.attackers,
		AttackerCount: st.attackerCount,
		KingDanger:    st.kingDanger,
		CaptureMask:   st.captureMask,
		PushMask:      st.pushMask,
	}
	st.pos = nil
	return res, nil
}

// pieceMoves walks the piece list and appends knight, bishop, rook and queen
// moves of the side to move.
func (st *genState) pieceMoves(dst []Move, pieces []PlacedPiece) []Move {
	allowed := (st.captureMask | st.pushMask) &^ st.own
	for _, pp := range pieces {
		if pp.Piece.Color() != st.us {
			continue
		}
		var targets bb.Bitboard
		switch t := pp.Piece.Type(); t {
		case PieceTypeKnight:
			targets = KnightTable[pp.Square]
		case PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
			targets = SlidingAttacks(t, pp.Square, st.occ, 0)
		default:
			continue
		}
		targets &= allowed
		if pin := st.pins[pp.Square]; pin != 0 {
			targets &= pin
		}
		dst = appendMoves(dst, pp.Piece, pp.Square, targets)
	}
	return dst
}

// kingMoves appends king steps that do not land on a danger square.
func (st *genState) kingMoves(dst []Move) []Move {
	st.kingPseudo = KingTable[st.king] &^ st.own
	safe := FilterKingMoves(st.kingPseudo, st.kingDanger)
	return appendMoves(dst, NewPiece(st.us, PieceTypeKing), st.king, safe)
}

func appendMoves(dst []Move, p Piece, from bb.Square, targets bb.Bitboard) []Move {
	for targets != 0 {
		dst = append(dst, NewMove(p, from, bb.PopLSB(&targets), SpecialNone))
	}
	return dst
}
