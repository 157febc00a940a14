package board

import (
	bb "chess-movegen/bitboard"
	mg "chess-movegen/movegen"
)

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	captured     mg.Piece
	prevCastling mg.CastlingRights
	prevHalfmove int
	prevFullmove int
	prevZobrist  uint64
}

// castleRookSquares maps a castling king destination to the rook's from and to squares.
var castleRookSquares = map[bb.Square][2]bb.Square{
	bb.G1: {bb.H1, bb.F1},
	bb.C1: {bb.A1, bb.D1},
	bb.G8: {bb.H8, bb.F8},
	bb.C8: {bb.A8, bb.D8},
}

// castlingLoss[sq] holds the rights lost when a piece leaves or lands on sq.
var castlingLoss [64]mg.CastlingRights

func init() {
	castlingLoss[bb.E1] = mg.CastlingWhiteK | mg.CastlingWhiteQ
	castlingLoss[bb.H1] = mg.CastlingWhiteK
	castlingLoss[bb.A1] = mg.CastlingWhiteQ
	castlingLoss[bb.E8] = mg.CastlingBlackK | mg.CastlingBlackQ
	castlingLoss[bb.H8] = mg.CastlingBlackK
	castlingLoss[bb.A8] = mg.CastlingBlackQ
}

// MakeMove applies a move and appends it to the history. It returns false,
// leaving the board untouched, if the side to move has no piece on the
// origin square or the move leaves the mover's king in check. Moves taken
// from LegalMoves always succeed.
func (b *Board) MakeMove(m mg.Move) bool {
	from, to := m.From(), m.To()
	moved := b.pieces[from]
	if moved == mg.NoPiece || moved.Color() != b.sideToMove {
		return false
	}
	us := b.sideToMove

	st := MoveState{
		prevCastling: b.castlingRights,
		prevHalfmove: b.halfmoveClock,
		prevFullmove: b.fullmoveNumber,
		prevZobrist:  b.zobristKey,
	}

	// En passant key depends on the last move; take it out before history changes.
	b.zobristKey ^= b.enPassantKey()

	if m.Special() == mg.EnPassant {
		capSq := to - 8
		if us == mg.Black {
			capSq = to + 8
		}
		st.captured = b.removePiece(capSq)
	} else {
		st.captured = b.removePiece(to)
	}

	b.removePiece(from)
	placed := moved
	if pt := m.Promotion(); pt != mg.PieceTypeNone {
		placed = mg.NewPiece(us, pt)
	}
	b.addPiece(to, placed)

	if m.Special() == mg.Castle {
		if rook, ok := castleRookSquares[to]; ok {
			b.addPiece(rook[1], b.removePiece(rook[0]))
		}
	}

	if rights := b.castlingRights &^ (castlingLoss[from] | castlingLoss[to]); rights != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[rights]
		b.castlingRights = rights
	}

	if moved.Type() == mg.PieceTypePawn || st.captured != mg.NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == mg.Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Other()
	b.zobristKey ^= zobristSide

	// Store the move with the piece that actually moved so history readers can rely on it.
	b.history = append(b.history, mg.NewMove(moved, from, to, m.Special()))
	b.undo = append(b.undo, st)
	b.zobristKey ^= b.enPassantKey()

	if mg.InCheck(b, us) {
		b.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove undoes the last move made with MakeMove.
// It panics if no move was made on this board.
func (b *Board) UnmakeMove() {
	n := len(b.undo)
	if n == 0 {
		panic("UnmakeMove: no move to undo")
	}
	st := b.undo[n-1]
	b.undo = b.undo[:n-1]
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.sideToMove = b.sideToMove.Other()
	from, to := m.From(), m.To()

	if m.Special() == mg.Castle {
		if rook, ok := castleRookSquares[to]; ok {
			b.addPiece(rook[0], b.removePiece(rook[1]))
		}
	}

	b.removePiece(to)
	b.addPiece(from, m.Piece())

	if st.captured != mg.NoPiece {
		capSq := to
		if m.Special() == mg.EnPassant {
			if b.sideToMove == mg.White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
		}
		b.addPiece(capSq, st.captured)
	}

	b.castlingRights = st.prevCastling
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	// Ensure exact Zobrist restoration
	b.zobristKey = st.prevZobrist
}

// Apply plays a move and returns an undo closure. It panics if the move is
// illegal.
func (b *Board) Apply(m mg.Move) func() {
	if !b.MakeMove(m) {
		panic("board.Apply: illegal move applied")
	}
	return b.UnmakeMove
}
