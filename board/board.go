package board

import (
	bb "chess-movegen/bitboard"
	mg "chess-movegen/movegen"
)

// Board represents the chess board state, including piece placement, game
// state and the history of moves played on it. It implements
// movegen.Position.
type Board struct {
	// Piece bitboards indexed by color, then piece type (index 0 unused).
	bitboards [2][7]bb.Bitboard

	// Occupancy bitboards for each side
	occupancy [2]bb.Bitboard

	// Piece placement array for each square
	pieces [64]mg.Piece

	sideToMove     mg.Color
	castlingRights mg.CastlingRights

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int
	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	zobristKey uint64

	// history holds every move played, oldest first. A position loaded from
	// FEN with an en passant square starts with the implied double push.
	history []mg.Move
	// undo parallels the tail of history for moves made on this board.
	undo []MoveState

	gen mg.Generator
}

var _ mg.Position = (*Board)(nil)

// New returns the standard initial position.
func New() *Board { return MustParseFEN(FENStartPos) }

// Pieces returns the bitboard of one piece type of one color.
func (b *Board) Pieces(c mg.Color, t mg.PieceType) bb.Bitboard { return b.bitboards[c][t] }

// Occupancy returns the occupancy bitboard for the given color.
func (b *Board) Occupancy(c mg.Color) bb.Bitboard { return b.occupancy[c] }

// Occupied returns a bitboard of all occupied squares.
func (b *Board) Occupied() bb.Bitboard { return b.occupancy[mg.White] | b.occupancy[mg.Black] }

// Empty returns a bitboard of all vacant squares.
func (b *Board) Empty() bb.Bitboard { return ^b.Occupied() }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() mg.Color { return b.sideToMove }

// CastlingRights returns the castling rights still available.
func (b *Board) CastlingRights() mg.CastlingRights { return b.castlingRights }

// LastMove returns the most recent move in the history.
func (b *Board) LastMove() (mg.Move, bool) {
	if len(b.history) == 0 {
		return 0, false
	}
	return b.history[len(b.history)-1], true
}

// History returns a copy of the move history, oldest first.
func (b *Board) History() []mg.Move {
	return append([]mg.Move(nil), b.history...)
}

// AppendPieces appends every piece on the board, in square order, to dst.
func (b *Board) AppendPieces(dst []mg.PlacedPiece) []mg.PlacedPiece {
	for occ := b.Occupied(); occ != 0; {
		sq := bb.PopLSB(&occ)
		dst = append(dst, mg.PlacedPiece{Piece: b.pieces[sq], Square: sq})
	}
	return dst
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq bb.Square) mg.Piece { return b.pieces[sq] }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// EnPassantSquare returns the square skipped by an enemy double push on the
// previous move, or NoSquare.
func (b *Board) EnPassantSquare() bb.Square {
	last, ok := b.LastMove()
	if !ok || !last.IsDoublePawnPush() || last.Piece().Color() == b.sideToMove {
		return bb.NoSquare
	}
	return (last.From() + last.To()) / 2
}

// LegalMoves returns the legal moves of the side to move. It panics if the
// side to move has no king; ParseMove and Analyze report that case as an
// error instead.
func (b *Board) LegalMoves() []mg.Move {
	res, err := b.gen.Generate(b)
	if err != nil {
		panic(err)
	}
	return res.Moves
}

// Analyze runs one generation call and returns the full result including
// check and danger bitboards.
func (b *Board) Analyze() (mg.Result, error) { return b.gen.Generate(b) }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return mg.InCheck(b, b.sideToMove) }

// HasLegalMoves reports whether the side to move has any legal moves. A side
// without a king has none.
func (b *Board) HasLegalMoves() bool {
	res, err := b.Analyze()
	return err == nil && len(res.Moves) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	res, err := b.Analyze()
	return err == nil && res.InCheck() && len(res.Moves) == 0
}

// InStalemate reports whether the side to move is stalemated. A side without
// a king is neither mated nor stalemated.
func (b *Board) InStalemate() bool {
	res, err := b.Analyze()
	return err == nil && !res.InCheck() && len(res.Moves) == 0
}

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition reports whether the current position occurred twice
// before among the moves made on this board since the last irreversible move.
func (b *Board) IsDrawByRepetition() bool {
	matches := 0
	// undo[i].prevZobrist is the key before move i; same side to move every second entry.
	for i := len(b.undo) - 2; i >= 0 && i >= len(b.undo)-b.halfmoveClock; i -= 2 {
		if b.undo[i].prevZobrist == b.zobristKey {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// ==========================
// Board occupancy helpers
// ==========================

// addPiece places a piece on an empty square and updates bitboards, occupancy and zobrist.
func (b *Board) addPiece(sq bb.Square, p mg.Piece) {
	if p == mg.NoPiece {
		return
	}
	c := p.Color()
	b.pieces[sq] = p
	b.occupancy[c] |= bb.FromSquare(sq)
	b.bitboards[c][p.Type()] |= bb.FromSquare(sq)
	b.zobristKey ^= zobristPiece[p][sq]
}

// removePiece removes a piece from a square and updates bitboards, occupancy and zobrist.
func (b *Board) removePiece(sq bb.Square) mg.Piece {
	p := b.pieces[sq]
	if p == mg.NoPiece {
		return mg.NoPiece
	}
	c := p.Color()
	b.pieces[sq] = mg.NoPiece
	b.occupancy[c] &^= bb.FromSquare(sq)
	b.bitboards[c][p.Type()] &^= bb.FromSquare(sq)
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// SetPiece sets a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq bb.Square, p mg.Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq bb.Square) { _ = b.removePiece(sq) }

// Validate checks internal consistency between pieces[], per-piece bitboards, occupancy
// and the Zobrist key. Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	var occ [2]bb.Bitboard
	var boards [2][7]bb.Bitboard
	for sq := bb.Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == mg.NoPiece {
			continue
		}
		occ[p.Color()] |= bb.FromSquare(sq)
		boards[p.Color()][p.Type()] |= bb.FromSquare(sq)
	}
	if occ != b.occupancy || boards != b.bitboards {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}
