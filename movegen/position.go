package movegen

import (
	"errors"

	bb "chess-movegen/bitboard"
)

// ErrMissingKing is returned when the side to move has no king on the board.
var ErrMissingKing = errors.New("movegen: side to move has no king")

// Position is the read-only view of a board that generation needs. The
// generator never retains a Position beyond one call.
type Position interface {
	// Pieces returns the bitboard of one piece type of one color.
	Pieces(c Color, t PieceType) bb.Bitboard
	// Occupancy returns every square holding a piece of color c.
	Occupancy(c Color) bb.Bitboard
	Occupied() bb.Bitboard
	Empty() bb.Bitboard
	SideToMove() Color
	// LastMove returns the most recent history entry, if any.
	LastMove() (Move, bool)
	// AppendPieces appends every piece on the board to dst.
	AppendPieces(dst []PlacedPiece) []PlacedPiece
	CastlingRights() CastlingRights
}
