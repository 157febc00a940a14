package movegen

import "chess-movegen/bitboard"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// NewPiece combines a colorless type with a side.
func NewPiece(c Color, t PieceType) Piece {
	if t == PieceTypeNone {
		return NoPiece
	}
	return Piece(t) | Piece(c)<<3
}

// Symbol returns the FEN letter of the piece: upper case for White.
func (p Piece) Symbol() rune {
	var r rune
	switch p.Type() {
	case PieceTypePawn:
		r = 'p'
	case PieceTypeKnight:
		r = 'n'
	case PieceTypeBishop:
		r = 'b'
	case PieceTypeRook:
		r = 'r'
	case PieceTypeQueen:
		r = 'q'
	case PieceTypeKing:
		r = 'k'
	default:
		return '?'
	}
	if p.Color() == White {
		r -= 'a' - 'A'
	}
	return r
}

func (p Piece) String() string { return string(p.Symbol()) }

// PieceFromSymbol is the inverse of Symbol. Unknown letters give NoPiece.
func PieceFromSymbol(r rune) Piece {
	c := White
	if r >= 'a' && r <= 'z' {
		c = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'P':
		return NewPiece(c, PieceTypePawn)
	case 'N':
		return NewPiece(c, PieceTypeKnight)
	case 'B':
		return NewPiece(c, PieceTypeBishop)
	case 'R':
		return NewPiece(c, PieceTypeRook)
	case 'Q':
		return NewPiece(c, PieceTypeQueen)
	case 'K':
		return NewPiece(c, PieceTypeKing)
	}
	return NoPiece
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Piece  Piece
	Square bitboard.Square
}
