package movegen

import "chess-movegen/bitboard"

// Move encodes a chess move in a 32-bit value. Moves are plain values and
// carry no reference to board state.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveSpecialShift = 16 // 3 bits
)

// Special tags the move kinds that need more than a from/to pair.
type Special uint8

const (
	SpecialNone Special = iota
	PromoteQueen
	PromoteKnight
	PromoteRook
	PromoteBishop
	EnPassant
	Castle
)

// promotions is the emission order for promoting pawns.
var promotions = [4]Special{PromoteQueen, PromoteKnight, PromoteRook, PromoteBishop}

// NewMove constructs a Move value from components.
func NewMove(p Piece, from, to bitboard.Square, s Special) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(p&0xF) << movePieceShift) |
		(uint32(s&0x7) << moveSpecialShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() bitboard.Square { return bitboard.Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() bitboard.Square { return bitboard.Square((uint32(m) >> moveToShift) & 0x3F) }

// Piece returns the piece that moves.
func (m Move) Piece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// Special returns the special-move tag.
func (m Move) Special() Special { return Special((uint32(m) >> moveSpecialShift) & 0x7) }

// Promotion returns the promoted-to type, or PieceTypeNone.
func (m Move) Promotion() PieceType {
	switch m.Special() {
	case PromoteQueen:
		return PieceTypeQueen
	case PromoteKnight:
		return PieceTypeKnight
	case PromoteRook:
		return PieceTypeRook
	case PromoteBishop:
		return PieceTypeBishop
	}
	return PieceTypeNone
}

// IsDoublePawnPush reports whether m advanced a pawn two ranks.
func (m Move) IsDoublePawnPush() bool {
	if m.Piece().Type() != PieceTypePawn {
		return false
	}
	d := int(m.To()) - int(m.From())
	return d == 16 || d == -16
}

// String produces UCI notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if pt := m.Promotion(); pt != PieceTypeNone {
		s += string(NewPiece(Black, pt).Symbol())
	}
	return s
}
