package bitboard

import "errors"

// Square is a board index in [0, 63]; file = sq % 8, rank = sq / 8.
type Square int8

const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

var ErrInvalidSquare = errors.New("invalid algebraic square")

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the 0-based file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the 0-based rank.
func (sq Square) Rank() int { return int(sq) / 8 }

// Bitboard returns the single-square set.
func (sq Square) Bitboard() Bitboard { return FromSquare(sq) }

// String returns algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, ErrInvalidSquare
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}
