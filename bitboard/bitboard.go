package bitboard

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square (a1 = bit 0, h8 = bit 63).
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Bitboard(0)
)

// File masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	// Two-wide guard masks used by knight offsets.
	FileAB = FileA | FileB
	FileGH = FileG | FileH
)

// Files indexes the file masks by file number (0 = a).
var Files = [8]Bitboard{
	FileA, FileA << 1, FileA << 2, FileA << 3,
	FileA << 4, FileA << 5, FileA << 6, FileA << 7,
}

const rank1 Bitboard = 0xFF

// Rank returns the mask of the given rank, numbered 1 to 8.
// It panics on any other rank number.
func Rank(n int) Bitboard {
	if n < 1 || n > 8 {
		panic("bitboard.Rank: rank out of range")
	}
	return rank1 << (8 * uint(n-1))
}

// FromSquare returns the bitboard with only sq set.
func FromSquare(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool { return b&FromSquare(sq) != 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest square in the set. b must be non-zero.
func (b Bitboard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// MSB returns the highest square in the set. b must be non-zero.
func (b Bitboard) MSB() Square { return Square(63 - bits.LeadingZeros64(uint64(b))) }

// PopLSB removes and returns the lowest square of the set. *b must be non-zero.
func PopLSB(b *Bitboard) Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares returns the squares of the set in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, PopLSB(&b))
	}
	return out
}

// String draws the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
