package movegen

import bb "chess-movegen/bitboard"

// Direction is one of the eight compass directions a slider travels.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Rook directions first, bishop directions second.
var (
	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
)

// shift is the square-index delta of one step in each direction.
var shift = [8]int{
	North:     8,
	South:     -8,
	East:      1,
	West:      -1,
	NorthEast: 9,
	NorthWest: 7,
	SouthEast: -7,
	SouthWest: -9,
}

// increasing reports whether travelling in d moves towards higher bit indices.
// The nearest blocker on such a ray is its lowest set bit.
func (d Direction) increasing() bool { return shift[d] > 0 }

// Rays[d][sq] holds the squares from sq (exclusive) to the board edge along d,
// ignoring occupancy.
var Rays [8][64]bb.Bitboard

// steps returns how many squares lie between sq and the edge along d.
func steps(sq bb.Square, d Direction) int {
	file, rank := sq.File(), sq.Rank()
	switch d {
	case North:
		return 7 - rank
	case South:
		return rank
	case East:
		return 7 - file
	case West:
		return file
	case NorthEast:
		return min(7-rank, 7-file)
	case NorthWest:
		return min(7-rank, file)
	case SouthEast:
		return min(rank, 7-file)
	case SouthWest:
		return min(rank, file)
	}
	return 0
}

// BuildRayTables (re)computes Rays for all directions and squares.
func BuildRayTables() {
	for d := North; d <= SouthWest; d++ {
		for sq := bb.Square(0); sq < 64; sq++ {
			from := bb.FromSquare(sq)
			var ray bb.Bitboard
			for k := 1; k <= steps(sq, d); k++ {
				if d.increasing() {
					ray |= from << uint(k*shift[d])
				} else {
					ray |= from >> uint(-k*shift[d])
				}
			}
			Rays[d][sq] = ray
		}
	}
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and the empty set otherwise.
func Between(a, b bb.Square) bb.Bitboard {
	target := bb.FromSquare(b)
	for d := North; d <= SouthWest; d++ {
		if Rays[d][a]&target != 0 {
			return Rays[d][a] &^ Rays[d][b] &^ target
		}
	}
	return 0
}
