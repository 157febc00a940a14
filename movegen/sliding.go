package movegen

import bb "chess-movegen/bitboard"

// ==========================
// Sliding attacks
// ==========================

// rayAttacks returns the reachable part of the ray from sq along d: every
// square up to and including the nearest blocker.
func rayAttacks(d Direction, sq bb.Square, blockers bb.Bitboard) bb.Bitboard {
	ray := Rays[d][sq]
	masked := ray & blockers
	if masked == 0 {
		return ray
	}
	var first bb.Square
	if d.increasing() {
		first = masked.LSB()
	} else {
		first = masked.MSB()
	}
	return ray &^ Rays[d][first]
}

// SlidingAttacks returns the squares a bishop, rook or queen on sq reaches
// given occupancy. The piece's own square and every square in exclude are
// removed from the blocker set first; passing the opposing king as exclude
// gives the x-ray set used for king danger. Other piece types yield 0.
func SlidingAttacks(t PieceType, sq bb.Square, occupancy, exclude bb.Bitboard) bb.Bitboard {
	blockers := occupancy &^ bb.FromSquare(sq) &^ exclude
	var attacks bb.Bitboard
	if t == PieceTypeRook || t == PieceTypeQueen {
		for _, d := range rookDirections {
			attacks |= rayAttacks(d, sq, blockers)
		}
	}
	if t == PieceTypeBishop || t == PieceTypeQueen {
		for _, d := range bishopDirections {
			attacks |= rayAttacks(d, sq, blockers)
		}
	}
	return attacks
}

// BishopAttacks returns bishop attacks from sq for the given occupancy.
func BishopAttacks(sq bb.Square, occupancy bb.Bitboard) bb.Bitboard {
	return SlidingAttacks(PieceTypeBishop, sq, occupancy, 0)
}

// RookAttacks returns rook attacks from sq for the given occupancy.
func RookAttacks(sq bb.Square, occupancy bb.Bitboard) bb.Bitboard {
	return SlidingAttacks(PieceTypeRook, sq, occupancy, 0)
}

// QueenAttacks returns queen attacks from sq for the given occupancy.
func QueenAttacks(sq bb.Square, occupancy bb.Bitboard) bb.Bitboard {
	return SlidingAttacks(PieceTypeQueen, sq, occupancy, 0)
}
