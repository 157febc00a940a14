package movegen

import bb "chess-movegen/bitboard"

// Precomputed attack masks for knights and kings from each square.
var (
	KnightTable [64]bb.Bitboard
	KingTable   [64]bb.Bitboard
)

func init() {
	BuildKnightTable()
	BuildKingTable()
	BuildRayTables()
}

// knightAttackSet returns the knight attacks of every square in set. Each
// offset is guarded by the files and ranks it would wrap across.
func knightAttackSet(set bb.Bitboard) bb.Bitboard {
	rank12 := bb.Rank(1) | bb.Rank(2)
	rank78 := bb.Rank(7) | bb.Rank(8)

	var att bb.Bitboard
	att |= (set &^ (bb.FileH | rank78)) << 17      // up 2, right 1
	att |= (set &^ (bb.FileA | rank78)) << 15      // up 2, left 1
	att |= (set &^ (bb.FileGH | bb.Rank(8))) << 10 // up 1, right 2
	att |= (set &^ (bb.FileAB | bb.Rank(8))) << 6  // up 1, left 2
	att |= (set &^ (bb.FileH | rank12)) >> 15      // down 2, right 1
	att |= (set &^ (bb.FileA | rank12)) >> 17      // down 2, left 1
	att |= (set &^ (bb.FileGH | bb.Rank(1))) >> 6  // down 1, right 2
	att |= (set &^ (bb.FileAB | bb.Rank(1))) >> 10 // down 1, left 2
	return att
}

func kingAttackSet(set bb.Bitboard) bb.Bitboard {
	var att bb.Bitboard
	att |= (set &^ bb.Rank(8)) << 8
	att |= (set &^ bb.Rank(1)) >> 8
	att |= (set &^ bb.FileH) << 1
	att |= (set &^ bb.FileA) >> 1
	att |= (set &^ (bb.Rank(8) | bb.FileH)) << 9
	att |= (set &^ (bb.Rank(8) | bb.FileA)) << 7
	att |= (set &^ (bb.Rank(1) | bb.FileH)) >> 7
	att |= (set &^ (bb.Rank(1) | bb.FileA)) >> 9
	return att
}

// BuildKnightTable (re)computes KnightTable. It is idempotent.
func BuildKnightTable() {
	for sq := bb.Square(0); sq < 64; sq++ {
		KnightTable[sq] = knightAttackSet(bb.FromSquare(sq))
	}
}

// BuildKingTable (re)computes KingTable. It is idempotent.
func BuildKingTable() {
	for sq := bb.Square(0); sq < 64; sq++ {
		KingTable[sq] = kingAttackSet(bb.FromSquare(sq))
	}
}

// PawnAttacks returns every square attacked by the given pawns of color c,
// whether or not anything stands there.
func PawnAttacks(c Color, pawns bb.Bitboard) bb.Bitboard {
	if c == White {
		return (pawns&^bb.FileH)<<9 | (pawns&^bb.FileA)<<7
	}
	return (pawns&^bb.FileH)>>7 | (pawns&^bb.FileA)>>9
}
