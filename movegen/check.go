package movegen

import bb "chess-movegen/bitboard"

// ComputeAttackers returns the enemy pieces attacking the king of color us
// on square king, and how many there are. Kings never give check.
func ComputeAttackers(pieces []PlacedPiece, us Color, king bb.Square, occupancy bb.Bitboard) (bb.Bitboard, int) {
	target := bb.FromSquare(king)
	var attackers bb.Bitboard
	for _, pp := range pieces {
		if pp.Piece.Color() == us {
			continue
		}
		var reach bb.Bitboard
		switch t := pp.Piece.Type(); t {
		case PieceTypePawn:
			reach = PawnAttacks(us.Other(), bb.FromSquare(pp.Square))
		case PieceTypeKnight:
			reach = KnightTable[pp.Square]
		case PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
			reach = SlidingAttacks(t, pp.Square, occupancy, 0)
		default:
			continue
		}
		if reach&target != 0 {
			attackers |= bb.FromSquare(pp.Square)
		}
	}
	return attackers, attackers.Count()
}

// DeriveMasks turns the check state into the capture and push masks that
// restrict non-king destinations. Out of check both are unrestricted; in
// single check the checker may be captured or, for a distant slider,
// blocked; in double check nothing but the king may move.
func DeriveMasks(attackers bb.Bitboard, count int, king bb.Square) (capture, push bb.Bitboard) {
	switch {
	case count == 0:
		return bb.Full, bb.Full
	case count == 1:
		return attackers, Between(king, attackers.LSB())
	default:
		return 0, 0
	}
}

// FilterKingMoves drops king destinations the opponent attacks.
func FilterKingMoves(pseudo, danger bb.Bitboard) bb.Bitboard {
	return pseudo &^ danger
}

// PinLines finds the pieces in own that are the only blocker between king and
// an enemy slider moving along that line. For each pinned square the result
// holds the squares it may still move to: the line from the king (exclusive)
// up to and including the pinner. Unpinned squares map to 0.
func PinLines(king bb.Square, own, occupancy, orthogonal, diagonal bb.Bitboard) (pins [64]bb.Bitboard) {
	for d := North; d <= SouthWest; d++ {
		pinners := orthogonal
		if d >= NorthEast {
			pinners = diagonal
		}
		if pinners&Rays[d][king] == 0 {
			continue
		}
		blockers := Rays[d][king] & occupancy
		if blockers == 0 {
			continue
		}
		first := nearest(d, blockers)
		if !own.Has(first) {
			continue
		}
		beyond := Rays[d][first] & occupancy
		if beyond == 0 {
			continue
		}
		next := nearest(d, beyond)
		if pinners.Has(next) {
			pins[first] = Rays[d][king] &^ Rays[d][next]
		}
	}
	return pins
}

// nearest returns the first square of set met when travelling along d.
// set must be non-zero.
func nearest(d Direction, set bb.Bitboard) bb.Square {
	if d.increasing() {
		return set.LSB()
	}
	return set.MSB()
}

// PawnDangerSquares returns the squares the pawns of color c attack. A king
// may never step onto them, occupied or not.
func PawnDangerSquares(c Color, pawns bb.Bitboard) bb.Bitboard {
	return PawnAttacks(c, pawns)
}

// KingDangerSquares returns every square attacked by the side not to move,
// with the mover's king removed from the blocker set so that stepping back
// along a slider's line is still seen as attacked.
func KingDangerSquares(pos Position, pieces []PlacedPiece) bb.Bitboard {
	us := pos.SideToMove()
	them := us.Other()
	king := pos.Pieces(us, PieceTypeKing)
	occ := pos.Occupied()

	danger := PawnDangerSquares(them, pos.Pieces(them, PieceTypePawn))
	for _, pp := range pieces {
		if pp.Piece.Color() != them {
			continue
		}
		switch t := pp.Piece.Type(); t {
		case PieceTypeKnight:
			danger |= KnightTable[pp.Square]
		case PieceTypeKing:
			danger |= KingTable[pp.Square]
		case PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
			danger |= SlidingAttacks(t, pp.Square, occ, king)
		}
	}
	return danger
}

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the given color.
func IsSquareAttacked(pos Position, sq bb.Square, by Color) bool {
	return isSquareAttackedWithOcc(pos, sq, by, pos.Occupied())
}

func isSquareAttackedWithOcc(pos Position, sq bb.Square, by Color, occ bb.Bitboard) bool {
	// Pawn attacks via reverse mask
	if PawnAttacks(by.Other(), bb.FromSquare(sq))&pos.Pieces(by, PieceTypePawn) != 0 {
		return true
	}
	if KnightTable[sq]&pos.Pieces(by, PieceTypeKnight) != 0 {
		return true
	}
	if KingTable[sq]&pos.Pieces(by, PieceTypeKing) != 0 {
		return true
	}
	queens := pos.Pieces(by, PieceTypeQueen)
	if RookAttacks(sq, occ)&(pos.Pieces(by, PieceTypeRook)|queens) != 0 {
		return true
	}
	return BishopAttacks(sq, occ)&(pos.Pieces(by, PieceTypeBishop)|queens) != 0
}

// InCheck reports whether the specified color's king is currently in check.
func InCheck(pos Position, c Color) bool {
	king := pos.Pieces(c, PieceTypeKing)
	if king == 0 {
		return false
	}
	return IsSquareAttacked(pos, king.LSB(), c.Other())
}
