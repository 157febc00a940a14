package movegen

import bb "chess-movegen/bitboard"

type castleRule struct {
	right            CastlingRights
	kingFrom, kingTo bb.Square
	rookFrom         bb.Square
	// empty must hold no pieces; safe must not be attacked.
	empty, safe bb.Bitboard
}

func squares(sqs ...bb.Square) bb.Bitboard {
	var set bb.Bitboard
	for _, sq := range sqs {
		set |= bb.FromSquare(sq)
	}
	return set
}

var castleRules = [2][2]castleRule{
	White: {
		{CastlingWhiteK, bb.E1, bb.G1, bb.H1, squares(bb.F1, bb.G1), squares(bb.F1, bb.G1)},
		{CastlingWhiteQ, bb.E1, bb.C1, bb.A1, squares(bb.B1, bb.C1, bb.D1), squares(bb.C1, bb.D1)},
	},
	Black: {
		{CastlingBlackK, bb.E8, bb.G8, bb.H8, squares(bb.F8, bb.G8), squares(bb.F8, bb.G8)},
		{CastlingBlackQ, bb.E8, bb.C8, bb.A8, squares(bb.B8, bb.C8, bb.D8), squares(bb.C8, bb.D8)},
	},
}

// castling appends castling moves. The king may not castle out of, through
// or into check; rights are taken from the position as given.
func (st *genState) castling(dst []Move) []Move {
	if st.attackerCount != 0 {
		return dst
	}
	rights := st.pos.CastlingRights()
	if rights == 0 {
		return dst
	}
	rooks := st.pos.Pieces(st.us, PieceTypeRook)
	king := NewPiece(st.us, PieceTypeKing)
	for _, r := range castleRules[st.us] {
		if rights&r.right == 0 || st.king != r.kingFrom || !rooks.Has(r.rookFrom) {
			continue
		}
		if st.occ&r.empty != 0 || st.kingDanger&r.safe != 0 {
			continue
		}
		dst = append(dst, NewMove(king, r.kingFrom, r.kingTo, Castle))
	}
	return dst
}
