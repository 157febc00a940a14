package movegen

import (
	"fmt"

	bb "chess-movegen/bitboard"
)

// PawnMoves appends the legal pawn moves of the side to move in pos under the
// given check masks and pin lines, as computed by DeriveMasks and PinLines.
// It fails with ErrMissingKing when the side to move has no king.
func PawnMoves(pos Position, capture, push bb.Bitboard, pins *[64]bb.Bitboard, dst []Move) ([]Move, error) {
	us := pos.SideToMove()
	king := pos.Pieces(us, PieceTypeKing)
	if king == 0 {
		return dst, fmt.Errorf("pawn moves for %s: %w", us, ErrMissingKing)
	}
	st := genState{
		pos:         pos,
		us:          us,
		them:        us.Other(),
		king:        king.LSB(),
		own:         pos.Occupancy(us),
		enemy:       pos.Occupancy(us.Other()),
		occ:         pos.Occupied(),
		empty:       pos.Empty(),
		captureMask: capture,
		pushMask:    push,
		pins:        *pins,
	}
	return st.pawnMoves(dst), nil
}

// pawnMoves appends every legal pawn move of the side to move, including
// promotions and en passant. All pawns are handled at once with shifts.
func (st *genState) pawnMoves(dst []Move) []Move {
	pawns := st.pos.Pieces(st.us, PieceTypePawn)
	if pawns == 0 {
		return dst
	}
	piece := NewPiece(st.us, PieceTypePawn)

	var up int
	var promoRank bb.Bitboard
	var single, double, east, west bb.Bitboard
	if st.us == White {
		up = 8
		promoRank = bb.Rank(8)
		single = (pawns << 8) & st.empty
		double = (single << 8) & st.empty & bb.Rank(4)
		east = (pawns << 9) &^ bb.FileA
		west = (pawns << 7) &^ bb.FileH
	} else {
		up = -8
		promoRank = bb.Rank(1)
		single = (pawns >> 8) & st.empty
		double = (single >> 8) & st.empty & bb.Rank(5)
		east = (pawns >> 7) &^ bb.FileA
		west = (pawns >> 9) &^ bb.FileH
	}

	dst = st.emitPawnMoves(dst, piece, single&st.pushMask, up, promoRank)
	dst = st.emitPawnMoves(dst, piece, double&st.pushMask, 2*up, promoRank)
	dst = st.emitPawnMoves(dst, piece, east&st.enemy&st.captureMask, up+1, promoRank)
	dst = st.emitPawnMoves(dst, piece, west&st.enemy&st.captureMask, up-1, promoRank)
	return st.enPassant(dst, piece, up)
}

// emitPawnMoves appends one move per destination in targets, whose origin is
// delta squares behind it. Destinations on promoRank expand to four moves.
func (st *genState) emitPawnMoves(dst []Move, piece Piece, targets bb.Bitboard, delta int, promoRank bb.Bitboard) []Move {
	for targets != 0 {
		to := bb.PopLSB(&targets)
		from := to - bb.Square(delta)
		if pin := st.pins[from]; pin != 0 && !pin.Has(to) {
			continue
		}
		if promoRank.Has(to) {
			for _, s := range promotions {
				dst = append(dst, NewMove(piece, from, to, s))
			}
			continue
		}
		dst = append(dst, NewMove(piece, from, to, SpecialNone))
	}
	return dst
}

// enPassant appends en passant captures. They exist only right after an
// enemy double push, for pawns standing beside the pushed pawn.
func (st *genState) enPassant(dst []Move, piece Piece, up int) []Move {
	last, ok := st.pos.LastMove()
	if !ok || last.Piece() != NewPiece(st.them, PieceTypePawn) || !last.IsDoublePawnPush() {
		return dst
	}
	victim := last.To()
	victimBB := bb.FromSquare(victim)
	if st.pos.Pieces(st.them, PieceTypePawn)&victimBB == 0 {
		return dst
	}
	dest := victim + bb.Square(up)

	// Capturing removes the checker or lands on a blocking square.
	if victimBB&st.captureMask == 0 && !st.pushMask.Has(dest) {
		return dst
	}

	beside := ((victimBB << 1) &^ bb.FileA) | ((victimBB >> 1) &^ bb.FileH)
	capturers := beside & st.pos.Pieces(st.us, PieceTypePawn)
	for capturers != 0 {
		from := bb.PopLSB(&capturers)
		if pin := st.pins[from]; pin != 0 && !pin.Has(dest) {
			continue
		}
		if st.enPassantExposesKing(from, victim, dest) {
			continue
		}
		dst = append(dst, NewMove(piece, from, dest, EnPassant))
	}
	return dst
}

// enPassantExposesKing reports whether lifting both pawns off the board opens
// a slider line onto the king, as when both stand between king and rook on
// the same rank.
func (st *genState) enPassantExposesKing(from, victim, dest bb.Square) bool {
	occ := st.occ&^bb.FromSquare(from)&^bb.FromSquare(victim) | bb.FromSquare(dest)
	queens := st.pos.Pieces(st.them, PieceTypeQueen)
	if RookAttacks(st.king, occ)&(st.pos.Pieces(st.them, PieceTypeRook)|queens) != 0 {
		return true
	}
	return BishopAttacks(st.king, occ)&(st.pos.Pieces(st.them, PieceTypeBishop)|queens) != 0
}
