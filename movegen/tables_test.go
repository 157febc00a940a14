package movegen

import (
	"math/rand"
	"testing"

	bb "chess-movegen/bitboard"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestKnightTableNoWrap(t *testing.T) {
	for sq := bb.Square(0); sq < 64; sq++ {
		for _, to := range KnightTable[sq].Squares() {
			df, dr := abs(to.File()-sq.File()), abs(to.Rank()-sq.Rank())
			if !(df == 1 && dr == 2) && !(df == 2 && dr == 1) {
				t.Fatalf("knight %s -> %s is not a knight jump", sq, to)
			}
		}
	}
	if got := KnightTable[bb.A1].Count(); got != 2 {
		t.Fatalf("knight a1: got %d targets want 2", got)
	}
	if got := KnightTable[bb.NewSquare(3, 3)].Count(); got != 8 {
		t.Fatalf("knight d4: got %d targets want 8", got)
	}
}

func TestKingTableNoWrap(t *testing.T) {
	for sq := bb.Square(0); sq < 64; sq++ {
		for _, to := range KingTable[sq].Squares() {
			if abs(to.File()-sq.File()) > 1 || abs(to.Rank()-sq.Rank()) > 1 {
				t.Fatalf("king %s -> %s wraps", sq, to)
			}
		}
	}
	if got := KingTable[bb.H8].Count(); got != 3 {
		t.Fatalf("king h8: got %d targets want 3", got)
	}
}

func TestBuildTablesIdempotent(t *testing.T) {
	knights, kings, rays := KnightTable, KingTable, Rays
	BuildKnightTable()
	BuildKingTable()
	BuildRayTables()
	if knights != KnightTable || kings != KingTable || rays != Rays {
		t.Fatalf("rebuilding tables changed their contents")
	}
}

func TestRayUnionIsQueenAttacks(t *testing.T) {
	for sq := bb.Square(0); sq < 64; sq++ {
		var union bb.Bitboard
		for d := North; d <= SouthWest; d++ {
			union |= Rays[d][sq]
		}
		if q := QueenAttacks(sq, 0); q != union {
			t.Fatalf("square %s: rays\n%s\nqueen\n%s", sq, union, q)
		}
	}
}

func TestSlidingStopsAtBlocker(t *testing.T) {
	d4 := bb.NewSquare(3, 3)
	blockers := bb.FromSquare(bb.NewSquare(3, 5)) | bb.FromSquare(bb.NewSquare(5, 3))
	att := RookAttacks(d4, blockers)
	for _, sq := range []bb.Square{bb.NewSquare(3, 4), bb.NewSquare(3, 5), bb.NewSquare(4, 3), bb.NewSquare(5, 3)} {
		if !att.Has(sq) {
			t.Fatalf("rook d4 should reach %s", sq)
		}
	}
	for _, sq := range []bb.Square{bb.NewSquare(3, 6), bb.NewSquare(6, 3)} {
		if att.Has(sq) {
			t.Fatalf("rook d4 should stop before %s", sq)
		}
	}
	if got := att.Count(); got != 10 {
		t.Fatalf("rook d4 attack count: got %d want 10", got)
	}
}

// walkAttacks steps square by square from sq in each (file, rank) direction
// and stops after the first occupied square.
func walkAttacks(sq bb.Square, occ bb.Bitboard, dirs [][2]int) bb.Bitboard {
	var att bb.Bitboard
	for _, d := range dirs {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			to := bb.NewSquare(f, r)
			att |= bb.FromSquare(to)
			if occ.Has(to) {
				break
			}
			f, r = f+d[0], r+d[1]
		}
	}
	return att
}

func TestSlidingMatchesWalk(t *testing.T) {
	orth := [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diag := [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	tests := []struct {
		piece PieceType
		dirs  [][2]int
	}{
		{PieceTypeRook, orth},
		{PieceTypeBishop, diag},
		{PieceTypeQueen, append(append([][2]int{}, orth...), diag...)},
	}
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		// Sparse and dense boards both show up.
		occ := bb.Bitboard(rnd.Uint64())
		if i%2 == 0 {
			occ &= bb.Bitboard(rnd.Uint64()) & bb.Bitboard(rnd.Uint64())
		}
		sq := bb.Square(rnd.Intn(64))
		for _, tt := range tests {
			want := walkAttacks(sq, occ, tt.dirs)
			if got := SlidingAttacks(tt.piece, sq, occ, 0); got != want {
				t.Fatalf("%v on %s, occupancy\n%s\ngot\n%s\nwant\n%s", tt.piece, sq, occ, got, want)
			}
			// Excluding a square acts as if it were empty.
			ex := bb.FromSquare(bb.Square(rnd.Intn(64)))
			if got := SlidingAttacks(tt.piece, sq, occ, ex); got != walkAttacks(sq, occ&^ex, tt.dirs) {
				t.Fatalf("%v on %s with %s excluded:\n%s", tt.piece, sq, ex.LSB(), got)
			}
		}
	}
}

func TestSlidingExclude(t *testing.T) {
	// A king on e1 excluded from the blockers lets the rook see d1.
	king := bb.FromSquare(bb.E1)
	att := SlidingAttacks(PieceTypeRook, bb.H1, king, king)
	if !att.Has(bb.D1) {
		t.Fatalf("x-ray should continue past the excluded king")
	}
	if SlidingAttacks(PieceTypeRook, bb.H1, king, 0).Has(bb.D1) {
		t.Fatalf("without exclude the king blocks")
	}
	if SlidingAttacks(PieceTypeKnight, bb.H1, 0, 0) != 0 {
		t.Fatalf("non-sliders have no sliding attacks")
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		a, b bb.Square
		want []bb.Square
	}{
		{bb.A1, bb.H8, []bb.Square{bb.NewSquare(1, 1), bb.NewSquare(2, 2), bb.NewSquare(3, 3), bb.NewSquare(4, 4), bb.NewSquare(5, 5), bb.NewSquare(6, 6)}},
		{bb.E1, bb.E8, []bb.Square{bb.NewSquare(4, 1), bb.NewSquare(4, 2), bb.NewSquare(4, 3), bb.NewSquare(4, 4), bb.NewSquare(4, 5), bb.NewSquare(4, 6)}},
		{bb.H1, bb.F1, []bb.Square{bb.G1}},
		{bb.E1, bb.F1, nil},
		{bb.A1, bb.NewSquare(1, 2), nil},
	}
	for _, tt := range tests {
		var want bb.Bitboard
		for _, sq := range tt.want {
			want |= bb.FromSquare(sq)
		}
		if got := Between(tt.a, tt.b); got != want {
			t.Fatalf("Between(%s, %s):\n%s\nwant\n%s", tt.a, tt.b, got, want)
		}
		if got := Between(tt.b, tt.a); got != want {
			t.Fatalf("Between(%s, %s) not symmetric", tt.b, tt.a)
		}
	}
}

func TestPawnAttacksEdges(t *testing.T) {
	a2 := bb.FromSquare(bb.NewSquare(0, 1))
	if got := PawnAttacks(White, a2); got != bb.FromSquare(bb.NewSquare(1, 2)) {
		t.Fatalf("white a2 attacks:\n%s", got)
	}
	h7 := bb.FromSquare(bb.NewSquare(7, 6))
	if got := PawnAttacks(Black, h7); got != bb.FromSquare(bb.NewSquare(6, 5)) {
		t.Fatalf("black h7 attacks:\n%s", got)
	}
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(NewPiece(White, PieceTypePawn), bb.NewSquare(4, 6), bb.E8, PromoteKnight)
	if m.From() != bb.NewSquare(4, 6) || m.To() != bb.E8 {
		t.Fatalf("squares: %s %s", m.From(), m.To())
	}
	if m.Piece() != NewPiece(White, PieceTypePawn) || m.Promotion() != PieceTypeKnight {
		t.Fatalf("piece %v promotion %v", m.Piece(), m.Promotion())
	}
	if m.String() != "e7e8n" {
		t.Fatalf("uci: got %s", m)
	}
	push := NewMove(NewPiece(Black, PieceTypePawn), bb.NewSquare(3, 6), bb.NewSquare(3, 4), SpecialNone)
	if !push.IsDoublePawnPush() {
		t.Fatalf("d7d5 is a double push")
	}
}
