package bitboard

import "testing"

func TestRankMasks(t *testing.T) {
	if Rank(1) != 0xFF {
		t.Fatalf("rank 1: got %#x", uint64(Rank(1)))
	}
	if Rank(8) != 0xFF00000000000000 {
		t.Fatalf("rank 8: got %#x", uint64(Rank(8)))
	}
	var all Bitboard
	for r := 1; r <= 8; r++ {
		all |= Rank(r)
	}
	if all != Full {
		t.Fatalf("ranks do not cover the board")
	}
}

func TestRankPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for rank 0")
		}
	}()
	_ = Rank(0)
}

func TestFileMasks(t *testing.T) {
	for f := 0; f < 8; f++ {
		if Files[f].Count() != 8 {
			t.Fatalf("file %d has %d squares", f, Files[f].Count())
		}
		for r := 0; r < 8; r++ {
			if !Files[f].Has(NewSquare(f, r)) {
				t.Fatalf("file %d missing rank %d", f, r)
			}
		}
	}
	if FileAB != Files[0]|Files[1] || FileGH != Files[6]|Files[7] {
		t.Fatalf("guard masks mismatch")
	}
}

func TestSquaresAndScans(t *testing.T) {
	b := FromSquare(3) | FromSquare(17) | FromSquare(63)
	got := b.Squares()
	want := []Square{3, 17, 63}
	if len(got) != len(want) {
		t.Fatalf("Squares: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares: got %v want %v", got, want)
		}
	}
	if b.LSB() != 3 || b.MSB() != 63 {
		t.Fatalf("LSB/MSB: got %d/%d", b.LSB(), b.MSB())
	}
	if sq := PopLSB(&b); sq != 3 || b.Count() != 2 {
		t.Fatalf("PopLSB: got %d, remaining %d", sq, b.Count())
	}
}

func TestParseSquare(t *testing.T) {
	cases := map[string]Square{"a1": A1, "h1": H1, "e4": 28, "a8": A8, "h8": H8}
	for alg, want := range cases {
		got, err := ParseSquare(alg)
		if err != nil || got != want {
			t.Fatalf("ParseSquare(%q): got %d, %v want %d", alg, got, err, want)
		}
		if got.String() != alg {
			t.Fatalf("String(): got %q want %q", got.String(), alg)
		}
	}
	for _, bad := range []string{"", "i1", "a9", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Fatalf("ParseSquare(%q): expected error", bad)
		}
	}
}

func TestStringGrid(t *testing.T) {
	s := FromSquare(A1).String()
	want := ". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		"1 . . . . . . .\n"
	if s != want {
		t.Fatalf("grid:\n%s\nwant:\n%s", s, want)
	}
}
