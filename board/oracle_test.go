package board_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/board"
)

var oraclePositions = []string{
	board.FENStartPos,
	kiwipeteFEN,
	pos3FEN,
	pos4FEN,
	pos5FEN,
	pos6FEN,
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	"4k3/8/8/8/8/8/4q3/4K3 w - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
}

func ourMoves(b *board.Board) []string {
	set := make(map[string]struct{})
	for _, m := range b.LegalMoves() {
		set[m.String()] = struct{}{}
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

func dragontoothMoves(fen string) []string {
	dt := dragontoothmg.ParseFen(fen)
	set := make(map[string]struct{})
	for _, m := range dt.GenerateLegalMoves() {
		set[m.String()] = struct{}{}
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

func notnilMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil FEN(%q): %v", fen, err)
	}
	game := chess.NewGame(opt)
	pos := game.Position()
	set := make(map[string]struct{})
	for _, m := range game.ValidMoves() {
		set[chess.UCINotation{}.Encode(pos, m)] = struct{}{}
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

func compareMoveSets(t *testing.T, name, fen string, want, got []string) {
	t.Helper()
	if !slices.Equal(want, got) {
		t.Fatalf("%s disagrees on %s\n ours: %s\n %s: %s",
			name, fen, strings.Join(got, " "), name, strings.Join(want, " "))
	}
}

func TestAgainstDragontooth(t *testing.T) {
	for _, fen := range oraclePositions {
		b := board.MustParseFEN(fen)
		compareMoveSets(t, "dragontoothmg", fen, dragontoothMoves(fen), ourMoves(b))
	}
}

func TestAgainstNotnil(t *testing.T) {
	for _, fen := range oraclePositions {
		b := board.MustParseFEN(fen)
		compareMoveSets(t, "notnil/chess", fen, notnilMoves(t, fen), ourMoves(b))
	}
}

// TestRandomPlayouts walks seeded random games and checks every position
// against both reference generators, plus make/unmake consistency.
func TestRandomPlayouts(t *testing.T) {
	games, plies := 40, 120
	if testing.Short() {
		games = 8
	}
	rng := rand.New(rand.NewSource(20240601))
	for g := 0; g < games; g++ {
		start := oraclePositions[g%len(oraclePositions)]
		b := board.MustParseFEN(start)
		for ply := 0; ply < plies; ply++ {
			fen := b.ToFEN()
			ours := ourMoves(b)
			compareMoveSets(t, "dragontoothmg", fen, dragontoothMoves(fen), ours)
			if ply%4 == 0 {
				compareMoveSets(t, "notnil/chess", fen, notnilMoves(t, fen), ours)
			}
			if len(ours) == 0 || b.IsDrawBy50() {
				break
			}
			moves := b.LegalMoves()
			m := moves[rng.Intn(len(moves))]
			z := b.Hash()
			if !b.MakeMove(m) {
				t.Fatalf("%s: legal move %s rejected", fen, m)
			}
			if !b.Validate() {
				t.Fatalf("%s: board invalid after %s", fen, m)
			}
			if b.Hash() != b.ComputeZobrist() {
				t.Fatalf("%s: incremental hash drifted after %s", fen, m)
			}
			b.UnmakeMove()
			if b.ToFEN() != fen || b.Hash() != z {
				t.Fatalf("%s: unmake of %s left %s", fen, m, b.ToFEN())
			}
			b.MakeMove(m)
		}
	}
}
