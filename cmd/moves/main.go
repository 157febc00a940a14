package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"chess-movegen/board"
	mg "chess-movegen/movegen"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	moves := flag.String("moves", "", "Space separated UCI moves played from -fen first")
	grids := flag.Bool("grids", false, "Print capture, push, attacker and king danger bitboards")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.SetHandler(cli.Default)
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("bad -log-level")
	}
	log.SetLevel(lvl)

	b, err := board.ParseFEN(*fen)
	if err != nil {
		log.WithError(err).WithField("fen", *fen).Error("parse FEN")
		os.Exit(2)
	}
	if *moves != "" {
		if err := b.PlayMoves(strings.Fields(*moves)...); err != nil {
			log.WithError(err).Error("apply -moves")
			os.Exit(2)
		}
	}

	res, err := b.Analyze()
	if err != nil {
		log.WithError(err).Error("generate")
		os.Exit(1)
	}

	current := b.ToFEN()
	san, err := sanNames(current, res.Moves)
	if err != nil {
		log.WithError(err).Warn("SAN unavailable")
	}

	log.WithFields(log.Fields{
		"fen":       current,
		"moves":     len(res.Moves),
		"attackers": res.AttackerCount,
	}).Info("position")

	lines := make([]string, 0, len(res.Moves))
	for _, m := range res.Moves {
		line := m.String()
		if s, ok := san[m]; ok {
			line = fmt.Sprintf("%-6s %s", line, s)
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	for _, l := range lines {
		fmt.Println(l)
	}

	switch {
	case b.InCheckmate():
		fmt.Println("checkmate")
	case b.InStalemate():
		fmt.Println("stalemate")
	case res.InCheck():
		fmt.Println("check")
	}

	if *grids {
		printGrid("attackers", res.Attackers.String())
		printGrid("capture mask", res.CaptureMask.String())
		printGrid("push mask", res.PushMask.String())
		printGrid("king danger", res.KingDanger.String())
	}
}

func printGrid(title, grid string) {
	fmt.Printf("\n%s:\n%s\n", title, grid)
}

// sanNames renders each move in standard algebraic notation.
func sanNames(fen string, moves []mg.Move) (map[mg.Move]string, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()
	out := make(map[mg.Move]string, len(moves))
	for _, m := range moves {
		cm, err := chess.UCINotation{}.Decode(pos, m.String())
		if err != nil {
			return out, fmt.Errorf("decode %s: %w", m, err)
		}
		out[m] = chess.AlgebraicNotation{}.Encode(pos, cm)
	}
	return out, nil
}
