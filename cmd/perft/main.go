package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	moves := flag.String("moves", "", "Space separated UCI moves played from -fen before counting")
	verify := flag.Bool("verify", false, "Cross-check divide counts against dragontoothmg")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.SetHandler(cli.Default)
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("bad -log-level")
	}
	log.SetLevel(lvl)

	if *depth <= 0 {
		log.WithField("depth", *depth).Error("-depth must be > 0")
		os.Exit(2)
	}

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
		log.WithField("fen", b.ToFEN()).Debug("position after moves")
	}

	if *verify {
		if mismatches := verifyDivide(b, *depth); mismatches > 0 {
			log.WithFields(log.Fields{"depth": *depth, "mismatches": mismatches}).Error("divide differs from dragontoothmg")
			os.Exit(1)
		}
		log.WithField("depth", *depth).Info("divide matches dragontoothmg")
		return
	}

	// Optional divide output
	if *divide {
		div := divideByUCI(b, *depth)
		keys := maps.Keys(div)
		slices.Sort(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
			sum += div[k]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.WithError(err).Error("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Error("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.WithError(err).Error("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Error("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func divideByUCI(b *board.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for m, n := range board.PerftDivide(b, depth) {
		out[m.String()] = n
	}
	return out
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}

func dragontoothDivide(fen string, depth int) map[string]uint64 {
	dt := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range dt.GenerateLegalMoves() {
		n := uint64(1)
		if depth > 1 {
			undo := dt.Apply(m)
			n = dragontoothPerft(&dt, depth-1)
			undo()
		}
		out[m.String()] = n
	}
	return out
}

// verifyDivide logs every root move whose count differs between the two
// generators and returns how many did.
func verifyDivide(b *board.Board, depth int) int {
	ours := divideByUCI(b, depth)
	theirs := dragontoothDivide(b.ToFEN(), depth)

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	mismatches := 0
	for _, k := range keys {
		got, okOurs := ours[k]
		want, okTheirs := theirs[k]
		if okOurs && okTheirs && got == want {
			log.WithFields(log.Fields{"move": k, "nodes": got}).Debug("match")
			continue
		}
		mismatches++
		log.WithFields(log.Fields{
			"move":        k,
			"ours":        got,
			"dragontooth": want,
			"generated":   okOurs,
			"expected":    okTheirs,
		}).Warn("mismatch")
	}
	return mismatches
}
