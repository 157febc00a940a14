package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.WithError(err).WithField("cmd", name).Error("run failed")
	return 1
}

func main() {
	log.SetHandler(cli.Default)

	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, depth := range []string{"3", "4", "5", "6"} {
		if code := run("go", "run", "./cmd/perft", "-depth", depth, "-label", "Initial"); code != 0 {
			log.WithField("depth", depth).Warn("perft run failed")
		}
	}
	_ = run("go", "run", "./cmd/perft", "-fen", kiwipeteFEN, "-depth", "3", "-label", "Kiwipete")

	// Cross-check a couple of shallow trees against dragontoothmg.
	_ = run("go", "run", "./cmd/perft", "-depth", "4", "-verify")
	_ = run("go", "run", "./cmd/perft", "-fen", kiwipeteFEN, "-depth", "3", "-verify")
}
