// Command mastermind is the CLI front-end for the solver library: it can
// play an interactive game, build and dump a full strategy tree, or run
// raw kernel microbenchmarks.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagPegs       = flag.Int("p", 4, "Number of pegs")
	flagColors     = flag.Int("c", 6, "Number of colors")
	flagRepeatable = flag.Bool("r", true, "Colors may repeat on the same codeword")
	flagNoRepeat   = flag.Bool("n", false, "Colors may not repeat (overrides -r)")

	// flagStrategy selects and configures the guess-picking strategy, shared
	// by both the play and strategy subcommands:
	//   simple
	//   heuristic,score=<minmax|minavg|maxentropy|maxparts>
	//   optimal,objective=<minsteps|mindepth|minworst>,max_depth=<n>
	flagStrategy = flag.String("strategy", "heuristic,score=minavg", "Strategy configuration string")
)

func gameRules() rules.Rules {
	repeatable := *flagRepeatable && !*flagNoRepeat
	return must.M1(rules.New(*flagPegs, *flagColors, repeatable))
}

func main() {
	klog.InitFlags(nil)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	flag.CommandLine.Parse(os.Args[2:])

	var cancel context.CancelFunc
	ctx := context.Background()
	ctx, cancel = context.WithCancel(ctx)
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	var err error
	switch sub {
	case "play":
		err = runPlay(ctx)
	case "strategy":
		err = runStrategy(ctx)
	case "bench":
		err = runBench(ctx)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		klog.Errorf("mastermind %s: %v", sub, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mastermind <command> [-p pegs] [-c colors] [-r|-n] [flags]

commands:
  play      play an interactive game against the solver
  strategy  build a full strategy tree and write it out
  bench     run comparator/partition microbenchmarks`)
}

// newRNG returns a fresh generator seeded from the wall clock. play uses
// it to draw the random secret passed to breaker.RandomSecret, which takes
// an explicit *rand.Rand.
func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xda5e))
}
