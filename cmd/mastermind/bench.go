package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/partition"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

var (
	flagBenchRepeat = flag.Int("repeat", 50, "Number of full-universe passes per benchmark")
	flagBenchConfig = flag.String("config", "", "Optional YAML file overriding -p/-c/-r/-n/-repeat for batch runs")
)

// benchConfig is the schema for -config=bench.yaml: any field left unset
// (nil) falls back to its corresponding CLI flag, so a config file only
// needs to name the values it wants to override.
type benchConfig struct {
	Pegs       *int  `yaml:"pegs"`
	Colors     *int  `yaml:"colors"`
	Repeatable *bool `yaml:"repeatable"`
	Repeat     *int  `yaml:"repeat"`
}

func loadBenchConfig(path string) (benchConfig, error) {
	var cfg benchConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "bench: read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "bench: parse config")
	}
	return cfg, nil
}

// runBench measures raw comparator and partition throughput over the
// configured rules' universe, bypassing strategy search entirely.
func runBench(ctx context.Context) error {
	pegs, colors := *flagPegs, *flagColors
	repeatable := *flagRepeatable && !*flagNoRepeat
	repeat := *flagBenchRepeat

	if *flagBenchConfig != "" {
		cfg, err := loadBenchConfig(*flagBenchConfig)
		if err != nil {
			return err
		}
		if cfg.Pegs != nil {
			pegs = *cfg.Pegs
		}
		if cfg.Colors != nil {
			colors = *cfg.Colors
		}
		if cfg.Repeatable != nil {
			repeatable = *cfg.Repeatable
		}
		if cfg.Repeat != nil {
			repeat = *cfg.Repeat
		}
	}

	r, err := rules.New(pegs, colors, repeatable)
	if err != nil {
		return errors.Wrap(err, "bench: config")
	}
	e, err := engine.New(r, engine.WithCallCounter())
	if err != nil {
		return err
	}
	universe := e.Universe()
	klog.Infof("bench: universe size %d (pegs=%d colors=%d repeatable=%v)", len(universe), r.Pegs, r.Colors, r.Repeatable)

	guess := universe[0]

	start := time.Now()
	for i := 0; i < repeat; i++ {
		if err := checkDone(ctx); err != nil {
			return err
		}
		e.CompareFrequency(guess, universe)
	}
	elapsed := time.Since(start)
	calls := e.CompareCalls()
	klog.Infof("compare: %d calls in %s (%.0f calls/s)", calls, elapsed, float64(calls)/elapsed.Seconds())

	trial := make([]codeword.Codeword, len(universe))
	start = time.Now()
	for i := 0; i < repeat; i++ {
		if err := checkDone(ctx); err != nil {
			return err
		}
		copy(trial, universe)
		partition.Partition(trial, guess, e)
	}
	elapsed = time.Since(start)
	klog.Infof("partition: %d passes over %d codewords in %s (%.0f codewords/s)", repeat, len(universe), elapsed, float64(repeat*len(universe))/elapsed.Seconds())

	return nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
