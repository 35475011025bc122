package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/parameters"
	"github.com/go-mastermind/mastermind/internal/serialize"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/go-mastermind/mastermind/internal/stree"
	"github.com/go-mastermind/mastermind/internal/ui/spinning"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagStrategyFormat = flag.String("format", "text", "Output format: text or xml")
	flagStrategyOut    = flag.String("out", "", "Output file, empty for stdout")
)

// buildStrategy parses a flagStrategy-style config string and returns the
// corresponding single-guess Strategy. It does not handle "optimal", which
// builds a whole tree at once rather than one guess at a time; callers
// that accept "optimal" should check optimalParams first.
func buildStrategy(e *engine.Engine, config string) (strategy.Strategy, error) {
	params := parameters.Params(parameters.NewFromConfigString(config))
	if _, ok := params["simple"]; ok {
		return strategy.Simple{}, nil
	}
	if _, ok := params["heuristic"]; ok {
		scoreName, err := parameters.PopParamOr(params, "score", "minavg")
		if err != nil {
			return nil, err
		}
		sf, err := parseScore(scoreName)
		if err != nil {
			return nil, err
		}
		return &strategy.Heuristic{Engine: e, Score: sf}, nil
	}
	return nil, errors.Errorf("strategy config %q must select simple or heuristic for interactive play (optimal is only available to the strategy subcommand)", config)
}

// optimalParams reports whether config selects the optimal search, and if
// so parses its objective and max_depth parameters.
func optimalParams(config string) (objective strategy.Objective, maxDepth int, ok bool, err error) {
	params := parameters.Params(parameters.NewFromConfigString(config))
	if _, present := params["optimal"]; !present {
		return 0, 0, false, nil
	}
	objName, err := parameters.PopParamOr(params, "objective", "minsteps")
	if err != nil {
		return 0, 0, false, err
	}
	objective, err = parseObjective(objName)
	if err != nil {
		return 0, 0, false, err
	}
	maxDepth, err = parameters.PopParamOr(params, "max_depth", 0)
	if err != nil {
		return 0, 0, false, err
	}
	return objective, maxDepth, true, nil
}

func parseScore(score string) (strategy.ScoreFunc, error) {
	switch score {
	case "minmax":
		return strategy.MinMax, nil
	case "minavg":
		return strategy.MinAvg, nil
	case "maxentropy":
		return strategy.MaxEntropy, nil
	case "maxparts":
		return strategy.MaxParts, nil
	default:
		return 0, errors.Errorf("unknown heuristic score %q", score)
	}
}

func parseObjective(objective string) (strategy.Objective, error) {
	switch objective {
	case "minsteps":
		return strategy.MinSteps, nil
	case "mindepth":
		return strategy.MinDepth, nil
	case "minworst":
		return strategy.MinWorst, nil
	default:
		return 0, errors.Errorf("unknown objective %q", objective)
	}
}

// runStrategy builds a full strategy tree for the configured rules and
// -strategy config, and writes it out in the requested format.
func runStrategy(ctx context.Context) error {
	r := gameRules()
	e, err := engine.New(r)
	if err != nil {
		return err
	}

	spin := spinning.New(ctx)
	start := time.Now()

	var tree *stree.Tree
	objective, maxDepth, isOptimal, err := optimalParams(*flagStrategy)
	if err != nil {
		spin.Done()
		return err
	}
	if isOptimal {
		opt := strategy.NewOptimal(e, objective, strategy.Constraints{MaxDepth: maxDepth})
		var cost strategy.Cost
		var built bool
		tree, cost, built = opt.Build()
		spin.Done()
		if !built {
			return errors.Errorf("no strategy satisfies max_depth=%d", maxDepth)
		}
		klog.Infof("optimal strategy built in %s: steps=%d depth=%d worst=%d", time.Since(start), cost.Steps, cost.Depth, cost.Worst)
	} else {
		s, err := buildStrategy(e, *flagStrategy)
		if err != nil {
			spin.Done()
			return err
		}
		tree, err = strategy.Build(e, s)
		spin.Done()
		if err != nil {
			return errors.Wrap(err, "strategy")
		}
		klog.Infof("strategy %q built in %s", *flagStrategy, time.Since(start))
	}

	out := os.Stdout
	if *flagStrategyOut != "" {
		f, err := os.Create(*flagStrategyOut)
		if err != nil {
			return errors.Wrap(err, "strategy: create output file")
		}
		defer f.Close()
		out = f
	}

	switch *flagStrategyFormat {
	case "xml":
		return serialize.WriteXML(out, tree, r)
	case "text":
		return serialize.WriteText(out, tree, r)
	default:
		return errors.Errorf("unknown output format %q", *flagStrategyFormat)
	}
}
