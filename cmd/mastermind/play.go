package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-mastermind/mastermind/internal/breaker"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/go-mastermind/mastermind/internal/ui/cli"
	"github.com/google/uuid"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var flagPlayAsKeep = flag.Bool("keeper", false, "Play as the secret-keeper: you answer feedback for the solver's guesses")

// runPlay runs one interactive game, either with the solver guessing a
// secret the human holds (-keeper) or the human guessing a random secret
// the solver judges.
func runPlay(ctx context.Context) error {
	r := gameRules()
	e := must.M1(engine.New(r))
	s, err := buildStrategy(e, *flagStrategy)
	if err != nil {
		return errors.Wrap(err, "play")
	}

	matchID := uuid.New()
	klog.V(1).Infof("starting match %s with rules %s", matchID, r)

	ui := cli.New(r, true)
	if *flagPlayAsKeep {
		return playAsKeeper(ctx, e, s, ui)
	}
	return playAsGuesser(ctx, e, ui)
}

// playAsKeeper has the solver make guesses and the human supply feedback
// for a secret only the human knows.
func playAsKeeper(ctx context.Context, e *engine.Engine, s strategy.Strategy, ui *cli.UI) error {
	b := breaker.New(e, s)
	for turn := 1; ; turn++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		guess, err := b.MakeGuess()
		if err != nil {
			return errors.Wrap(err, "play: solver could not produce a guess")
		}
		response, err := ui.ReadFeedback(fmt.Sprintf("Solver guesses %s. Your feedback (<n>A<n>B): ", ui.RenderCodeword(guess)))
		if err != nil {
			return err
		}
		ui.PrintGuess(turn, guess, response)
		if response.IsPerfect(e.Rules.Pegs) {
			ui.PrintBanner(fmt.Sprintf("Solved in %d guesses!", turn))
			if err := b.AddFeedback(guess, response); err == nil {
				ui.PrintHistory(b.History())
			}
			return nil
		}
		if err := b.AddFeedback(guess, response); err != nil {
			return err
		}
	}
}

// playAsGuesser has the human guess a secret randomly drawn from the
// universe, with the engine judging each guess.
func playAsGuesser(ctx context.Context, e *engine.Engine, ui *cli.UI) error {
	secret := breaker.RandomSecret(newRNG(), e.Rules)
	for turn := 1; ; turn++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		guess, err := ui.ReadGuess(fmt.Sprintf("Turn %d, your guess: ", turn))
		if err != nil {
			return err
		}
		response := e.Compare(guess, secret)
		ui.PrintGuess(turn, guess, response)
		if response.IsPerfect(e.Rules.Pegs) {
			ui.PrintBanner(fmt.Sprintf("You found it in %d guesses!", turn))
			return nil
		}
	}
}
