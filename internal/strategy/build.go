package strategy

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/equivalence"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/partition"
	"github.com/go-mastermind/mastermind/internal/stree"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Build walks s.MakeGuess over every secret in e's universe and assembles
// the resulting decision tree, the way Optimal.Build does for the
// branch-and-bound search -- except here each node's guess is whatever s
// picks, not a provably optimal one. Sibling response cells are solved
// concurrently, since s.MakeGuess over one cell never depends on another.
// Build fails if s ever declines a guess (MakeGuess returning ok=false)
// while secrets remain to distinguish.
func Build(e *engine.Engine, s Strategy) (*stree.Tree, error) {
	tree := stree.New()
	filter := equivalence.New(e.Rules)
	secrets := append([]codeword.Codeword(nil), e.Universe()...)

	if len(secrets) == 1 {
		tree.InsertChild(tree.Root(), secrets[0], feedback.Perfect(e.Rules.Pegs))
		return tree, nil
	}

	if guess, cells, ok := Obvious(e, secrets); ok {
		return tree, buildChildrenFromCells(tree, tree.Root(), e, s, guess, cells, secrets, filter)
	}

	candidates := filter.CanonicalCandidates(e.Universe())
	guess, ok := s.MakeGuess(secrets, candidates)
	if !ok {
		return nil, errors.Errorf("strategy: declined to guess with %d possibilities remaining", len(secrets))
	}
	if err := buildChildren(tree, tree.Root(), e, s, guess, secrets, filter); err != nil {
		return nil, err
	}
	return tree, nil
}

// buildChildren partitions secrets by guess and splices one subtree per
// response cell under parent. Non-perfect cells are solved concurrently
// via buildSubtree, then spliced in partition order so the tree's
// pre-order layout doesn't depend on goroutine scheduling.
func buildChildren(tree *stree.Tree, parent int, e *engine.Engine, s Strategy, guess codeword.Codeword, secrets []codeword.Codeword, filter *equivalence.Filter) error {
	cells := partition.Partition(secrets, guess, e)
	return buildChildrenFromCells(tree, parent, e, s, guess, cells, secrets, filter)
}

// buildChildrenFromCells splices one subtree per response cell under
// parent, given a partition already computed by either buildChildren or
// the Obvious shortcut.
func buildChildrenFromCells(tree *stree.Tree, parent int, e *engine.Engine, s Strategy, guess codeword.Codeword, cells []partition.Cell, secrets []codeword.Codeword, filter *equivalence.Filter) error {
	perfectOrdinal := feedback.Perfect(e.Rules.Pegs).Ordinal()

	subtrees := make([]*stree.Tree, len(cells))
	var g errgroup.Group
	for i, c := range cells {
		i, c := i, c
		if c.Response.Ordinal() == perfectOrdinal {
			subtrees[i] = stree.NewSubtree(guess, c.Response)
			continue
		}
		g.Go(func() error {
			sub, err := buildSubtree(e, s, guess, c.Response, c.Slice(secrets), filter)
			if err != nil {
				return err
			}
			subtrees[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, sub := range subtrees {
		tree.InsertSubtree(parent, sub)
	}
	return nil
}

// buildSubtree resolves one response cell in isolation, returning a
// standalone subtree rooted at guess/response ready for InsertSubtree.
func buildSubtree(e *engine.Engine, s Strategy, guess codeword.Codeword, response feedback.Feedback, secrets []codeword.Codeword, filter *equivalence.Filter) (*stree.Tree, error) {
	newlyExcluded := colormask.Full(e.Rules.Colors) &^ e.ColorMask(secrets)
	childFilter := filter.Clone()
	childFilter.AddConstraint(guess, newlyExcluded)
	sub := stree.NewSubtree(guess, response)

	if len(secrets) == 1 {
		sub.InsertChild(sub.Root(), secrets[0], feedback.Perfect(e.Rules.Pegs))
		return sub, nil
	}

	if nextGuess, cells, ok := Obvious(e, secrets); ok {
		return sub, buildChildrenFromCells(sub, sub.Root(), e, s, nextGuess, cells, secrets, childFilter)
	}

	candidates := childFilter.CanonicalCandidates(e.Universe())
	nextGuess, ok := s.MakeGuess(secrets, candidates)
	if !ok {
		return nil, errors.Errorf("strategy: declined to guess with %d possibilities remaining", len(secrets))
	}
	if err := buildChildren(sub, sub.Root(), e, s, nextGuess, secrets, childFilter); err != nil {
		return nil, err
	}
	return sub, nil
}
