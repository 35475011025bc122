// Package serialize renders a strategy tree to the two textual forms the
// original tool supported (grounded on original_source's
// StrategyTreeNode::WriteToFile): a terse indented "guess:feedback" form
// (the Irving convention) and an XML document summarizing the tree's
// depth histogram alongside its full nested state detail.
package serialize

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/stree"
	"github.com/pkg/errors"
)

// WriteText renders tree in the Irving convention: each non-root node
// contributes one line "<guess>:<feedback>", indented two spaces per
// depth level, in pre-order.
func WriteText(w io.Writer, tree *stree.Tree, r rules.Rules) error {
	return writeTextNode(w, tree, tree.Root(), r, 0)
}

func writeTextNode(w io.Writer, tree *stree.Tree, idx int, r rules.Rules, indent int) error {
	for _, child := range tree.Children(idx) {
		n := tree.Nodes[child]
		if _, err := fmt.Fprintf(w, "%s%s:%s\n", strings.Repeat("  ", indent), n.Guess.Format(r.Pegs, ""), n.Response); err != nil {
			return errors.Wrap(err, "serialize: write text line")
		}
		if !tree.IsLeaf(child, r.Pegs) {
			if err := writeTextNode(w, tree, child, r, indent+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// xmlState is one <state guess="..." feedback="..."> element, nesting
// further states for non-leaf children. Elements close in pre-order as
// depth decreases, matching the indented text form's structure.
type xmlState struct {
	XMLName  xml.Name   `xml:"state"`
	Guess    string     `xml:"guess,attr"`
	Feedback string     `xml:"feedback,attr"`
	States   []xmlState `xml:"state,omitempty"`
}

type xmlWhere struct {
	XMLName xml.Name `xml:"where"`
	Steps   int      `xml:"steps,attr"`
	Count   int      `xml:"count,attr"`
}

// xmlSummary reports the total guesses (totalsteps) needed to resolve
// every secret in the tree, and a histogram of how many secrets take
// exactly k steps, for each observed k.
type xmlSummary struct {
	XMLName    xml.Name   `xml:"summary"`
	TotalSteps int        `xml:"totalsteps,attr"`
	Where      []xmlWhere `xml:"where"`
}

type xmlDetails struct {
	XMLName xml.Name   `xml:"details"`
	States  []xmlState `xml:"state"`
}

type xmlStrategy struct {
	XMLName    xml.Name   `xml:"mastermind-strategy"`
	Pegs       int        `xml:"pegs,attr"`
	Colors     int        `xml:"colors,attr"`
	Repeatable bool       `xml:"repeatable,attr"`
	Summary    xmlSummary `xml:"summary"`
	Details    xmlDetails `xml:"details"`
}

// WriteXML renders tree as a <mastermind-strategy> document: a <summary>
// of the per-depth leaf histogram followed by a <details> block of
// nested <state> elements mirroring the tree's pre-order structure.
func WriteXML(w io.Writer, tree *stree.Tree, r rules.Rules) error {
	maxDepth := 0
	for _, n := range tree.Nodes {
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}
	freq := make([]int, maxDepth+1)
	totalSteps := tree.GetDepthInfo(freq, maxDepth, r.Pegs)

	where := make([]xmlWhere, 0, maxDepth)
	for steps := 1; steps <= maxDepth; steps++ {
		if freq[steps] > 0 {
			where = append(where, xmlWhere{Steps: steps, Count: freq[steps]})
		}
	}

	doc := xmlStrategy{
		Pegs:       r.Pegs,
		Colors:     r.Colors,
		Repeatable: r.Repeatable,
		Summary:    xmlSummary{TotalSteps: totalSteps, Where: where},
		Details:    xmlDetails{States: buildXMLStates(tree, tree.Root(), r)},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "serialize: write XML header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "serialize: encode XML")
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func buildXMLStates(tree *stree.Tree, idx int, r rules.Rules) []xmlState {
	children := tree.Children(idx)
	states := make([]xmlState, 0, len(children))
	for _, child := range children {
		n := tree.Nodes[child]
		s := xmlState{Guess: n.Guess.Format(r.Pegs, ""), Feedback: n.Response.String()}
		if !tree.IsLeaf(child, r.Pegs) {
			s.States = buildXMLStates(tree, child, r)
		}
		states = append(states, s)
	}
	return states
}
