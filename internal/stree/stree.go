// Package stree implements the strategy tree (spec component C9): a flat,
// depth-tagged, pre-order node list with no parent pointers and no
// per-node allocation.
package stree

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/gomlx/exceptions"
)

// Node is one entry in the pre-order sequence: the guess made in the
// parent state and the response that leads to this node, tagged with its
// depth (0 at the root).
type Node struct {
	Depth    int
	Guess    codeword.Codeword
	Response feedback.Feedback
}

// Tree is the linear pre-order node list. The zero value is not valid;
// use New or NewSubtree.
type Tree struct {
	Nodes []Node
}

// New returns a tree with just a root: depth 0, empty guess/response.
func New() *Tree {
	return &Tree{Nodes: []Node{{Depth: 0, Guess: codeword.Empty(), Response: feedback.Empty()}}}
}

// NewSubtree returns a standalone one-node tree carrying guess/response at
// depth 0, meant to be spliced into a larger tree with InsertSubtree.
func NewSubtree(guess codeword.Codeword, response feedback.Feedback) *Tree {
	return &Tree{Nodes: []Node{{Depth: 0, Guess: guess, Response: response}}}
}

// Root returns the index of the root node (always 0).
func (t *Tree) Root() int { return 0 }

// Last returns the index of the last node appended.
func (t *Tree) Last() int { return len(t.Nodes) - 1 }

// IsLeaf reports whether node idx is a leaf: its response is the perfect
// feedback for pegs.
func (t *Tree) IsLeaf(idx, pegs int) bool {
	return t.Nodes[idx].Response.IsPerfect(pegs)
}

// Children returns the indices of node idx's direct children: the nodes
// with depth == idx.Depth+1 inside the run immediately after idx, which
// stops at the first node whose depth is <= idx.Depth.
func (t *Tree) Children(idx int) []int {
	var children []int
	depth := t.Nodes[idx].Depth
	for i := idx + 1; i < len(t.Nodes); i++ {
		if t.Nodes[i].Depth <= depth {
			break
		}
		if t.Nodes[i].Depth == depth+1 {
			children = append(children, i)
		}
	}
	return children
}

// Traverse returns the indices of idx's whole subtree, idx included: idx
// itself followed by the maximal contiguous run after it whose depth is
// > idx.Depth.
func (t *Tree) Traverse(idx int) []int {
	depth := t.Nodes[idx].Depth
	end := idx + 1
	for end < len(t.Nodes) && t.Nodes[end].Depth > depth {
		end++
	}
	indices := make([]int, end-idx)
	for i := range indices {
		indices[i] = idx + i
	}
	return indices
}

// ancestorsOf returns the indices of idx's ancestors (idx itself first),
// walking back to the root, found by tracking the nearest preceding node
// whose depth is exactly one less than the current target depth.
func (t *Tree) ancestorsOf(idx int) []int {
	path := []int{idx}
	depth := t.Nodes[idx].Depth
	for i := idx - 1; i >= 0 && depth > 0; i-- {
		if t.Nodes[i].Depth == depth-1 {
			path = append(path, i)
			depth--
		}
	}
	return path
}

// onRightSpine reports whether parent is an ancestor of the current last
// node, or is the last node itself -- the only place InsertChild and
// InsertSubtree are allowed to append.
func (t *Tree) onRightSpine(parent int) bool {
	last := t.Last()
	if parent == last {
		return true
	}
	for _, a := range t.ancestorsOf(last) {
		if a == parent {
			return true
		}
	}
	return false
}

// InsertChild appends a new node as a child of parent. parent must be on
// the right spine (an ancestor of the last node, or the last node itself);
// violating this is a PreconditionViolation (a programming error) and
// panics, matching the specification's treatment of API misuse.
func (t *Tree) InsertChild(parent int, guess codeword.Codeword, response feedback.Feedback) int {
	if !t.onRightSpine(parent) {
		exceptions.Panicf("stree: InsertChild(parent=%d) not on the right spine (last=%d)", parent, t.Last())
	}
	child := Node{Depth: t.Nodes[parent].Depth + 1, Guess: guess, Response: response}
	t.Nodes = append(t.Nodes, child)
	return t.Last()
}

// InsertSubtree splices subtree under parent, rebasing every node's depth
// by parent.Depth + 1 - subtree's root depth. parent must be on the right
// spine, exactly as for InsertChild.
func (t *Tree) InsertSubtree(parent int, subtree *Tree) {
	if !t.onRightSpine(parent) {
		exceptions.Panicf("stree: InsertSubtree(parent=%d) not on the right spine (last=%d)", parent, t.Last())
	}
	offset := t.Nodes[parent].Depth + 1 - subtree.Nodes[0].Depth
	for _, n := range subtree.Nodes {
		n.Depth += offset
		t.Nodes = append(t.Nodes, n)
	}
}

// Erase removes the contiguous node range [first, last), used by the
// optimal search to discard a pruned branch it had speculatively emitted.
func (t *Tree) Erase(first, last int) {
	t.Nodes = append(t.Nodes[:first], t.Nodes[last:]...)
}

// GetDepthInfo counts leaves (perfect-response nodes) at each depth into
// freq[depth] (freq must have length >= maxDepth+1) and returns the sum of
// every leaf's depth -- the total number of guesses across all secrets.
func (t *Tree) GetDepthInfo(freq []int, maxDepth, pegs int) (totalDepth int) {
	for _, n := range t.Nodes {
		if !n.Response.IsPerfect(pegs) {
			continue
		}
		if n.Depth <= maxDepth {
			freq[n.Depth]++
		}
		totalDepth += n.Depth
	}
	return totalDepth
}
