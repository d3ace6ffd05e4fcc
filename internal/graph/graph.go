// Package graph answers ancestry questions over the commit DAG.
//
// Commits are held in an arena keyed by id and loaded from the object
// store on first use. Edges are ids, never pointers, so a walk is a pure
// traversal over the arena.
package graph

import (
	"fmt"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/keshon/tvc/internal/object"
)

// Source loads commits by id.
type Source interface {
	GetCommit(id object.ID) (*object.Commit, error)
}

// Node is one commit in the arena.
type Node struct {
	ID     object.ID
	Commit *object.Commit
}

// Parents returns parent ids, primary first.
func (n *Node) Parents() []object.ID { return n.Commit.Parents() }

type Graph struct {
	src   Source
	nodes map[object.ID]*Node
}

func New(src Source) *Graph {
	return &Graph{src: src, nodes: make(map[object.ID]*Node)}
}

// Node returns the arena node for id, loading it if needed.
func (g *Graph) Node(id object.ID) (*Node, error) {
	if n, ok := g.nodes[id]; ok {
		return n, nil
	}
	c, err := g.src.GetCommit(id)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", id, err)
	}
	n := &Node{ID: id, Commit: c}
	g.nodes[id] = n
	return n, nil
}

// Ancestors yields id and every commit reachable from it, each once,
// breadth-first with primary parents before second parents. A load
// failure is yielded once and ends the sequence.
func (g *Graph) Ancestors(id object.ID) iter.Seq2[*Node, error] {
	return func(yield func(*Node, error) bool) {
		seen := map[object.ID]bool{id: true}
		queue := []object.ID{id}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			n, err := g.Node(cur)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(n, nil) {
				return
			}
			for _, p := range n.Parents() {
				if !seen[p] {
					seen[p] = true
					queue = append(queue, p)
				}
			}
		}
	}
}

// AncestorSet collects the ids Ancestors yields.
func (g *Graph) AncestorSet(id object.ID) (mapset.Set[object.ID], error) {
	set := mapset.NewThreadUnsafeSet[object.ID]()
	for n, err := range g.Ancestors(id) {
		if err != nil {
			return nil, err
		}
		set.Add(n.ID)
	}
	return set, nil
}

// IsAncestor reports whether a is b or reachable from b.
func (g *Graph) IsAncestor(a, b object.ID) (bool, error) {
	for n, err := range g.Ancestors(b) {
		if err != nil {
			return false, err
		}
		if n.ID == a {
			return true, nil
		}
	}
	return false, nil
}

// label is the breadth-first discovery of one commit from a tip.
type label struct {
	dist   int // edges from the tip
	second int // second-parent edges on the discovery path
}

func (g *Graph) labels(tip object.ID) (map[object.ID]label, error) {
	out := map[object.ID]label{tip: {}}
	for n, err := range g.Ancestors(tip) {
		if err != nil {
			return nil, err
		}
		from := out[n.ID]
		for i, p := range n.Parents() {
			if _, ok := out[p]; ok {
				continue
			}
			l := label{dist: from.dist + 1, second: from.second}
			if i == 1 {
				l.second++
			}
			out[p] = l
		}
	}
	return out, nil
}

// NearestCommonAncestor returns the split point of a and b: a common
// ancestor that no other common ancestor descends from. When several
// qualify (criss-cross histories) the one minimizing, in order,
// max(distA, distB), min(distA, distB), second-parent edges, and id wins,
// so the result does not depend on argument order.
func (g *Graph) NearestCommonAncestor(a, b object.ID) (object.ID, error) {
	la, err := g.labels(a)
	if err != nil {
		return "", err
	}
	lb, err := g.labels(b)
	if err != nil {
		return "", err
	}

	common := mapset.NewThreadUnsafeSet[object.ID]()
	for id := range la {
		if _, ok := lb[id]; ok {
			common.Add(id)
		}
	}
	if common.IsEmpty() {
		return "", fmt.Errorf("commits %s and %s share no history", a, b)
	}

	// Every proper ancestor of a common commit is itself common and is
	// excluded. Walks stop at commits already excluded, whose ancestors
	// were excluded with them.
	dominated := mapset.NewThreadUnsafeSet[object.ID]()
	for id := range common.Iter() {
		n, err := g.Node(id)
		if err != nil {
			return "", err
		}
		for _, p := range n.Parents() {
			if err := g.exclude(p, dominated); err != nil {
				return "", err
			}
		}
	}

	var best object.ID
	var bestKey [3]int
	for id := range common.Difference(dominated).Iter() {
		x, y := la[id], lb[id]
		key := [3]int{max(x.dist, y.dist), min(x.dist, y.dist), x.second + y.second}
		if best == "" || less(key, bestKey) || (key == bestKey && id < best) {
			best, bestKey = id, key
		}
	}
	return best, nil
}

func (g *Graph) exclude(id object.ID, dominated mapset.Set[object.ID]) error {
	if dominated.Contains(id) {
		return nil
	}
	stack := []object.ID{id}
	dominated.Add(id)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, err := g.Node(cur)
		if err != nil {
			return err
		}
		for _, p := range n.Parents() {
			if dominated.Add(p) {
				stack = append(stack, p)
			}
		}
	}
	return nil
}

func less(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
