// Package layout assigns 2-D drawing coordinates to the nodes of a tree.Tree.
//
// Each node sits in the middle of a horizontal band [xStart, xEnd]; its left
// child gets [xStart, x] and its right child [x, xEnd]. Depth d is drawn at
// y = d*LevelHeight + LevelHeight/2. The root band is [0, Width].
package layout

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// Defaults match a 600px canvas with 80px rows.
const (
	DefaultWidth       = 600.0
	DefaultLevelHeight = 80.0
)

// Position is the drawing location of one node.
type Position struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Depth int     `json:"depth"`
}

// Edge joins a parent position to a child position.
type Edge struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Option configures Compute.
type Option func(*config)

type config struct {
	width       float64
	levelHeight float64
}

// WithWidth sets the canvas width. Panics if w <= 0.
func WithWidth(w float64) Option {
	if !(w > 0) {
		panic(fmt.Sprintf("layout: WithWidth(%v): width must be > 0", w))
	}

	return func(c *config) { c.width = w }
}

// WithLevelHeight sets the vertical distance between depths. Panics if h <= 0.
func WithLevelHeight(h float64) Option {
	if !(h > 0) {
		panic(fmt.Sprintf("layout: WithLevelHeight(%v): height must be > 0", h))
	}

	return func(c *config) { c.levelHeight = h }
}

// band is a pending node with its horizontal extent.
type band struct {
	id           int
	depth        int
	xStart, xEnd float64
}

// Compute returns one Position per node, in preorder.
// A nil or empty tree yields an empty slice.
// Complexity: O(N) time, O(H) stack.
func Compute(t *tree.Tree, opts ...Option) []Position {
	cfg := config{width: DefaultWidth, levelHeight: DefaultLevelHeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Position, 0, t.Len())
	if t.IsEmpty() {
		return out
	}

	stack := []band{{id: t.Root(), xStart: 0, xEnd: cfg.width}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x := (b.xStart + b.xEnd) / 2
		v, _ := t.Value(b.id)
		out = append(out, Position{
			ID:    b.id,
			Value: v,
			X:     x,
			Y:     float64(b.depth)*cfg.levelHeight + cfg.levelHeight/2,
			Depth: b.depth,
		})

		// right first so left pops first
		if r := t.Right(b.id); r != tree.None {
			stack = append(stack, band{id: r, depth: b.depth + 1, xStart: x, xEnd: b.xEnd})
		}
		if l := t.Left(b.id); l != tree.None {
			stack = append(stack, band{id: l, depth: b.depth + 1, xStart: b.xStart, xEnd: x})
		}
	}

	return out
}

// Edges pairs every parent position with each child position.
// positions must come from Compute on the same tree.
func Edges(t *tree.Tree, positions []Position) []Edge {
	byID := make(map[int]Position, len(positions))
	for _, p := range positions {
		byID[p.ID] = p
	}

	edges := make([]Edge, 0, len(positions))
	for _, p := range positions {
		for _, c := range [2]int{t.Left(p.ID), t.Right(p.ID)} {
			if child, ok := byID[c]; ok {
				edges = append(edges, Edge{From: p, To: child})
			}
		}
	}

	return edges
}

// Height returns the canvas height needed for positions: one row per depth
// plus one row of margin. Empty input needs no canvas.
func Height(positions []Position, levelHeight float64) float64 {
	if len(positions) == 0 {
		return 0
	}
	maxDepth := 0
	for _, p := range positions {
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}

	return float64(maxDepth+2) * levelHeight
}
