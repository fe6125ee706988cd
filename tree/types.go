// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Tree and Slot types, sentinel errors and build options.
// Policy:
//   - Nodes live in a per-tree arena; children are arena indices.
//   - Nothing outside this package can mutate a Tree after Build.

package tree

import (
	"errors"
	"fmt"
	"math"
)

// None marks a missing child or the root of an empty Tree.
const None = -1

// Sentinel errors for tree construction.
var (
	// ErrInvalidInput indicates an element that is neither a finite number
	// nor the absent marker.
	ErrInvalidInput = errors.New("tree: invalid input")

	// ErrTooManyNodes indicates the input would produce more nodes than
	// allowed by WithMaxNodes.
	ErrTooManyNodes = errors.New("tree: too many nodes")
)

// Node is one vertex of a binary tree.
//
// Left and Right hold arena indices of the children, or None.
type Node struct {
	// Value is the numeric payload.
	Value float64

	// Left is the arena index of the left child, or None.
	Left int

	// Right is the arena index of the right child, or None.
	Right int
}

// Tree is a read-only binary tree backed by an arena of Nodes.
//
// The zero value is not usable; obtain a Tree from Build or FromValues.
// Arena order equals creation order, which for Build is level order.
type Tree struct {
	nodes []Node
	root  int
}

// Slot is one element of the level-order input sequence:
// either a value or the absent marker.
type Slot struct {
	// Value is meaningful only when Present is true.
	Value float64

	// Present is false for the absent marker.
	Present bool
}

// Val returns a present Slot carrying v.
func Val(v float64) Slot {
	return Slot{Value: v, Present: true}
}

// Absent returns the absent marker.
func Absent() Slot {
	return Slot{}
}

// Vals converts plain numbers to present Slots.
func Vals(vs ...float64) []Slot {
	out := make([]Slot, len(vs))
	for i, v := range vs {
		out[i] = Val(v)
	}

	return out
}

// String renders the slot as a number or "null".
func (s Slot) String() string {
	if !s.Present {
		return "null"
	}

	return fmt.Sprintf("%g", s.Value)
}

// validate reports whether a present slot carries a finite number.
func (s Slot) validate() error {
	if s.Present && (math.IsNaN(s.Value) || math.IsInf(s.Value, 0)) {
		return fmt.Errorf("%w: non-finite value %v", ErrInvalidInput, s.Value)
	}

	return nil
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	maxNodes int // 0 = unlimited
}

// WithMaxNodes bounds the number of nodes Build may create.
// n == 0 disables the limit. Panics on n < 0.
func WithMaxNodes(n int) BuildOption {
	if n < 0 {
		panic(fmt.Sprintf("tree: WithMaxNodes(%d): limit must be >= 0", n))
	}

	return func(c *buildConfig) { c.maxNodes = n }
}
