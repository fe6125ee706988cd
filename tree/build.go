// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: level-order placement of a flat Slot sequence into a Tree.

package tree

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Build places seq into a binary tree using level-order consumption.
//
// The root comes from seq[0]. Every node that is created is queued, and each
// dequeued node takes the next two elements as its left and right children.
// An absent element consumes one slot and leaves that child unset; it does
// not reserve slots at deeper levels.
//
// An empty seq, or one whose first element is absent, yields the empty tree;
// the remaining elements are unreachable and ignored.
//
// Errors:
//   - ErrInvalidInput if a reachable element is NaN or ±Inf.
//   - ErrTooManyNodes if WithMaxNodes is exceeded.
//
// Complexity: O(len(seq)) time, O(nodes) space.
func Build(seq []Slot, opts ...BuildOption) (*Tree, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{root: None}
	if len(seq) == 0 || !seq[0].Present {
		return t, nil
	}

	capacity := countPresent(seq)
	if cfg.maxNodes > 0 && capacity > cfg.maxNodes {
		capacity = cfg.maxNodes
	}
	t.nodes = make([]Node, 0, capacity)
	root, err := t.add(&cfg, seq, 0)
	if err != nil {
		return nil, err
	}
	t.root = root

	var pending deque.Deque[int]
	pending.PushBack(root)

	i := 1
	for i < len(seq) && pending.Len() > 0 {
		parent := pending.PopFront()

		if seq[i].Present {
			child, err := t.add(&cfg, seq, i)
			if err != nil {
				return nil, err
			}
			t.nodes[parent].Left = child
			pending.PushBack(child)
		}
		i++

		if i < len(seq) && seq[i].Present {
			child, err := t.add(&cfg, seq, i)
			if err != nil {
				return nil, err
			}
			t.nodes[parent].Right = child
			pending.PushBack(child)
		}
		i++
	}

	return t, nil
}

// FromValues builds a tree from nullable numbers; nil is the absent marker.
func FromValues(vals []*float64, opts ...BuildOption) (*Tree, error) {
	seq := make([]Slot, len(vals))
	for i, v := range vals {
		if v != nil {
			seq[i] = Val(*v)
		}
	}

	return Build(seq, opts...)
}

// add appends a node for seq[i] to the arena and returns its index.
func (t *Tree) add(cfg *buildConfig, seq []Slot, i int) (int, error) {
	if err := seq[i].validate(); err != nil {
		return None, fmt.Errorf("element %d: %w", i, err)
	}
	if cfg.maxNodes > 0 && len(t.nodes) >= cfg.maxNodes {
		return None, fmt.Errorf("%w: limit is %d", ErrTooManyNodes, cfg.maxNodes)
	}
	t.nodes = append(t.nodes, Node{Value: seq[i].Value, Left: None, Right: None})

	return len(t.nodes) - 1, nil
}

func countPresent(seq []Slot) int {
	n := 0
	for _, s := range seq {
		if s.Present {
			n++
		}
	}

	return n
}
