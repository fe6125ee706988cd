// Package dfs implements preorder, inorder and postorder traversal of a
// tree.Tree with an explicit stack, so chain-shaped trees of any depth
// never exhaust the goroutine stack.
//
// Key features:
//   - Preorder / Inorder / Postorder: pure functions returning values
//   - DFS(t, order, opts...): the same walk with hooks, cancellation and MaxDepth
//
// Complexity:
//
//   - Time:   O(N) for traversal, plus overhead of hooks.
//   - Memory: O(H) explicit stack (H = tree height) plus O(N) output.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// frame is one pending node on the explicit stack.
// stage counts how many of the node's subtrees have been scheduled.
type frame struct {
	id    int
	depth int
	stage uint8
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	tree     *tree.Tree
	order    Order
	ctx      context.Context
	maxDepth int
	emit     func(id, depth int) error
}

// Preorder returns node values in node-left-right order.
func Preorder(t *tree.Tree) []float64 { return values(t, Pre) }

// Inorder returns node values in left-node-right order.
func Inorder(t *tree.Tree) []float64 { return values(t, In) }

// Postorder returns node values in left-right-node order.
func Postorder(t *tree.Tree) []float64 { return values(t, Post) }

// values runs an unbounded walk collecting node values.
// A nil or empty tree yields an empty, non-nil slice.
func values(t *tree.Tree, order Order) []float64 {
	out := make([]float64, 0, t.Len())
	w := &dfsWalker{
		tree:     t,
		order:    order,
		ctx:      context.Background(),
		maxDepth: -1,
		emit: func(id, _ int) error {
			v, _ := t.Value(id)
			out = append(out, v)
			return nil
		},
	}
	_ = w.walk() // cannot fail: background context, infallible emit

	return out
}

// DFS performs a depth-first traversal of t in the given order.
// Returns ErrTreeNil, ErrUnknownOrder, the context error on cancellation,
// or a wrapped OnVisit error. On error the partial result is returned.
func DFS(t *tree.Tree, order Order, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrTreeNil
	}
	if order < Pre || order > Post {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := t.Len()
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Values: make([]float64, 0, n),
		Depth:  make(map[int]int, n),
	}

	w := &dfsWalker{
		tree:     t,
		order:    order,
		ctx:      dopts.Ctx,
		maxDepth: dopts.MaxDepth,
		emit: func(id, depth int) error {
			v, _ := t.Value(id)
			res.Order = append(res.Order, id)
			res.Values = append(res.Values, v)
			res.Depth[id] = depth
			if dopts.OnVisit != nil {
				if err := dopts.OnVisit(id, depth); err != nil {
					return fmt.Errorf("dfs: OnVisit hook for node %d: %w", id, err)
				}
			}
			return nil
		},
	}

	// 4. Traverse
	return res, w.walk()
}

// walk drives the explicit stack. Each frame passes through three stages:
// 0 schedules the left child, 1 schedules the right child, 2 finishes.
// The node is emitted at stage 0, 1 or 2 for Pre, In and Post respectively.
func (w *dfsWalker) walk() error {
	if w.tree.IsEmpty() {
		return nil
	}

	stack := []frame{{id: w.tree.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.stage == 0 {
			// cancellation check once per node
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
		}

		if uint8(w.order) == top.stage {
			if err := w.emit(top.id, top.depth); err != nil {
				return err
			}
		}

		var child int
		switch top.stage {
		case 0:
			child = w.tree.Left(top.id)
		case 1:
			child = w.tree.Right(top.id)
		default:
			stack = stack[:len(stack)-1]
			continue
		}
		top.stage++

		if child != tree.None && (w.maxDepth < 0 || top.depth+1 <= w.maxDepth) {
			stack = append(stack, frame{id: child, depth: top.depth + 1})
		}
	}

	return nil
}
