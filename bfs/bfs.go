// Package bfs provides level-order (breadth-first) traversal over a tree.Tree,
// returning visit order, node values and per-node depths.
//
// BFS visits the root, then every node at depth 1 left to right, then
// depth 2, and so on, with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/lvltree/tree"
)

// queueItem pairs a node index with its depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	tree  *tree.Tree
	opts  BFSOptions
	ctx   context.Context
	queue deque.Deque[queueItem]
	res   *BFSResult
}

// LevelOrder returns the node values of t in level order.
// A nil or empty tree yields an empty, non-nil slice.
// Complexity: O(N) time and memory.
func LevelOrder(t *tree.Tree) []float64 {
	out := make([]float64, 0, t.Len())
	if t.IsEmpty() {
		return out
	}

	var q deque.Deque[int]
	q.PushBack(t.Root())
	for q.Len() > 0 {
		id := q.PopFront()
		v, _ := t.Value(id)
		out = append(out, v)
		if l := t.Left(id); l != tree.None {
			q.PushBack(l)
		}
		if r := t.Right(id); r != tree.None {
			q.PushBack(r)
		}
	}

	return out
}

// BFS runs level-order traversal on t, applying any number of functional
// Options. Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad
// options, the context error on cancellation, or any OnVisit error.
// An empty tree yields an empty result.
func BFS(t *tree.Tree, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := t.Len()
	w := &walker{
		tree: t,
		opts: o,
		ctx:  o.Ctx,
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Values: make([]float64, 0, n),
			Depth:  make(map[int]int, n),
		},
	}
	if t.IsEmpty() {
		return w.res, nil
	}

	w.enqueue(t.Root(), 0)

	return w.res, w.loop()
}

// enqueue records the depth of id, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id int, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue.PushBack(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue.PopFront()
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order/Values and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	v, _ := w.tree.Value(item.id)
	w.res.Order = append(w.res.Order, item.id)
	w.res.Values = append(w.res.Values, v)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at node %d: %w", item.id, err)
	}

	return nil
}

// enqueueChildren adds the left then the right child, honoring MaxDepth.
func (w *walker) enqueueChildren(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, c := range [2]int{w.tree.Left(item.id), w.tree.Right(item.id)} {
		if c != tree.None {
			w.enqueue(c, next)
		}
	}
}
