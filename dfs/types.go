// Package dfs defines types and options for depth-first traversal of a
// tree.Tree, including cancellation, visit hooks and depth limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTreeNil is returned when a nil *tree.Tree is passed to DFS.
	ErrTreeNil = errors.New("dfs: tree is nil")

	// ErrUnknownOrder indicates an Order value outside Pre, In and Post.
	ErrUnknownOrder = errors.New("dfs: unknown traversal order")
)

// Order selects when a node is emitted relative to its subtrees.
type Order int

const (
	Pre  Order = iota // Pre: node, left, right.
	In                // In: left, node, right.
	Post              // Post: left, right, node.
)

// String returns the lower-case order name.
func (o Order) String() string {
	switch o {
	case Pre:
		return "preorder"
	case In:
		return "inorder"
	case Post:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "pre"/"preorder", "in"/"inorder", "post"/"postorder"
// (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder":
		return Pre, nil
	case "in", "inorder":
		return In, nil
	case "post", "postorder":
		return Post, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(t, order, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is emitted in the chosen
	// order. Returning an error aborts traversal with that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the emit hook.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records arena indices in emit sequence.
	Order []int

	// Values records node values parallel to Order.
	Values []float64

	// Depth maps each visited arena index to its distance from the root.
	Depth map[int]int
}
