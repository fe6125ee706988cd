// Package traverse bundles the four traversal orders of a tree.Tree into a
// single result, the shape the HTTP and CLI adapters report.
package traverse

import (
	"github.com/katalvlaran/lvltree/bfs"
	"github.com/katalvlaran/lvltree/dfs"
	"github.com/katalvlaran/lvltree/tree"
)

// Orders holds independent copies of each traversal of one tree.
type Orders struct {
	LevelOrder []float64 `json:"levelOrder" yaml:"levelOrder"`
	Preorder   []float64 `json:"preorder" yaml:"preorder"`
	Inorder    []float64 `json:"inorder" yaml:"inorder"`
	Postorder  []float64 `json:"postorder" yaml:"postorder"`
}

// All runs every traversal over t. A nil or empty tree yields four empty
// slices.
func All(t *tree.Tree) Orders {
	return Orders{
		LevelOrder: bfs.LevelOrder(t),
		Preorder:   dfs.Preorder(t),
		Inorder:    dfs.Inorder(t),
		Postorder:  dfs.Postorder(t),
	}
}

// Sequence builds seq and traverses the result.
// Build errors (tree.ErrInvalidInput, tree.ErrTooManyNodes) are returned as is.
func Sequence(seq []tree.Slot, opts ...tree.BuildOption) (Orders, error) {
	t, err := tree.Build(seq, opts...)
	if err != nil {
		return Orders{}, err
	}

	return All(t), nil
}

// Len returns the common length of the four orders.
func (o Orders) Len() int {
	return len(o.LevelOrder)
}
