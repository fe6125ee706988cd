package tree_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/tree"
)

// shape describes a node by value and its children's values (nil = no child).
type shape struct {
	value       float64
	left, right *float64
}

func f(v float64) *float64 { return &v }

// shapeOf lists every node in arena order with its children's values.
func shapeOf(t *tree.Tree) []shape {
	out := make([]shape, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		n, _ := t.Node(i)
		s := shape{value: n.Value}
		if v, ok := t.Value(n.Left); ok {
			s.left = f(v)
		}
		if v, ok := t.Value(n.Right); ok {
			s.right = f(v)
		}
		out = append(out, s)
	}

	return out
}

func TestBuild_Empty(t *testing.T) {
	for name, seq := range map[string][]tree.Slot{
		"nil":           nil,
		"empty":         {},
		"absent root":   {tree.Absent()},
		"absent prefix": {tree.Absent(), tree.Val(1), tree.Val(2)},
	} {
		t.Run(name, func(t *testing.T) {
			tr, err := tree.Build(seq)
			require.NoError(t, err)
			assert.True(t, tr.IsEmpty())
			assert.Equal(t, tree.None, tr.Root())
			assert.Equal(t, 0, tr.Len())
			assert.Equal(t, 0, tr.Height())
		})
	}
}

func TestBuild_SingleNode(t *testing.T) {
	tr, err := tree.Build(tree.Vals(5))
	require.NoError(t, err)
	require.Equal(t, 1, tr.Len())

	root, ok := tr.Node(tr.Root())
	require.True(t, ok)
	assert.Equal(t, 5.0, root.Value)
	assert.Equal(t, tree.None, root.Left)
	assert.Equal(t, tree.None, root.Right)
	assert.Equal(t, 1, tr.Height())
}

func TestBuild_GapInSecondLevel(t *testing.T) {
	// [1,2,3,null,4]: 2 gets no left child and right child 4; 3 is a leaf.
	tr, err := tree.Build([]tree.Slot{tree.Val(1), tree.Val(2), tree.Val(3), tree.Absent(), tree.Val(4)})
	require.NoError(t, err)

	assert.Equal(t, []shape{
		{value: 1, left: f(2), right: f(3)},
		{value: 2, right: f(4)},
		{value: 3},
		{value: 4},
	}, shapeOf(tr))
	assert.Equal(t, 3, tr.Height())
}

func TestBuild_AbsentLeftOfRoot(t *testing.T) {
	// [1,null,2,3]: the gap is not queued, so 3 becomes 2's left child.
	tr, err := tree.Build([]tree.Slot{tree.Val(1), tree.Absent(), tree.Val(2), tree.Val(3)})
	require.NoError(t, err)

	assert.Equal(t, []shape{
		{value: 1, right: f(2)},
		{value: 2, left: f(3)},
		{value: 3},
	}, shapeOf(tr))
}

func TestBuild_GapsDoNotReserveSlots(t *testing.T) {
	// Dense indexing would put 4 under the missing left child; level-order
	// consumption puts it under 2.
	tr, err := tree.Build([]tree.Slot{tree.Val(1), tree.Absent(), tree.Val(2), tree.Absent(), tree.Val(4)})
	require.NoError(t, err)

	assert.Equal(t, []shape{
		{value: 1, right: f(2)},
		{value: 2, right: f(4)},
		{value: 4},
	}, shapeOf(tr))
}

func TestBuild_TrailingAbsentIsNoop(t *testing.T) {
	a, err := tree.Build(tree.Vals(1, 2, 3))
	require.NoError(t, err)
	b, err := tree.Build(append(tree.Vals(1, 2, 3), tree.Absent(), tree.Absent(), tree.Absent()))
	require.NoError(t, err)

	assert.Equal(t, shapeOf(a), shapeOf(b))
}

func TestBuild_UnreachableTail(t *testing.T) {
	// Root has no children, so nothing is left in the queue for 7 and 8.
	tr, err := tree.Build([]tree.Slot{tree.Val(1), tree.Absent(), tree.Absent(), tree.Val(7), tree.Val(8)})
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestBuild_ArenaIsLevelOrder(t *testing.T) {
	tr, err := tree.Build(tree.Vals(10, 20, 30, 40, 50, 60, 70))
	require.NoError(t, err)

	for i, want := range []float64{10, 20, 30, 40, 50, 60, 70} {
		v, ok := tr.Value(i)
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 3, tr.Height())
}

func TestBuild_DuplicateValuesDoNotAlias(t *testing.T) {
	tr, err := tree.Build(tree.Vals(7, 7, 7))
	require.NoError(t, err)
	root, _ := tr.Node(tr.Root())
	assert.NotEqual(t, root.Left, root.Right)
	assert.Equal(t, 3, tr.Len())
}

func TestBuild_InvalidInput(t *testing.T) {
	for name, v := range map[string]float64{
		"NaN":  math.NaN(),
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tree.Build(tree.Vals(1, v))
			assert.ErrorIs(t, err, tree.ErrInvalidInput)
		})
	}
}

func TestBuild_MaxNodes(t *testing.T) {
	_, err := tree.Build(tree.Vals(1, 2, 3), tree.WithMaxNodes(3))
	assert.NoError(t, err)

	_, err = tree.Build(tree.Vals(1, 2, 3, 4), tree.WithMaxNodes(3))
	assert.ErrorIs(t, err, tree.ErrTooManyNodes)

	_, err = tree.Build(tree.Vals(1, 2, 3, 4), tree.WithMaxNodes(0))
	assert.NoError(t, err, "0 disables the limit")

	assert.Panics(t, func() { tree.WithMaxNodes(-1) })
}

func TestFromValues(t *testing.T) {
	tr, err := tree.FromValues([]*float64{f(1), nil, f(2)})
	require.NoError(t, err)
	assert.Equal(t, []shape{
		{value: 1, right: f(2)},
		{value: 2},
	}, shapeOf(tr))
}

func TestTree_NilAndOutOfRange(t *testing.T) {
	var nilTree *tree.Tree
	assert.True(t, nilTree.IsEmpty())
	assert.Equal(t, 0, nilTree.Len())
	assert.Equal(t, tree.None, nilTree.Left(0))

	tr, err := tree.Build(tree.Vals(1))
	require.NoError(t, err)
	_, ok := tr.Node(5)
	assert.False(t, ok)
	_, ok = tr.Value(tree.None)
	assert.False(t, ok)
	assert.Equal(t, tree.None, tr.Right(-3))
}

func TestSlot_JSON(t *testing.T) {
	var seq []tree.Slot
	require.NoError(t, json.Unmarshal([]byte(`[1, null, -2.5, 3e2]`), &seq))
	assert.Equal(t, []tree.Slot{tree.Val(1), tree.Absent(), tree.Val(-2.5), tree.Val(300)}, seq)

	out, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,null,-2.5,300]`, string(out))

	for _, bad := range []string{`["1"]`, `[true]`, `[{}]`, `[[1]]`} {
		err := json.Unmarshal([]byte(bad), &seq)
		assert.ErrorIs(t, err, tree.ErrInvalidInput, bad)
	}
}

func TestSlot_String(t *testing.T) {
	assert.Equal(t, "null", tree.Absent().String())
	assert.Equal(t, "4.5", tree.Val(4.5).String())
}
