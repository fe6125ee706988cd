package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/bfs"
	"github.com/katalvlaran/lvltree/tree"
)

var null = tree.Absent()

func build(t *testing.T, seq ...tree.Slot) *tree.Tree {
	t.Helper()
	tr, err := tree.Build(seq)
	require.NoError(t, err)

	return tr
}

func v(x float64) tree.Slot { return tree.Val(x) }

// TestLevelOrder covers the canonical shapes.
func TestLevelOrder(t *testing.T) {
	cases := []struct {
		name string
		seq  []tree.Slot
		want []float64
	}{
		{"empty", nil, []float64{}},
		{"absent root", []tree.Slot{null}, []float64{}},
		{"single", []tree.Slot{v(5)}, []float64{5}},
		{"gap under left", []tree.Slot{v(1), v(2), v(3), null, v(4)}, []float64{1, 2, 3, 4}},
		{"absent left of root", []tree.Slot{v(1), null, v(2), v(3)}, []float64{1, 2, 3}},
		{"complete", tree.Vals(1, 2, 3, 4, 5, 6, 7), []float64{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bfs.LevelOrder(build(t, tc.seq...)))
		})
	}
}

func TestLevelOrder_NilTree(t *testing.T) {
	got := bfs.LevelOrder(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestLevelOrder_RecoversInput checks that every reachable present element
// comes back in the order the builder consumed it.
func TestLevelOrder_RecoversInput(t *testing.T) {
	seq := []tree.Slot{v(8), v(3), v(10), v(1), v(6), null, v(14), null, null, v(4), v(7), v(13)}
	want := make([]float64, 0, len(seq))
	for _, s := range seq {
		if s.Present {
			want = append(want, s.Value)
		}
	}
	assert.Equal(t, want, bfs.LevelOrder(build(t, seq...)))
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil)
	assert.ErrorIs(t, err, bfs.ErrTreeNil)

	_, err = bfs.BFS(build(t, v(1)), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_EmptyTree(t *testing.T) {
	res, err := bfs.BFS(build(t))
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Values)
}

func TestBFS_DepthsAndLevels(t *testing.T) {
	tr := build(t, v(1), v(2), v(3), null, v(4))
	res, err := bfs.BFS(tr)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []float64{1, 2, 3, 4}, res.Values)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, res.Depth)
	assert.Equal(t, [][]float64{{1}, {2, 3}, {4}}, res.Levels())
}

func TestBFS_MaxDepth(t *testing.T) {
	tr := build(t, tree.Vals(1, 2, 3, 4, 5, 6, 7)...)

	res, err := bfs.BFS(tr, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, res.Values)

	res, err = bfs.BFS(tr, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Values, 7, "0 means no limit")
}

func TestBFS_Hooks(t *testing.T) {
	tr := build(t, tree.Vals(1, 2, 3)...)
	var enq, deq []int
	var visited []int
	_, err := bfs.BFS(tr,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error {
			visited = append(visited, id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, enq, deq)
	assert.Equal(t, deq, visited)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	tr := build(t, tree.Vals(1, 2, 3)...)
	res, err := bfs.BFS(tr, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []float64{1, 2}, res.Values)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(build(t, v(1)), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_MatchesLevelOrder(t *testing.T) {
	tr := build(t, v(1), null, v(2), v(3), v(4), null, v(5))
	res, err := bfs.BFS(tr)
	require.NoError(t, err)
	assert.Equal(t, bfs.LevelOrder(tr), res.Values)
}
