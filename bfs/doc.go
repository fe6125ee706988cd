// Package bfs provides level-order (breadth-first) traversal over a tree.Tree.
//
// What
//
//   - LevelOrder(t): pure, total function returning node values root first,
//     then each depth left to right. Empty or nil tree → empty slice.
//   - BFS(t, opts...): the same walk with hooks, returning a BFSResult:
//   - Order: arena indices in visit sequence
//   - Values: node values parallel to Order
//   - Depth: map from arena index → depth
//   - Hooks at three stages:
//   - OnEnqueue (when a child is queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Children are enqueued left before right and the queue is strictly FIFO,
//	so the visit sequence depends only on the tree's shape.
//
// Complexity (N = number of nodes)
//
//   - Time:   O(N)
//   - Memory: O(N) (ring-buffer queue, Depth map)
//
// Usage
//
//	values := bfs.LevelOrder(t)
//
//	result, err := bfs.BFS(
//	    t,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrTreeNil          if t is nil (BFS only; LevelOrder treats nil as empty).
//   - ErrOptionViolation  if MaxDepth < 0.
//   - context errors      on cancellation.
//   - hook errors         wrapped from OnVisit.
package bfs
