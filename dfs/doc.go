// Package dfs implements depth-first traversals of a tree.Tree: preorder,
// inorder and postorder.
//
// What:
//
//   - Preorder(t):  node, then left subtree, then right subtree.
//   - Inorder(t):   left subtree, node, right subtree.
//   - Postorder(t): left subtree, right subtree, node.
//   - DFS(t, order, opts...): any of the three with hooks, returning
//     arena indices, values and depths.
//
// All three share one explicit-stack walker. Every frame moves through three
// stages (schedule left, schedule right, finish) and the node is emitted at
// the stage matching the order, so the visit sequence is exactly that of the
// recursive definitions without any recursion.
//
// Key Types:
//
//   - Order: Pre, In, Post (ParseOrder accepts "pre", "inorder", ...)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, OnVisit, MaxDepth
//   - DFSResult: Order (indices), Values, Depth
//
// Complexity:
//
//   - Time:   O(N)
//   - Memory: O(H) stack, H = tree height (N for a chain)
//
// Errors:
//
//   - ErrTreeNil        t is nil (DFS only; the pure functions treat nil as empty)
//   - ErrUnknownOrder   order outside Pre/In/Post, or ParseOrder input unknown
//   - context.Canceled  DFS canceled via context
//   - hook errors       propagated from OnVisit
package dfs
