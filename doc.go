// Package lvltree builds binary trees from flat level-order arrays and
// traverses them.
//
// 🚀 What is lvltree?
//
//	A small, dependency-light library plus CLI and HTTP front ends:
//		• tree/    : Slot input type, level-order Build, read-only arena Tree
//		• bfs/     : level order (LevelOrder, hookable BFS)
//		• dfs/     : preorder, inorder, postorder (explicit stack, hookable DFS)
//		• traverse/: all four orders in one call
//		• token/   : "1, 2, null, 4" text ⇄ []tree.Slot
//		• layout/  : 2-D coordinates for drawing a tree
//		• cmd/lvltree: `lvltree traverse|layout|serve`
//
// Quick example:
//
//	[1, 2, 3, null, 4]
//
//	        1
//	       / \
//	      2   3
//	       \
//	        4
//
//	level: 1 2 3 4    pre: 1 2 4 3    in: 2 4 1 3    post: 4 2 3 1
//
// A gap (null) consumes one input position and leaves one child empty; it
// does not reserve positions at deeper levels. An input whose first element
// is null describes the empty tree.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
