// Package tree builds read-only binary trees from a flat level-order
// sequence with explicit gap markers.
//
// What:
//
//   - Slot: one input element, a finite number or the absent marker (Val, Absent).
//   - Build: level-order placement. The root is seq[0]; every created node is
//     queued, and each dequeued node consumes the next two elements as its
//     left and right children. A gap consumes exactly one element.
//   - Tree: an arena of Nodes addressed by index, children stored as indices
//     (None when missing). Trees are immutable once built.
//
// Example:
//
//	[1, 2, 3, null, 4]
//
//	        1
//	       / \
//	      2   3
//	       \
//	        4
//
// Edge cases:
//
//   - [] and [null, ...] build the empty tree; elements after an absent root
//     are ignored.
//   - Trailing null markers are no-ops.
//
// Errors:
//
//   - ErrInvalidInput   a reachable element is NaN or ±Inf, or JSON that is
//     neither a number nor null.
//   - ErrTooManyNodes   WithMaxNodes limit exceeded.
//
// Complexity:
//
//   - Build: O(N) time, O(N) memory, N = len(seq).
package tree
