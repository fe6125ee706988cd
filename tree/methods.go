// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only accessors over a built Tree.
// Policy:
//   - A nil *Tree behaves as the empty tree.
//   - Index arguments out of range yield None / false, never a panic.

package tree

// Root returns the arena index of the root, or None for an empty tree.
// Complexity: O(1).
func (t *Tree) Root() int {
	if t == nil {
		return None
	}

	return t.root
}

// Len returns the number of nodes in the tree.
// Complexity: O(1).
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.nodes)
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.Root() == None
}

// Node returns a copy of the node at index i.
func (t *Tree) Node(i int) (Node, bool) {
	if !t.has(i) {
		return Node{}, false
	}

	return t.nodes[i], true
}

// Value returns the payload of node i; ok is false if i is not a node.
func (t *Tree) Value(i int) (float64, bool) {
	if !t.has(i) {
		return 0, false
	}

	return t.nodes[i].Value, true
}

// Left returns the left child index of node i, or None.
func (t *Tree) Left(i int) int {
	if !t.has(i) {
		return None
	}

	return t.nodes[i].Left
}

// Right returns the right child index of node i, or None.
func (t *Tree) Right(i int) int {
	if !t.has(i) {
		return None
	}

	return t.nodes[i].Right
}

// Height returns the number of levels (0 for the empty tree).
// Arena order is level order, so a single forward pass suffices.
// Complexity: O(n) time, O(n) space.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	depth := make([]int, len(t.nodes))
	height := 0
	for i, n := range t.nodes {
		if depth[i]+1 > height {
			height = depth[i] + 1
		}
		if n.Left != None {
			depth[n.Left] = depth[i] + 1
		}
		if n.Right != None {
			depth[n.Right] = depth[i] + 1
		}
	}

	return height
}

func (t *Tree) has(i int) bool {
	return t != nil && i >= 0 && i < len(t.nodes)
}
