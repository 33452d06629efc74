// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: AVL insertion, rotations and the descending top-n walk.
// Determinism:
//   - MostRecent returns posts by Key strictly descending.
//   - Duplicate keys never change the tree (first writer wins).

package postindex

// Insert adds a post under key. If key is already present the call is a
// silent no-op and reports false.
//
// Implementation:
//   - Stage 1: Recursive BST descent by key; allocate a leaf in the arena.
//   - Stage 2: On the way back up, refresh heights and rotate where the
//     balance factor leaves [-1, 1].
//
// Complexity:
//   - Time O(log s), Space O(log s) recursion.
func (ix *Index) Insert(key int64, content string) bool {
	root, inserted := ix.insert(ix.root, key, content)
	ix.root = root

	return inserted
}

// MostRecent returns up to n posts ordered by Key descending.
// n == Unbounded returns all posts. Any other n <= 0 yields an empty slice;
// callers are expected to reject such values before getting here.
//
// The walk goes right-to-left with an explicit stack and stops as soon as n
// posts are collected, so only O(log s + n) nodes are touched.
func (ix *Index) MostRecent(n int) []Post {
	if n == 0 || n < Unbounded {
		return []Post{}
	}
	limit := len(ix.nodes)
	if n != Unbounded && n < limit {
		limit = n
	}

	out := make([]Post, 0, limit)
	stack := make([]int32, 0, ix.height(ix.root))
	cur := ix.root
	for len(out) < limit {
		// push the right spine of the current subtree
		for cur != nilNode {
			stack = append(stack, cur)
			cur = ix.nodes[cur].right
		}
		if len(stack) == 0 {
			break
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, ix.nodes[top].post)
		cur = ix.nodes[top].left
	}

	return out
}

// insert places key below the subtree rooted at at and returns the new
// subtree root. Node fields are re-read by index after every recursive call
// because alloc may grow (and move) the arena.
func (ix *Index) insert(at int32, key int64, content string) (int32, bool) {
	if at == nilNode {
		return ix.alloc(key, content), true
	}

	var (
		child    int32
		inserted bool
	)
	switch k := ix.nodes[at].post.Key; {
	case key < k:
		child, inserted = ix.insert(ix.nodes[at].left, key, content)
		ix.nodes[at].left = child
	case key > k:
		child, inserted = ix.insert(ix.nodes[at].right, key, content)
		ix.nodes[at].right = child
	default:
		return at, false // collision: keep the first post
	}
	if !inserted {
		return at, false
	}

	return ix.rebalance(at, key), true
}

// rebalance refreshes the height of at and applies the rotation matching
// the imbalance introduced by inserting key.
func (ix *Index) rebalance(at int32, key int64) int32 {
	ix.update(at)
	bal := ix.balance(at)
	left, right := ix.nodes[at].left, ix.nodes[at].right

	switch {
	case bal > 1 && key < ix.nodes[left].post.Key: // left-left
		return ix.rotateRight(at)
	case bal < -1 && key > ix.nodes[right].post.Key: // right-right
		return ix.rotateLeft(at)
	case bal > 1: // left-right
		ix.nodes[at].left = ix.rotateLeft(left)
		return ix.rotateRight(at)
	case bal < -1: // right-left
		ix.nodes[at].right = ix.rotateRight(right)
		return ix.rotateLeft(at)
	}

	return at
}

// rotateRight lifts the left child of y:
//
//	    y            x
//	   / \          / \
//	  x   c  ==>   a   y
//	 / \              / \
//	a   b            b   c
func (ix *Index) rotateRight(y int32) int32 {
	x := ix.nodes[y].left
	b := ix.nodes[x].right
	ix.nodes[x].right = y
	ix.nodes[y].left = b
	ix.update(y)
	ix.update(x)

	return x
}

// rotateLeft lifts the right child of x:
//
//	  x                y
//	 / \              / \
//	a   y    ==>     x   c
//	   / \          / \
//	  b   c        a   b
func (ix *Index) rotateLeft(x int32) int32 {
	y := ix.nodes[x].right
	b := ix.nodes[y].left
	ix.nodes[y].left = x
	ix.nodes[x].right = b
	ix.update(x)
	ix.update(y)

	return y
}

func (ix *Index) alloc(key int64, content string) int32 {
	ix.nodes = append(ix.nodes, node{
		post:   Post{Key: key, Content: content},
		left:   nilNode,
		right:  nilNode,
		height: 1,
	})

	return int32(len(ix.nodes) - 1)
}

func (ix *Index) height(i int32) int32 {
	if i == nilNode {
		return 0
	}

	return ix.nodes[i].height
}

func (ix *Index) balance(i int32) int32 {
	if i == nilNode {
		return 0
	}

	return ix.height(ix.nodes[i].left) - ix.height(ix.nodes[i].right)
}

func (ix *Index) update(i int32) {
	ix.nodes[i].height = 1 + max(ix.height(ix.nodes[i].left), ix.height(ix.nodes[i].right))
}
