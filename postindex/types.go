// SPDX-License-Identifier: MIT

package postindex

// Unbounded asks MostRecent for every post in the index.
const Unbounded = -1

// nilNode marks an absent child or an empty tree.
const nilNode int32 = -1

// Post is an immutable timeline entry owned by one user.
type Post struct {
	// Key is the creation key; strictly increasing per insert, unique per user.
	Key int64

	// Content is the post text, already normalized by the caller.
	Content string
}

// node is one arena slot. left/right are arena indices or nilNode.
type node struct {
	post   Post
	left   int32
	right  int32
	height int32 // leaf == 1
}

// Index is an AVL tree of posts keyed by Post.Key.
// The zero value is not usable; construct with New.
type Index struct {
	nodes []node
	root  int32
}

// New returns an empty Index.
func New() *Index {
	return &Index{root: nilNode}
}

// Len reports how many posts the index holds.
func (ix *Index) Len() int { return len(ix.nodes) }

// Height reports the height of the tree (0 when empty).
func (ix *Index) Height() int { return int(ix.height(ix.root)) }
