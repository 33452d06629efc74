// SPDX-License-Identifier: MIT

// Package postindex provides a per-user ordered store of posts keyed by
// creation order, built on a height-balanced (AVL) binary search tree.
//
// What
//
//   - Insert(key, content) adds a post; an existing key makes the call a no-op
//     (first writer wins, the later post is dropped).
//   - MostRecent(n) returns up to n posts in strictly descending key order.
//     MostRecent(Unbounded) returns every post.
//
// Why
//
//	A user's timeline is read far more often "top few first" than in full.
//	The tree keeps height O(log s), and MostRecent walks right-to-left with an
//	explicit stack, stopping after n posts: O(log s + n) instead of O(s).
//
// Storage
//
//	Nodes live in a single slice (arena) and reference children by int32
//	index, so rotations rewrite indices and nothing is ever freed. The tree is
//	append-only: there is no delete and no update.
//
// Complexity (s = posts held by the index)
//
//   - Insert:     O(log s) time, O(log s) stack for the recursive descent.
//   - MostRecent: O(log s + n) time, O(n) result + O(log s) stack.
//
// Concurrency
//
//	An Index is not safe for concurrent mutation; it is owned by exactly one
//	user record and mutated from a single command loop.
package postindex
