// SPDX-License-Identifier: MIT

// Package bfs answers "degrees of separation" queries over a core.Graph.
//
// What
//
//   - Distance(g, from, to): minimum hop count between two users, 0 for the
//     same user, Unreachable (-1) when they are in different components.
//   - BFS(g, start): full traversal returning a BFSResult with
//   - Order: visit sequence
//   - Depth: map from user → hops from start
//   - Parent: map from user → predecessor in the BFS tree
//   - (*BFSResult).PathTo(dest) rebuilds one shortest hop path.
//
// Why
//
//	Friendships are unweighted, so breadth-first order discovers every user at
//	its minimum hop count. Distance stops as soon as the target shows up next
//	to the frontier instead of walking the whole component.
//
// Determinism
//
//	Neighbors come in friendship insertion order, so Order and PathTo are
//	reproducible for a given command history. Distances never depend on it.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrUserNotFound   (wrapped) for an unknown start/target.
//   - Wrapped OnVisit errors from BFS.
//
// Unreachable is a result, never an error: both users exist, no path does.
//
// Complexity (V = users, E = friendships)
//
//   - Time:   O(V + E)
//   - Memory: O(V) dense visited bitmap plus queue/frontier
package bfs
