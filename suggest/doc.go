// SPDX-License-Identifier: MIT

// Package suggest ranks friend-of-friend candidates by the number of friends
// they share with a user.
//
// Algorithm
//
//	S = friends(user) ∪ {user}
//	for f in friends(user):
//	    for c in friends(f):
//	        if c ∉ S: mutual[c]++
//	sort candidates by (mutual desc, id asc); keep the first topN
//
// Only the two-hop neighborhood of the user is touched: O(F·D + C log C)
// where F is the user's degree, D the average degree of those friends and C
// the number of candidates. There is no global scan of the graph.
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - ErrInvalidTopN      topN <= 0 (checked before any work).
//   - core.ErrUserNotFound (wrapped) for an unknown user.
//
// A user without candidates gets an empty, non-nil slice and no error.
package suggest
