// SPDX-License-Identifier: MIT

// Package socialnet is the simulator context: one Network value owns the
// friendship graph (core), one post index per user (postindex), and routes
// queries to the suggestion (suggest) and separation (bfs) engines.
//
// A Network is created once by the caller and passed explicitly; there is no
// package-level state. Every operation returns either its result or one of
// the error kinds below, checked with errors.Is:
//
//	ErrDuplicateUser       registering a name whose normalized form exists
//	ErrInvalidUser         unknown name or identifier
//	ErrSelfFriendship      befriending oneself
//	ErrDuplicateFriendship the friendship already exists
//	ErrInvalidArgument     non-positive counts (other than Unbounded for posts)
//
// Unreachable is returned by DegreesOfSeparation as a value with a nil error.
//
// Post creation keys come from a Clock. The default is a plain counter; a
// wall-clock source is available through NewMonotonicClock and is forced to be
// strictly increasing, so two posts of one user never collide by accident.
package socialnet
