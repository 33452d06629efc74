// SPDX-License-Identifier: MIT

// Package core provides the friendship graph of the simulator: a registry of
// users addressed by dense integer identifiers, and an undirected, simple
// adjacency relation over them.
//
// The Graph G = (V,E) keeps these invariants:
//
//   - Identifiers are assigned 0, 1, 2, ... at registration, never reused,
//     never removed: V is always [0, UserCount()).
//   - Usernames are looked up through a normalized key (lower case by default,
//     see WithNormalizer); each id keeps the display string it was registered with.
//   - E is symmetric (u~v implies v~u), irreflexive (no self-friendship) and
//     has no multi-edges. Edges are only ever added.
//
// Core Methods:
//
//	// Registry
//	RegisterUser(name string) (UserID, error) // O(1) amortized
//	Resolve(name string) (UserID, error)      // O(1)
//	DisplayName(id UserID) string             // O(1)
//
//	// Friendships
//	AddFriendship(u, v UserID) error          // O(1) amortized
//	AreFriends(u, v UserID) bool              // O(1)
//	Neighbors(u UserID) []UserID              // O(1), live slice, read-only
//	Friends(u UserID) ([]UserID, error)       // O(d), defensive copy
//
// Determinism:
//
//	Neighbors returns friends in the order the friendships were added. Callers
//	that need a presentation order (e.g. by name) sort on their side.
//
// Concurrency:
//
//	A single sync.RWMutex guards the registry and the adjacency. AddFriendship
//	applies both half-edges under one write lock, so readers never observe
//	u→v without v→u.
//
// Errors:
//
//	ErrEmptyUsername       - zero-length username
//	ErrDuplicateUser       - normalized username already registered
//	ErrUserNotFound        - unknown username or out-of-range identifier
//	ErrSelfFriendship      - AddFriendship(u, u)
//	ErrDuplicateFriendship - the friendship already exists
package core
