// SPDX-License-Identifier: MIT
//
// File: methods_friendships.go
// Role: Friendship lifecycle & queries: AddFriendship/AreFriends/Neighbors/Friends/Degree.
// Determinism:
//   - Neighbors()/Friends() keep insertion order of the friendships.
// Concurrency:
//   - AddFriendship writes both half-edges under one write lock.

package core

// AddFriendship links u and v in both directions.
//
// Steps:
//  1. Validate both ids (ErrUserNotFound).
//  2. Reject u == v (ErrSelfFriendship).
//  3. Reject an existing edge (ErrDuplicateFriendship).
//  4. Record the edge once in the edge set, append v to u and u to v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddFriendship(u, v UserID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return ErrUserNotFound
	}
	if u == v {
		return ErrSelfFriendship
	}
	k := keyOf(u, v)
	if _, exists := g.edges[k]; exists {
		return ErrDuplicateFriendship
	}

	g.edges[k] = struct{}{}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)

	return nil
}

// AreFriends reports whether the undirected edge u~v exists.
// Complexity: O(1).
func (g *Graph) AreFriends(u, v UserID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[keyOf(u, v)]

	return ok
}

// Neighbors returns the live adjacency slice of u, in insertion order.
// The slice must be treated as read-only. u must be a valid id; Neighbors
// panics otherwise (use Friends when the id is untrusted).
//
// Later AddFriendship calls only append past the returned length, so a
// slice obtained here stays stable for the caller.
func (g *Graph) Neighbors(u UserID) []UserID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u]
}

// Friends returns a copy of u's adjacency, or ErrUserNotFound.
// Complexity: O(d).
func (g *Graph) Friends(u UserID) ([]UserID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return nil, ErrUserNotFound
	}
	out := make([]UserID, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Degree returns the number of friends of u, or ErrUserNotFound.
func (g *Graph) Degree(u UserID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return 0, ErrUserNotFound
	}

	return len(g.adjacency[u]), nil
}

// FriendshipCount returns |E|, counting each friendship once.
func (g *Graph) FriendshipCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
