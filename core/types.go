// SPDX-License-Identifier: MIT

// File: types.go
// Role: UserID, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyUsername indicates a registration or lookup with an empty name.
	ErrEmptyUsername = errors.New("core: username is empty")

	// ErrDuplicateUser indicates the normalized username is already registered.
	ErrDuplicateUser = errors.New("core: user already exists")

	// ErrUserNotFound indicates an unknown username or an invalid identifier.
	ErrUserNotFound = errors.New("core: user not found")

	// ErrSelfFriendship indicates an attempt to befriend oneself.
	ErrSelfFriendship = errors.New("core: self-friendship not allowed")

	// ErrDuplicateFriendship indicates the two users are already friends.
	ErrDuplicateFriendship = errors.New("core: friendship already exists")
)

// UserID is the dense identifier assigned to a user at registration.
type UserID int

// NoUser is returned alongside an error where a UserID is expected.
const NoUser UserID = -1

// edgeKey stores an undirected edge with lo < hi.
type edgeKey struct{ lo, hi UserID }

func keyOf(u, v UserID) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{lo: u, hi: v}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithNormalizer replaces the username normalization (strings.ToLower by default).
// A nil fn is ignored.
func WithNormalizer(fn func(string) string) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.normalize = fn
		}
	}
}

// WithCapacity pre-sizes the registry and adjacency for n users.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the friendship graph.
//
// ids maps normalized name → UserID; names[id] is the display string;
// adjacency[id] lists friends in insertion order; edges holds each
// undirected edge once for O(1) membership.
type Graph struct {
	mu sync.RWMutex

	normalize func(string) string
	capacity  int

	ids       map[string]UserID
	names     []string
	adjacency [][]UserID
	edges     map[edgeKey]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{normalize: strings.ToLower}
	for _, opt := range opts {
		opt(g)
	}
	g.ids = make(map[string]UserID, g.capacity)
	g.names = make([]string, 0, g.capacity)
	g.adjacency = make([][]UserID, 0, g.capacity)
	g.edges = make(map[edgeKey]struct{}, g.capacity)

	return g
}
