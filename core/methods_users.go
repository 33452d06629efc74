// SPDX-License-Identifier: MIT
//
// File: methods_users.go
// Role: User registry: RegisterUser/Resolve/HasUser/Valid/DisplayName/UserCount.
// Concurrency:
//   - RegisterUser under the write lock; queries under the read lock.

package core

// Normalize returns the lookup key for name.
func (g *Graph) Normalize(name string) string { return g.normalize(name) }

// RegisterUser allocates the next identifier for name.
//
// Implementation:
//   - Stage 1: Reject empty names (ErrEmptyUsername).
//   - Stage 2: Under the write lock, reject an existing normalized key (ErrDuplicateUser).
//   - Stage 3: Record key→id, keep name as display string, append an empty adjacency entry.
//
// Identifiers stay dense: a rejected registration never consumes an id.
// Complexity: O(1) amortized.
func (g *Graph) RegisterUser(name string) (UserID, error) {
	if name == "" {
		return NoUser, ErrEmptyUsername
	}
	key := g.normalize(name)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.ids[key]; exists {
		return NoUser, ErrDuplicateUser
	}
	id := UserID(len(g.names))
	g.ids[key] = id
	g.names = append(g.names, name)
	g.adjacency = append(g.adjacency, nil)

	return id, nil
}

// Resolve returns the identifier registered under the normalized form of name.
func (g *Graph) Resolve(name string) (UserID, error) {
	if name == "" {
		return NoUser, ErrEmptyUsername
	}
	key := g.normalize(name)

	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids[key]
	if !ok {
		return NoUser, ErrUserNotFound
	}

	return id, nil
}

// HasUser reports whether name (normalized) is registered.
func (g *Graph) HasUser(name string) bool {
	_, err := g.Resolve(name)
	return err == nil
}

// Valid reports whether id was handed out by RegisterUser.
func (g *Graph) Valid(id UserID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// DisplayName returns the name id was registered with, or "" for an invalid id.
func (g *Graph) DisplayName(id UserID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return ""
	}

	return g.names[id]
}

// UserCount returns the number of registered users (N); ids are [0, N).
func (g *Graph) UserCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// valid must be called with g.mu held.
func (g *Graph) valid(id UserID) bool {
	return id >= 0 && int(id) < len(g.names)
}
