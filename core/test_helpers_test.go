// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for socialnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep sentinel-error checks uniform (errors.Is, never string matching).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/socialnet/core"
)

// Common usernames used across core tests.
const (
	UserEmpty = ""

	UserAlice = "Alice"
	UserBob   = "Bob"
	UserCarol = "Carol"
	UserDave  = "Dave"
)

// NewGraphWith registers names in order and returns the graph plus their ids.
func NewGraphWith(t *testing.T, names ...string) (*core.Graph, []core.UserID) {
	t.Helper()

	g := core.NewGraph()
	ids := make([]core.UserID, 0, len(names))
	for _, n := range names {
		id, err := g.RegisterUser(n)
		MustNoError(t, err, "RegisterUser("+n+")")
		ids = append(ids, id)
	}

	return g, ids
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustContainID FAILS the test if id is not in ids.
func MustContainID(t *testing.T, ids []core.UserID, id core.UserID, op string) {
	t.Helper()

	for _, x := range ids {
		if x == id {
			return
		}
	}

	t.Fatalf("%s: %v does not contain %d", op, ids, id)
}
