// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// api.go - public entry point and the shared user/friendship helpers.
//
// Design contract:
//   - One orchestrator: BuildNetwork(nopts, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order.
//   - Constructors register users by index through cfg.nameFn and reuse a
//     user that is already registered under that name.
//   - Friendships that already exist are skipped, so constructors compose.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/socialnet"
)

// Constructor applies a deterministic mutation to n using the resolved
// builderConfig. Constructors validate parameters before touching n and
// return sentinel errors; they never panic.
type Constructor func(n *socialnet.Network, cfg builderConfig) error

// BuildNetwork creates a new Network with nopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildNetwork: %w" and returned
// immediately; the partially built network is discarded.
func BuildNetwork(nopts []socialnet.Option, bopts []BuilderOption, cons ...Constructor) (*socialnet.Network, error) {
	n := socialnet.New(nopts...)
	if err := Apply(n, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return n, nil
}

// Apply runs cons against an existing network.
func Apply(n *socialnet.Network, bopts []BuilderOption, cons ...Constructor) error {
	if n == nil {
		return fmt.Errorf("nil network: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return err
		}
	}

	return nil
}

// ensureUsers returns the ids of users 0..count-1 (by cfg.nameFn index
// offset by first), registering the ones that do not exist yet.
func ensureUsers(n *socialnet.Network, cfg builderConfig, method string, first, count int) ([]core.UserID, error) {
	ids := make([]core.UserID, count)
	for i := 0; i < count; i++ {
		name := cfg.nameFn(first + i)
		id, err := n.ResolveUser(name)
		if errors.Is(err, socialnet.ErrInvalidUser) {
			id, err = n.RegisterUser(name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: user %q: %w: %w", method, name, ErrConstructFailed, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// befriend adds a–b unless they are already friends.
func befriend(n *socialnet.Network, method string, a, b core.UserID) error {
	err := n.AddFriendship(a, b)
	if err == nil || errors.Is(err, socialnet.ErrDuplicateFriendship) {
		return nil
	}

	return fmt.Errorf("%s: AddFriendship(%d,%d): %w: %w", method, a, b, ErrConstructFailed, err)
}
