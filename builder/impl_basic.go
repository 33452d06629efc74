// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// impl_basic.go — Path, Cycle, Star and Complete constructors.
//
// Contract (all four):
//   • Users are resolved/registered via cfg.nameFn in ascending index order.
//   • Friendships are emitted in a stable, documented order.
//   • Size checks run before any mutation.
//
// Complexity: O(n) users; O(n) friendships (O(n²) for Complete).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialnet/socialnet"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathUsers     = 2
	minCycleUsers    = 3
	minStarUsers     = 2
	minCompleteUsers = 1
)

// Path returns a Constructor for the chain 0—1—…—(n-1) (n ≥ 2).
// Friendships are emitted as i—(i+1) for ascending i.
func Path(n int) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n < minPathUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathUsers, ErrTooFewUsers)
		}
		ids, err := ensureUsers(net, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = befriend(net, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n (n ≥ 3): Path(n) plus (n-1)—0.
func Cycle(n int) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n < minCycleUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleUsers, ErrTooFewUsers)
		}
		ids, err := ensureUsers(net, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = befriend(net, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor where user 0 is friends with users 1..n-1 (n ≥ 2).
func Star(n int) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n < minStarUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarUsers, ErrTooFewUsers)
		}
		ids, err := ensureUsers(net, cfg, methodStar, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = befriend(net, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor where every pair of users 0..n-1 are
// friends (n ≥ 1). Pairs are emitted as (i,j), i<j, i then j ascending.
func Complete(n int) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n < minCompleteUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteUsers, ErrTooFewUsers)
		}
		ids, err := ensureUsers(net, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = befriend(net, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
