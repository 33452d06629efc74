// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model: Erdős–Rényi-like; each unordered pair {i,j}, i<j, becomes
// a friendship independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewUsers).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: pairs are tried i asc, then j asc, so a fixed seed yields the
// same friendships in the same insertion order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialnet/socialnet"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseUsers = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor that samples friendships among n users
// with independent probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n < minRandomSparseUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseUsers, ErrTooFewUsers)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := ensureUsers(net, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} needs no draw
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = befriend(net, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
