// SPDX-License-Identifier: MIT

// Package builder assembles deterministic socialnet.Network fixtures from
// named friendship topologies. Tests, benchmarks and examples use it to get
// a populated network without scripting hundreds of commands.
//
// The package offers the following key components:
//
//   - BuildNetwork(nopts, bopts, cons...): creates a Network and applies
//     the constructors in order.
//   - Topology constructors: Path, Cycle, Star, Complete, CompleteBipartite,
//     RandomSparse.
//   - Content constructor: Posts, which gives every user a timeline.
//   - Name schemes (NameFn): PrefixedName ("user0", "user1", …) and
//     ExcelColumnName ("A", "Z", "AA", …).
//   - BuilderOption: WithNameScheme, WithSeed, WithRand.
//
// Guarantees:
//
//   - Composable: constructors resolve existing users by name before
//     registering, and skip friendships that already exist, so Cycle(5)
//     followed by Star(5) yields a wheel.
//   - Deterministic: same options, seed and constructor order ⇒ the same
//     users, friendship insertion order and posts.
//   - No panics at build time; invalid parameters return sentinel errors
//     (ErrTooFewUsers, ErrInvalidProbability, …). Option constructors panic
//     on nil arguments.
package builder
