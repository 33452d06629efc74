// Package socialnet is an in-memory social network simulator: users,
// mutual friendships, per-user post timelines, friend suggestions and
// degrees of separation, driven by a line-oriented command language.
//
// 🚀 What is inside?
//
//	• postindex/ — height-balanced ordered index of one user's posts
//	• core/      — user registry and friendship graph, safe for concurrent readers
//	• suggest/   — friend-of-friend ranking by mutual friend count
//	• bfs/       — breadth-first traversal and degrees of separation
//	• socialnet/ — the Network context tying the engines together
//	• command/   — parser and executor for the text command language
//	• builder/   — deterministic network fixtures (ring, star, complete, random)
//	• config/    — layered configuration (dotenv, YAML, env) and zap logger setup
//	• metrics/   — Prometheus counters and gauges for the command loop
//	• cmd/socialnet — the stdin/file driven simulator binary
//
// Quick session:
//
//	ADD_USER Alice
//	ADD_USER Bob
//	ADD_FRIEND alice BOB
//	ADD_POST Bob "Hello World"
//	OUTPUT_POSTS bob -1
//
// prints
//
//	User Alice added.
//	User Bob added.
//	Friendship added between alice and BOB.
//	Post added by Bob.
//	Posts by bob:
//	hello world
//
//	go install github.com/katalvlaran/socialnet/cmd/socialnet@latest
package socialnet
