// SPDX-License-Identifier: MIT

// Package tableau is a step-by-step linear programming solver: the tableau
// simplex method carried out in exact rational arithmetic, with every
// intermediate tableau, row operation and result recorded for replay.
//
// 🚀 What is tableau?
//
//	A small, dependency-light toolkit that brings together:
//		• Exact numbers: *big.Rat everywhere, no float drift
//		• Expression parsing: "5x1 + 2x2", "10x1 + 12x2 <= 60"
//		• The simplex loop: Dantzig entering column, minimum-ratio leaving row
//		• A replayable History: tableaux, normalizations, eliminations, solution
//		• JSON round-trips and gonum matrix views of every tableau
//		• A CLI and an HTTP service that stores each solve
//
// ✨ Why choose tableau?
//
//   - Teaching-friendly – every pivot is shown, nothing is skipped
//   - Deterministic – the same problem always yields the same history
//   - Pure Go – no cgo in the solver
//
// Packages:
//
//	rational/         — *big.Rat helpers: parse, format, arithmetic
//	expr/             — linear expression and constraint parsing
//	simplex/          — tableau construction, pivoting, reduction, history
//	internal/config   — environment configuration for simplexd
//	internal/logging  — slog setup
//	internal/store    — memory, SQLite and PostgreSQL solve stores
//	internal/server   — chi HTTP API and Prometheus metrics
//	cmd/simplex       — cobra CLI
//	cmd/simplexd      — HTTP daemon
//
// Quick example:
//
//	max 5x1 + 2x2
//	    10x1 + 12x2 <= 60
//	     2x1 +   x2 <= 6
//
//	$ simplex solve -o "5x1 + 2x2" -c "10x1 + 12x2 <= 60" -c "2x1 + x2 <= 6"
//	...
//	Solution (max)
//	  x1   = 3
//	  x2   = 0
//	  xf1  = 30
//	  xf2  = 0
//	  Z    = 15
//
//	go get github.com/katalvlaran/tableau/simplex
package tableau
