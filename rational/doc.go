// SPDX-License-Identifier: MIT

// Package rational collects the small set of exact-arithmetic helpers the
// tableau engine needs on top of math/big.Rat.
//
// Every tableau cell is a *big.Rat. The helpers here never mutate their
// arguments: each arithmetic helper allocates a fresh value, so a cell can be
// shared between a working row and a recorded snapshot only by explicit
// choice (see Clone / CloneSlice).
//
// Floating point appears in exactly one place, Display, which rounds a value
// for human consumption after all arithmetic has finished.
//
//	r, _ := rational.Parse("3/4")
//	fmt.Println(rational.Format(r))     // 3/4
//	fmt.Println(rational.Display(r, 2)) // 0.75
package rational
