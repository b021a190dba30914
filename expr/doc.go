// SPDX-License-Identifier: MIT

// Package expr turns textual linear expressions into coefficient vectors.
//
// Two shapes are understood:
//
//	objective:  "5x1 + 2x2"              -> [-5, -2]      (negated, see below)
//	constraint: "10x1 + 12x2 <= 60"      -> [10, 12], 60
//
// Grammar (tokens are separated by whitespace):
//
//	expression := [sign] term { sign term }
//	constraint := expression "<=" number
//	term       := [coefficient] ("x" | "X") index
//	sign       := "+" | "-"
//
// A coefficient is any literal accepted by rational.Parse ("3", "-2", "1/2",
// "0.25"); an empty coefficient means 1 and a bare "-" means -1. Indices are
// 1-based and may appear in any order; the returned vector is laid out by
// index and padded with zeros for indices the expression does not mention.
//
// Objective coefficients are returned NEGATED. The tableau stores its
// objective row as Z - Σcⱼxⱼ = 0, so ParseObjective hands back the row as it
// will be written into the tableau.
//
// Only "<=" (and its alias "≤") is accepted as a relation. Any other
// relation, a missing relation, or any token the grammar does not recognise
// fails with a *ParseError; nothing is silently reinterpreted as the
// right-hand side.
package expr
