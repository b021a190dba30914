// SPDX-License-Identifier: MIT

// Package simplex solves linear programs with the tableau simplex method over
// exact rational arithmetic and records every intermediate step.
//
// 🚀 What does it solve?
//
//	maximize (or minimize)  c·x
//	subject to              A·x <= b,  x >= 0
//
// One slack variable is added per constraint, so the origin is the initial
// basic feasible solution whenever b >= 0.
//
// ✨ What comes back?
//
//	A History: an append-only, ordered list of records that replays the solve
//	arithmetic by arithmetic:
//	  • *Tableau                  — the tableau before a pivot, with the pivot chosen on it
//	  • *PivotNormalizationStep   — pivot row before/after division by the pivot element
//	  • *RowEliminationStep       — one per non-pivot row: coefficient, scaled pivot row, result
//	  • *FinalTableau             — headers (Z, x1.., xf1.., B) and the terminal rows
//	  • *Solution                 — variable values and the optimal objective value
//
// Records are deep copies. Nothing a caller does to a returned record can
// change another record or the History itself.
//
// ⚙️ Usage:
//
//	res, err := simplex.SolveStrings("5x1 + 2x2",
//	    []string{"10x1 + 12x2 <= 60", "2x1 + x2 <= 6"})
//	if err != nil {
//	    // errors.Is(err, simplex.ErrUnbounded), expr.ErrParse, ...
//	}
//	fmt.Println(res.Solution.Objective) // 15
//
// Algorithm:
//   - Entering column: Dantzig's rule, most negative objective-row cell,
//     first occurrence on ties.
//   - Leaving row: minimum ratio RHS/coef over strictly positive coefs,
//     first occurrence on ties.
//   - Gauss–Jordan pivot: normalize the pivot row, then for every other row
//     (objective row included) add -row[col] × normalized pivot row.
//
// There is no anti-cycling rule; degenerate problems are bounded by
// WithMaxIterations and fail with ErrNonConvergence.
//
// Complexity per pivot: O((m+1)·(n+m+2)) rational operations.
package simplex
