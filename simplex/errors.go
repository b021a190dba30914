// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Every message is prefixed with "simplex: ". Callers match with errors.Is;
// the solver adds context with fmt.Errorf("...: %w", ErrX).
var (
	// ErrBadShape is returned when a problem has no decision variables or
	// no constraints.
	ErrBadShape = errors.New("simplex: invalid problem shape")

	// ErrDimensionMismatch is returned when A, b and the costs disagree on n or m.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNilCoefficient is returned when a problem contains a nil *big.Rat.
	ErrNilCoefficient = errors.New("simplex: nil coefficient")

	// ErrInfeasibleInitialTableau is returned when some right-hand side is
	// negative, so the slack basis at the origin is not feasible.
	ErrInfeasibleInitialTableau = errors.New("simplex: initial tableau is infeasible (negative right-hand side)")

	// ErrUnbounded is returned when an entering column has no strictly
	// positive coefficient in any constraint row.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrNonConvergence is returned when the pivot count exceeds the
	// configured maximum (degenerate cycling).
	ErrNonConvergence = errors.New("simplex: iteration limit exceeded")

	// ErrNoPivot is returned by Reduce when handed a Pivot that was not found.
	ErrNoPivot = errors.New("simplex: no pivot to apply")

	// ErrAmbiguousBasis is returned under WithStrictBasis when the unit-column
	// scan and the recorded basis disagree.
	ErrAmbiguousBasis = errors.New("simplex: ambiguous basic variable")

	// ErrInconsistentObjective is returned when Σcⱼxⱼ differs from the
	// objective value read off the tableau.
	ErrInconsistentObjective = errors.New("simplex: objective value does not match tableau")

	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("simplex: unknown optimization direction")

	// ErrUnknownRecord is returned when decoding a history record of unknown kind.
	ErrUnknownRecord = errors.New("simplex: unknown history record kind")

	// ErrInvalidVariable is returned by ParseVariableRef.
	ErrInvalidVariable = errors.New("simplex: invalid variable reference")
)
