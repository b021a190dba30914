package simplex

import (
	"fmt"

	"github.com/katalvlaran/tableau/rational"
)

// Result is the outcome of a successful solve.
type Result struct {
	// History holds every tableau and sub-step, ending with the
	// FinalTableau and Solution records.
	History *History
	// Solution equals the last History record.
	Solution *Solution
	// Iterations is the number of pivots performed.
	Iterations int
}

// Solve runs the tableau simplex method on p.
//
// Each iteration records the current tableau annotated with its pivot,
// the normalization of the pivot row and one elimination per other row.
// On optimality the final tableau and the solution are appended.
// On any failure Solve returns a nil Result; no partial history escapes.
//
// Errors: ErrBadShape, ErrDimensionMismatch, ErrNilCoefficient,
// ErrInfeasibleInitialTableau, ErrUnbounded, ErrNonConvergence, and
// ErrAmbiguousBasis or ErrInconsistentObjective from ExtractSolution.
func Solve(p Problem, opts ...Option) (*Result, error) {
	o := NewOptions(opts...)
	if err := validateProblem(p, o); err != nil {
		return nil, err
	}

	user := p.Objective()
	if o.direction == Minimize {
		p = Problem{Costs: user, A: p.A, B: p.B}
	}

	t, err := Build(p, opts...)
	if err != nil {
		return nil, err
	}

	h := NewHistory()
	iter := 0
	for {
		pv := SelectPivot(t)
		switch pv.Status {
		case Optimal:
			h.add(annotate(t, pv))
			final := NewFinalTableau(t)
			sol, serr := ExtractSolution(t, user, opts...)
			if serr != nil {
				return nil, serr
			}
			h.add(final)
			h.add(sol)
			return &Result{History: h, Solution: sol, Iterations: iter}, nil
		case Unbounded:
			v, _ := t.Rows[0].Var(pv.Col)
			return nil, fmt.Errorf("%w: %s can grow without limit", ErrUnbounded, v)
		}

		if iter >= o.maxIterations {
			return nil, fmt.Errorf("%w: %d pivots", ErrNonConvergence, o.maxIterations)
		}

		h.add(annotate(t, pv))
		it, rerr := Reduce(t, pv)
		if rerr != nil {
			return nil, rerr
		}
		h.add(&it.Normalization)
		for i := range it.Eliminations {
			h.add(&it.Eliminations[i])
		}
		t = it.Next
		iter++
	}
}

// SolveStrings parses objective and constraints and solves the result.
// Parse failures wrap *expr.ParseError.
func SolveStrings(objective string, constraints []string, opts ...Option) (*Result, error) {
	p, err := ParseProblem(objective, constraints)
	if err != nil {
		return nil, err
	}
	return Solve(p, opts...)
}

// Value returns the optimal value of v formatted exactly, or "" if v is
// not part of the solution.
func (r *Result) Value(v VariableRef) string {
	x, ok := r.Solution.Value(v)
	if !ok {
		return ""
	}
	return rational.Format(x)
}
