package simplex

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/tableau/expr"
	"github.com/katalvlaran/tableau/rational"
)

// ParseProblem parses an objective and its "<=" constraints into a Problem.
// n is the highest variable index used anywhere; every vector is padded to n.
// Parse failures are returned as *expr.ParseError, wrapped with the position
// of the failing constraint.
func ParseProblem(objective string, constraints []string) (Problem, error) {
	obj, err := expr.ParseLinear(objective)
	if err != nil {
		return Problem{}, fmt.Errorf("objective: %w", err)
	}
	if len(constraints) == 0 {
		return Problem{}, fmt.Errorf("%w: no constraints", ErrBadShape)
	}

	var (
		cons = make([]expr.Constraint, len(constraints))
		n    = obj.MaxIndex()
	)
	for i, s := range constraints {
		c, cerr := expr.ParseConstraintExpr(s)
		if cerr != nil {
			return Problem{}, fmt.Errorf("constraint %d: %w", i+1, cerr)
		}
		cons[i] = c
		if k := c.LHS.MaxIndex(); k > n {
			n = k
		}
	}

	p := Problem{
		Costs: obj.Dense(n),
		A:     make([][]*big.Rat, len(cons)),
		B:     make([]*big.Rat, len(cons)),
	}
	for j, c := range p.Costs {
		p.Costs[j] = c.Neg(c)
	}
	for i, c := range cons {
		p.A[i] = c.LHS.Dense(n)
		p.B[i] = c.RHS
	}
	return p, nil
}

// validateProblem checks shape and nil-ness, then feasibility of the
// origin unless negative right-hand sides are allowed.
//
// Complexity: O(m·n).
func validateProblem(p Problem, o Options) error {
	n, m := p.N(), p.M()
	if n == 0 {
		return fmt.Errorf("%w: no decision variables", ErrBadShape)
	}
	if m == 0 {
		return fmt.Errorf("%w: no constraints", ErrBadShape)
	}
	if len(p.A) != m {
		return fmt.Errorf("%w: %d constraint rows, %d right-hand sides", ErrDimensionMismatch, len(p.A), m)
	}
	for j, c := range p.Costs {
		if c == nil {
			return fmt.Errorf("%w: cost %d", ErrNilCoefficient, j+1)
		}
	}
	for i, row := range p.A {
		if len(row) != n {
			return fmt.Errorf("%w: constraint %d has %d coefficients, want %d", ErrDimensionMismatch, i+1, len(row), n)
		}
		for j, c := range row {
			if c == nil {
				return fmt.Errorf("%w: constraint %d coefficient %d", ErrNilCoefficient, i+1, j+1)
			}
		}
		if p.B[i] == nil {
			return fmt.Errorf("%w: right-hand side %d", ErrNilCoefficient, i+1)
		}
	}
	if !o.allowNegativeRHS {
		for i, b := range p.B {
			if b.Sign() < 0 {
				return fmt.Errorf("%w: constraint %d has b = %s", ErrInfeasibleInitialTableau, i+1, rational.Format(b))
			}
		}
	}
	return nil
}

// Build assembles the initial tableau:
//
//	row 0:  [ 1 | Costs          | 0 … 0 | 0    ]
//	row i:  [ 0 | A[i-1]         | eᵢ    | B[i-1] ]
//
// Costs are used as given (the objective-row convention); the direction
// option is applied by Solve, not here. The slack of row i is its initial
// basic variable. The returned tableau has no pivot selected.
func Build(p Problem, opts ...Option) (*Tableau, error) {
	o := NewOptions(opts...)
	if err := validateProblem(p, o); err != nil {
		return nil, err
	}

	n, m := p.N(), p.M()
	t := &Tableau{
		Rows:     make([]Row, m+1),
		N:        n,
		M:        m,
		Basic:    make([]int, m),
		PivotCol: NoIndex,
		PivotRow: NoIndex,
	}

	obj := NewRow(n, m)
	obj.Cells[0] = rational.One()
	for j, c := range p.Costs {
		obj.Cells[1+j] = rational.Clone(c)
	}
	t.Rows[0] = obj

	for i := 0; i < m; i++ {
		row := NewRow(n, m)
		for j, a := range p.A[i] {
			row.Cells[1+j] = rational.Clone(a)
		}
		row.Cells[n+1+i] = rational.One()
		row.Cells[n+m+1] = rational.Clone(p.B[i])
		t.Rows[i+1] = row
		t.Basic[i] = n + 1 + i
	}

	return t, nil
}
