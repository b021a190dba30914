package simplex

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/tableau/rational"
)

// UnitRow returns the constraint row holding the single 1 of column j when
// every other entry of the column, objective row included, is 0.
// It returns NoIndex for any other shape, and for a column whose only 1
// sits in the objective row.
//
// Complexity: O(M).
func UnitRow(t *Tableau, j int) int {
	row := NoIndex
	for i, r := range t.Rows {
		c := r.Cells[j]
		switch {
		case c.Sign() == 0:
			continue
		case row == NoIndex && rational.IsOne(c):
			row = i
		default:
			return NoIndex
		}
	}
	if row == 0 {
		return NoIndex
	}
	return row
}

// basisOwners maps every constraint row to the column that is basic in it,
// or NoIndex. A row whose recorded basic column still has unit shape keeps
// it; remaining rows go to the leftmost unit column that lands on them.
// conflicts lists unit columns that lost their row to another column.
func basisOwners(t *Tableau) (owners []int, conflicts []int) {
	owners = make([]int, len(t.Rows))
	for i := range owners {
		owners[i] = NoIndex
	}
	for i, col := range t.Basic {
		if col >= 1 && col <= t.N+t.M && UnitRow(t, col) == i+1 {
			owners[i+1] = col
		}
	}
	for j := 1; j <= t.N+t.M; j++ {
		r := UnitRow(t, j)
		switch {
		case r == NoIndex, owners[r] == j:
		case owners[r] == NoIndex:
			owners[r] = j
		default:
			conflicts = append(conflicts, j)
		}
	}
	return owners, conflicts
}

// ExtractSolution reads the optimal values off a terminal tableau.
//
// A variable whose column has exactly one 1 in a constraint row and 0
// elsewhere is basic and takes that row's right-hand side; every other
// variable is 0. objective holds the user's coefficients (length t.N) in
// the direction given by WithDirection; Objective is recomputed from them
// and must agree with the tableau's own Z, negated for Minimize.
//
// Under WithStrictBasis, a unit column that is not the recorded basic
// variable of its row fails with ErrAmbiguousBasis instead of reading as 0.
func ExtractSolution(t *Tableau, objective []*big.Rat, opts ...Option) (*Solution, error) {
	o := NewOptions(opts...)
	if len(objective) != t.N {
		return nil, fmt.Errorf("%w: %d objective coefficients for %d variables", ErrDimensionMismatch, len(objective), t.N)
	}

	owners, conflicts := basisOwners(t)
	if o.strictBasis {
		if len(conflicts) > 0 {
			v, _ := t.Rows[0].Var(conflicts[0])
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousBasis, v)
		}
		for i, col := range t.Basic {
			if owners[i+1] != col {
				return nil, fmt.Errorf("%w: row %d", ErrAmbiguousBasis, i+1)
			}
		}
	}

	values := make([]*big.Rat, t.N+t.M+1)
	for j := 1; j <= t.N+t.M; j++ {
		values[j] = rational.Zero()
	}
	for i := 1; i < len(owners); i++ {
		if col := owners[i]; col != NoIndex {
			values[col] = rational.Clone(t.Rows[i].RHS())
		}
	}

	sol := &Solution{
		Direction: o.direction,
		Values:    make([]Assignment, 0, t.N+t.M),
		Objective: rational.Zero(),
		TableauZ:  rational.Clone(t.Rows[0].RHS()),
	}
	for j := 1; j <= t.N+t.M; j++ {
		v, _ := t.Rows[0].Var(j)
		sol.Values = append(sol.Values, Assignment{Var: v, Value: values[j]})
	}
	for j, c := range objective {
		sol.Objective.Add(sol.Objective, rational.Mul(c, values[1+j]))
	}

	want := sol.TableauZ
	if o.direction == Minimize {
		want = rational.Neg(want)
	}
	if sol.Objective.Cmp(want) != 0 {
		return nil, fmt.Errorf("%w: Σcx = %s, tableau = %s",
			ErrInconsistentObjective, rational.Format(sol.Objective), rational.Format(want))
	}
	return sol, nil
}
