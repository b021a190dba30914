package simplex

import (
	"fmt"

	"github.com/katalvlaran/tableau/rational"
)

// Iteration is one pivot applied to a tableau: the normalization of the
// pivot row, one elimination per other row in ascending index order
// (objective row first), and the resulting tableau.
type Iteration struct {
	Normalization PivotNormalizationStep
	Eliminations  []RowEliminationStep
	Next          *Tableau
}

// Normalize divides row of t by its entry in col.
// It panics if that entry is zero; SelectPivot never returns such a pivot.
func Normalize(t *Tableau, row, col int) PivotNormalizationStep {
	before := t.Rows[row]
	elem := before.Cells[col]
	if elem.Sign() == 0 {
		panic(fmt.Sprintf("simplex: Normalize: zero pivot at row %d column %d", row, col))
	}
	after := NewRow(before.N, before.M)
	for j, c := range before.Cells {
		after.Cells[j] = rational.Quo(c, elem)
	}
	return PivotNormalizationStep{
		Row:          row,
		PivotElement: rational.Clone(elem),
		Before:       before.Clone(),
		After:        after,
	}
}

// Eliminate zeroes column col of row using the normalized pivot row:
//
//	Coefficient = -Original[col]
//	Scaled      = PivotRow · Coefficient
//	Result      = Scaled + Original
func Eliminate(t *Tableau, normalized Row, row, col int) RowEliminationStep {
	orig := t.Rows[row]
	coef := rational.Neg(orig.Cells[col])
	scaled := NewRow(orig.N, orig.M)
	result := NewRow(orig.N, orig.M)
	for j := range orig.Cells {
		scaled.Cells[j] = rational.Mul(normalized.Cells[j], coef)
		result.Cells[j] = rational.Add(scaled.Cells[j], orig.Cells[j])
	}
	return RowEliminationStep{
		Row:         row,
		Coefficient: coef,
		PivotRow:    normalized.Clone(),
		Scaled:      scaled,
		Original:    orig.Clone(),
		Result:      result,
	}
}

// Reduce applies p to t and returns the new tableau with its steps.
// t is left untouched. The new tableau has no pivot selected and
// Basic updated so that the entering column owns the pivot row.
//
// Complexity: O((M+1)·(N+M+2)) rational operations.
func Reduce(t *Tableau, p Pivot) (Iteration, error) {
	if p.Status != PivotFound {
		return Iteration{}, fmt.Errorf("%w: status %s", ErrNoPivot, p.Status)
	}

	norm := Normalize(t, p.Row, p.Col)
	next := &Tableau{
		Rows:     make([]Row, len(t.Rows)),
		N:        t.N,
		M:        t.M,
		Basic:    make([]int, len(t.Basic)),
		PivotCol: NoIndex,
		PivotRow: NoIndex,
	}
	copy(next.Basic, t.Basic)
	next.Basic[p.Row-1] = p.Col
	next.Rows[p.Row] = norm.After.Clone()

	elims := make([]RowEliminationStep, 0, len(t.Rows)-1)
	for i := range t.Rows {
		if i == p.Row {
			continue
		}
		e := Eliminate(t, norm.After, i, p.Col)
		next.Rows[i] = e.Result.Clone()
		elims = append(elims, e)
	}

	return Iteration{Normalization: norm, Eliminations: elims, Next: next}, nil
}
