package simplex

import (
	"math/big"

	"github.com/katalvlaran/tableau/rational"
)

// PivotStatus is the outcome of pivot selection.
type PivotStatus int

const (
	// PivotFound means Col and Row identify the next pivot.
	PivotFound PivotStatus = iota
	// Optimal means no objective coefficient is negative.
	Optimal
	// Unbounded means Col can enter but no row bounds it.
	Unbounded
)

func (s PivotStatus) String() string {
	switch s {
	case PivotFound:
		return "pivot"
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	}
	return "unknown"
}

// Pivot is the result of SelectPivot. Col is NoIndex when Optimal;
// Row is NoIndex unless Status is PivotFound.
type Pivot struct {
	Status  PivotStatus
	Col     int
	Row     int
	Element *big.Rat
}

// EnteringColumn returns the variable column with the most negative
// objective-row coefficient, or NoIndex when none is negative.
// Only columns 1..N+M are scanned; ties keep the leftmost column.
//
// Complexity: O(N+M).
func EnteringColumn(objective Row) int {
	col := NoIndex
	best := rational.Zero()
	for j := 1; j <= objective.N+objective.M; j++ {
		if objective.Cells[j].Cmp(best) < 0 {
			best = objective.Cells[j]
			col = j
		}
	}
	return col
}

// LeavingRow applies the minimum-ratio test to column col: among constraint
// rows with a strictly positive coefficient, the one minimising RHS/coef.
// Ties keep the upper row. NoIndex means the column is unbounded.
//
// Complexity: O(M).
func LeavingRow(t *Tableau, col int) int {
	row := NoIndex
	var best *big.Rat
	for i := 1; i < len(t.Rows); i++ {
		a := t.Rows[i].Cells[col]
		if a.Sign() <= 0 {
			continue
		}
		ratio := rational.Quo(t.Rows[i].RHS(), a)
		if best == nil || ratio.Cmp(best) < 0 {
			best, row = ratio, i
		}
	}
	return row
}

// SelectPivot chooses the next pivot of t by Dantzig's rule.
// It does not modify t; calling it twice yields the same Pivot.
func SelectPivot(t *Tableau) Pivot {
	col := EnteringColumn(t.Objective())
	if col == NoIndex {
		return Pivot{Status: Optimal, Col: NoIndex, Row: NoIndex}
	}
	row := LeavingRow(t, col)
	if row == NoIndex {
		return Pivot{Status: Unbounded, Col: col, Row: NoIndex}
	}
	return Pivot{
		Status:  PivotFound,
		Col:     col,
		Row:     row,
		Element: rational.Clone(t.Rows[row].Cells[col]),
	}
}

// annotate returns a copy of t carrying p as its selected pivot.
func annotate(t *Tableau, p Pivot) *Tableau {
	c := t.Clone()
	c.PivotCol, c.PivotRow, c.PivotElement = NoIndex, NoIndex, nil
	if p.Status == PivotFound {
		c.PivotCol, c.PivotRow = p.Col, p.Row
		c.PivotElement = rational.Clone(p.Element)
	}
	return c
}
