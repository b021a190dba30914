// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/tableau/rational"
)

// NoIndex marks "no column" / "no row". It is distinct from every valid
// index, including 0.
const NoIndex = -1

// Direction selects maximization or minimization.
type Direction int

const (
	// Maximize c·x.
	Maximize Direction = iota
	// Minimize c·x, solved as maximize (-c)·x.
	Minimize
)

func (d Direction) String() string {
	switch d {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection accepts "max", "maximize", "min", "minimize" (any case).
// An empty string means Maximize.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	}
	return Maximize, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// VarKind tells decision variables from slack variables.
type VarKind int

const (
	// Decision is a user variable xⱼ.
	Decision VarKind = iota
	// Slack is the slack xfᵢ added for constraint i.
	Slack
)

// VariableRef names a variable by kind and 1-based index.
type VariableRef struct {
	Kind  VarKind
	Index int
}

// X returns the decision variable xᵢ.
func X(i int) VariableRef { return VariableRef{Kind: Decision, Index: i} }

// XF returns the slack variable xfᵢ.
func XF(i int) VariableRef { return VariableRef{Kind: Slack, Index: i} }

// String renders "x1" or "xf1".
func (v VariableRef) String() string {
	if v.Kind == Slack {
		return "xf" + strconv.Itoa(v.Index)
	}
	return "x" + strconv.Itoa(v.Index)
}

// Column returns the tableau column of v for a problem with n decision variables.
func (v VariableRef) Column(n int) int {
	if v.Kind == Slack {
		return n + v.Index
	}
	return v.Index
}

// ParseVariableRef is the inverse of VariableRef.String.
func ParseVariableRef(s string) (VariableRef, error) {
	var (
		kind   = Decision
		digits string
	)
	switch {
	case strings.HasPrefix(s, "xf"):
		kind, digits = Slack, s[2:]
	case strings.HasPrefix(s, "x"):
		digits = s[1:]
	default:
		return VariableRef{}, fmt.Errorf("%w: %q", ErrInvalidVariable, s)
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 1 {
		return VariableRef{}, fmt.Errorf("%w: %q", ErrInvalidVariable, s)
	}
	return VariableRef{Kind: kind, Index: i}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (v VariableRef) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VariableRef) UnmarshalText(b []byte) error {
	r, err := ParseVariableRef(string(b))
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// Headers returns the column labels Z, x1..xn, xf1..xm, B.
func Headers(n, m int) []string {
	h := make([]string, 0, n+m+2)
	h = append(h, "Z")
	for j := 1; j <= n; j++ {
		h = append(h, X(j).String())
	}
	for i := 1; i <= m; i++ {
		h = append(h, XF(i).String())
	}
	return append(h, "B")
}

// Row is one tableau row of width 1 + N + M + 1:
//
//	[ Z | x1 .. xN | xf1 .. xfM | B ]
type Row struct {
	Cells []*big.Rat
	N, M  int
}

// NewRow returns a zero row for n decision and m slack variables.
func NewRow(n, m int) Row {
	cells := make([]*big.Rat, n+m+2)
	for j := range cells {
		cells[j] = rational.Zero()
	}
	return Row{Cells: cells, N: n, M: m}
}

// Width returns len(Cells).
func (r Row) Width() int { return len(r.Cells) }

// Z returns the Z-column cell.
func (r Row) Z() *big.Rat { return r.Cells[0] }

// RHS returns the right-hand-side cell.
func (r Row) RHS() *big.Rat { return r.Cells[len(r.Cells)-1] }

// Cell returns cell j.
func (r Row) Cell(j int) *big.Rat { return r.Cells[j] }

// Var maps column j to its variable; ok is false for the Z and B columns.
func (r Row) Var(j int) (VariableRef, bool) {
	switch {
	case j >= 1 && j <= r.N:
		return X(j), true
	case j > r.N && j <= r.N+r.M:
		return XF(j - r.N), true
	}
	return VariableRef{}, false
}

// Label returns the header of column j.
func (r Row) Label(j int) string {
	if v, ok := r.Var(j); ok {
		return v.String()
	}
	if j == 0 {
		return "Z"
	}
	if j == len(r.Cells)-1 {
		return "B"
	}
	return "?"
}

// Clone deep-copies r.
func (r Row) Clone() Row {
	return Row{Cells: rational.CloneSlice(r.Cells), N: r.N, M: r.M}
}

// Equal reports cell-wise equality.
func (r Row) Equal(o Row) bool {
	if r.N != o.N || r.M != o.M || len(r.Cells) != len(o.Cells) {
		return false
	}
	for j := range r.Cells {
		if !rational.Equal(r.Cells[j], o.Cells[j]) {
			return false
		}
	}
	return true
}

// Strings renders every cell with rational.Format.
func (r Row) Strings() []string { return rational.FormatSlice(r.Cells) }

func (r Row) String() string { return "[" + strings.Join(r.Strings(), " ") + "]" }

// Tableau is the objective row (Rows[0]) followed by M constraint rows.
//
// Basic[i-1] is the column of the basic variable of constraint row i.
// PivotCol/PivotRow/PivotElement describe the pivot selected on this
// tableau; they are NoIndex/NoIndex/nil when no pivot applies.
type Tableau struct {
	Rows         []Row
	N, M         int
	Basic        []int
	PivotCol     int
	PivotRow     int
	PivotElement *big.Rat
}

// Width returns 1 + N + M + 1.
func (t *Tableau) Width() int { return t.N + t.M + 2 }

// RHSColumn returns the index of the B column.
func (t *Tableau) RHSColumn() int { return t.N + t.M + 1 }

// Objective returns row 0.
func (t *Tableau) Objective() Row { return t.Rows[0] }

// HasPivot reports whether a pivot was selected on this tableau.
func (t *Tableau) HasPivot() bool { return t.PivotCol != NoIndex && t.PivotRow != NoIndex }

// Column returns a copy of column j across all rows.
func (t *Tableau) Column(j int) []*big.Rat {
	col := make([]*big.Rat, len(t.Rows))
	for i, r := range t.Rows {
		col[i] = rational.Clone(r.Cells[j])
	}
	return col
}

// BasicVariables returns the basic variable of each constraint row.
func (t *Tableau) BasicVariables() []VariableRef {
	out := make([]VariableRef, len(t.Basic))
	for i, col := range t.Basic {
		out[i], _ = t.Rows[0].Var(col)
	}
	return out
}

// Clone deep-copies t.
func (t *Tableau) Clone() *Tableau {
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}
	basic := make([]int, len(t.Basic))
	copy(basic, t.Basic)
	return &Tableau{
		Rows:         rows,
		N:            t.N,
		M:            t.M,
		Basic:        basic,
		PivotCol:     t.PivotCol,
		PivotRow:     t.PivotRow,
		PivotElement: rational.Clone(t.PivotElement),
	}
}

// Problem is an LP in the tableau's objective-row convention:
// Costs[j] = -cⱼ for the maximize-form objective Σcⱼxⱼ, which is exactly
// what expr.ParseObjective returns.
type Problem struct {
	Costs []*big.Rat
	A     [][]*big.Rat
	B     []*big.Rat
}

// N returns the number of decision variables.
func (p Problem) N() int { return len(p.Costs) }

// M returns the number of constraints.
func (p Problem) M() int { return len(p.B) }

// Objective returns the user's coefficients cⱼ = -Costs[j].
func (p Problem) Objective() []*big.Rat {
	out := make([]*big.Rat, len(p.Costs))
	for j, c := range p.Costs {
		out[j] = rational.Neg(c)
	}
	return out
}
