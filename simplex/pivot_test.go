package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/simplex"
)

func TestEnteringColumn(t *testing.T) {
	cases := []struct {
		name  string
		cells []string
		want  int
	}{
		{"most negative", []string{"1", "-5", "-2", "0", "0", "0"}, 1},
		{"tie keeps first", []string{"1", "-3", "-3", "0", "0", "0"}, 1},
		{"slack column", []string{"1", "0", "1", "-1/2", "0", "9"}, 3},
		{"optimal", []string{"1", "0", "1/2", "0", "5/2", "15"}, simplex.NoIndex},
		{"ignores z and rhs", []string{"-7", "0", "0", "0", "0", "-9"}, simplex.NoIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := simplex.Row{Cells: rats(tc.cells...), N: 2, M: 2}
			assert.Equal(t, tc.want, simplex.EnteringColumn(row))
		})
	}
}

func TestLeavingRow(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	assert.Equal(t, 2, simplex.LeavingRow(tab, 1)) // 60/10 = 6 vs 6/2 = 3
	assert.Equal(t, 1, simplex.LeavingRow(tab, 2)) // 60/12 = 5 vs 6/1 = 6
}

func TestLeavingRow_TieKeepsFirst(t *testing.T) {
	tab := mustBuild(t, "x1", []string{"2x1 <= 4", "x1 <= 2"})
	assert.Equal(t, 1, simplex.LeavingRow(tab, 1))
}

func TestLeavingRow_SkipsNonPositive(t *testing.T) {
	tab := mustBuild(t, "x1 + x2", []string{"-x1 + x2 <= 1", "0x1 + x2 <= 3"})
	assert.Equal(t, simplex.NoIndex, simplex.LeavingRow(tab, 1))
	assert.Equal(t, 1, simplex.LeavingRow(tab, 2))
}

func TestSelectPivot(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	p := simplex.SelectPivot(tab)
	require.Equal(t, simplex.PivotFound, p.Status)
	assert.Equal(t, 1, p.Col)
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, "2", p.Element.RatString())

	// idempotent, side-effect free
	before := tab.Clone()
	again := simplex.SelectPivot(tab)
	assert.Equal(t, p.Col, again.Col)
	assert.Equal(t, p.Row, again.Row)
	assert.Equal(t, 0, p.Element.Cmp(again.Element))
	for i := range tab.Rows {
		assert.True(t, before.Rows[i].Equal(tab.Rows[i]))
	}
	assert.False(t, tab.HasPivot())
}

func TestSelectPivot_Terminal(t *testing.T) {
	opt := mustBuild(t, "-x1", []string{"x1 <= 1"})
	p := simplex.SelectPivot(opt)
	assert.Equal(t, simplex.Optimal, p.Status)
	assert.Equal(t, simplex.NoIndex, p.Col)
	assert.Equal(t, simplex.NoIndex, p.Row)
	assert.Nil(t, p.Element)

	unb := mustBuild(t, "x1 + x2", []string{"x1 - x2 <= 1"})
	unb.Rows[1].Cells[1].SetInt64(-1)
	p = simplex.SelectPivot(unb)
	assert.Equal(t, simplex.Unbounded, p.Status)
	assert.Equal(t, 1, p.Col)
	assert.Equal(t, simplex.NoIndex, p.Row)
}

func TestPivotStatus_String(t *testing.T) {
	assert.Equal(t, "pivot", simplex.PivotFound.String())
	assert.Equal(t, "optimal", simplex.Optimal.String())
	assert.Equal(t, "unbounded", simplex.Unbounded.String())
}
