package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/expr"
	"github.com/katalvlaran/tableau/simplex"
)

func TestParseProblem_PadsToCommonWidth(t *testing.T) {
	p, err := simplex.ParseProblem("x1 + 2x2", []string{"x3 <= 5", "x1 + x2 <= 4"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.N())
	assert.Equal(t, 2, p.M())
	assert.Equal(t, []string{"-1", "-2", "0"}, strsOf(p.Costs))
	assert.Equal(t, []string{"0", "0", "1"}, strsOf(p.A[0]))
	assert.Equal(t, []string{"1", "1", "0"}, strsOf(p.A[1]))
	assert.Equal(t, []string{"5", "4"}, strsOf(p.B))
	assert.Equal(t, []string{"1", "2", "0"}, strsOf(p.Objective()))
}

func TestParseProblem_Errors(t *testing.T) {
	_, err := simplex.ParseProblem("x1 +", []string{"x1 <= 1"})
	require.ErrorIs(t, err, expr.ErrParse)
	assert.Contains(t, err.Error(), "objective")

	_, err = simplex.ParseProblem("x1", []string{"x1 <= 1", "x1 >= 2"})
	require.ErrorIs(t, err, expr.ErrUnsupportedOperator)
	assert.Contains(t, err.Error(), "constraint 2")

	var pe *expr.ParseError
	require.ErrorAs(t, err, &pe)

	_, err = simplex.ParseProblem("x1", nil)
	require.ErrorIs(t, err, simplex.ErrBadShape)
}

func TestBuild_Ex1Layout(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)

	assert.Equal(t, 2, tab.N)
	assert.Equal(t, 2, tab.M)
	assert.Equal(t, 6, tab.Width())
	assert.Equal(t, []string{"1", "-5", "-2", "0", "0", "0"}, cells(tab.Rows[0]))
	assert.Equal(t, []string{"0", "10", "12", "1", "0", "60"}, cells(tab.Rows[1]))
	assert.Equal(t, []string{"0", "2", "1", "0", "1", "6"}, cells(tab.Rows[2]))
	assert.Equal(t, []int{3, 4}, tab.Basic)
	assert.False(t, tab.HasPivot())
	assert.Nil(t, tab.PivotElement)
	assert.Equal(t, []simplex.VariableRef{simplex.XF(1), simplex.XF(2)}, tab.BasicVariables())
}

func TestBuild_Validation(t *testing.T) {
	one := big.NewRat(1, 1)
	cases := []struct {
		name string
		p    simplex.Problem
		want error
	}{
		{"no variables", simplex.Problem{A: [][]*big.Rat{{}}, B: rats("1")}, simplex.ErrBadShape},
		{"no constraints", simplex.Problem{Costs: rats("-1")}, simplex.ErrBadShape},
		{"rows vs rhs", simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{{one}, {one}}, B: rats("1")}, simplex.ErrDimensionMismatch},
		{"short row", simplex.Problem{Costs: rats("-1", "-1"), A: [][]*big.Rat{{one}}, B: rats("1")}, simplex.ErrDimensionMismatch},
		{"nil cost", simplex.Problem{Costs: []*big.Rat{nil}, A: [][]*big.Rat{{one}}, B: rats("1")}, simplex.ErrNilCoefficient},
		{"nil coefficient", simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{{nil}}, B: rats("1")}, simplex.ErrNilCoefficient},
		{"nil rhs", simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{{one}}, B: []*big.Rat{nil}}, simplex.ErrNilCoefficient},
		{"negative rhs", simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{{one}}, B: rats("-3")}, simplex.ErrInfeasibleInitialTableau},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab, err := simplex.Build(tc.p)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, tab)
		})
	}
}

func TestBuild_AllowNegativeRHS(t *testing.T) {
	p := simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{rats("1")}, B: rats("-3")}
	tab, err := simplex.Build(p, simplex.WithAllowNegativeRHS())
	require.NoError(t, err)
	assert.Equal(t, "-3", tab.Rows[1].RHS().RatString())
}

func TestBuild_CopiesInput(t *testing.T) {
	p := simplex.Problem{Costs: rats("-1"), A: [][]*big.Rat{rats("2")}, B: rats("4")}
	tab, err := simplex.Build(p)
	require.NoError(t, err)

	p.Costs[0].SetInt64(100)
	p.A[0][0].SetInt64(100)
	p.B[0].SetInt64(100)
	assert.Equal(t, []string{"1", "-1", "0", "0"}, cells(tab.Rows[0]))
	assert.Equal(t, []string{"0", "2", "1", "4"}, cells(tab.Rows[1]))
}

func strsOf(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RatString()
	}
	return out
}
