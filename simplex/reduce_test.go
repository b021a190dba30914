package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/rational"
	"github.com/katalvlaran/tableau/simplex"
)

func TestNormalize(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	s := simplex.Normalize(tab, 2, 1)

	assert.Equal(t, 2, s.Row)
	assert.Equal(t, "2", s.PivotElement.RatString())
	assert.Equal(t, []string{"0", "2", "1", "0", "1", "6"}, cells(s.Before))
	assert.Equal(t, []string{"0", "1", "1/2", "0", "1/2", "3"}, cells(s.After))
}

func TestNormalize_ZeroPanics(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	assert.Panics(t, func() { simplex.Normalize(tab, 1, 4) })
}

func TestEliminate(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	norm := simplex.Normalize(tab, 2, 1)

	obj := simplex.Eliminate(tab, norm.After, 0, 1)
	assert.Equal(t, 0, obj.Row)
	assert.Equal(t, "5", obj.Coefficient.RatString())
	assert.Equal(t, []string{"0", "5", "5/2", "0", "5/2", "15"}, cells(obj.Scaled))
	assert.Equal(t, []string{"1", "-5", "-2", "0", "0", "0"}, cells(obj.Original))
	assert.Equal(t, []string{"1", "0", "1/2", "0", "5/2", "15"}, cells(obj.Result))

	c := simplex.Eliminate(tab, norm.After, 1, 1)
	assert.Equal(t, "-10", c.Coefficient.RatString())
	assert.Equal(t, []string{"0", "-10", "-5", "0", "-5", "-30"}, cells(c.Scaled))
	assert.Equal(t, []string{"0", "0", "7", "1", "-5", "30"}, cells(c.Result))
	assert.True(t, c.PivotRow.Equal(norm.After))
}

func TestReduce_Ex1(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	snapshot := tab.Clone()

	it, err := simplex.Reduce(tab, simplex.SelectPivot(tab))
	require.NoError(t, err)

	require.Len(t, it.Eliminations, 2)
	assert.Equal(t, 0, it.Eliminations[0].Row)
	assert.Equal(t, 1, it.Eliminations[1].Row)
	assert.Equal(t, 2, it.Normalization.Row)

	next := it.Next
	assert.Equal(t, []string{"1", "0", "1/2", "0", "5/2", "15"}, cells(next.Rows[0]))
	assert.Equal(t, []string{"0", "0", "7", "1", "-5", "30"}, cells(next.Rows[1]))
	assert.Equal(t, []string{"0", "1", "1/2", "0", "1/2", "3"}, cells(next.Rows[2]))
	assert.Equal(t, []int{3, 1}, next.Basic)
	assert.False(t, next.HasPivot())

	// the input tableau is untouched
	for i := range tab.Rows {
		assert.True(t, snapshot.Rows[i].Equal(tab.Rows[i]))
	}
	assert.Equal(t, []int{3, 4}, tab.Basic)
}

func TestReduce_RowWidthAndBasisShape(t *testing.T) {
	tab := mustBuild(t, ex3Obj, ex3Cons)
	for {
		p := simplex.SelectPivot(tab)
		if p.Status != simplex.PivotFound {
			break
		}
		it, err := simplex.Reduce(tab, p)
		require.NoError(t, err)
		tab = it.Next

		for _, r := range tab.Rows {
			assert.Equal(t, tab.Width(), r.Width())
		}
		for i, col := range tab.Basic {
			assert.Equal(t, i+1, simplex.UnitRow(tab, col), "basic column %d", col)
		}
	}
}

func TestReduce_NoPivot(t *testing.T) {
	tab := mustBuild(t, ex1Obj, ex1Cons)
	_, err := simplex.Reduce(tab, simplex.Pivot{Status: simplex.Optimal, Col: simplex.NoIndex, Row: simplex.NoIndex})
	assert.ErrorIs(t, err, simplex.ErrNoPivot)
}

// Every recorded elimination must add up: Scaled + Original == Result with
// Coefficient == -Original[col] and Scaled == PivotRow · Coefficient.
func TestEliminationSteps_AddUp(t *testing.T) {
	type problem struct {
		obj  string
		cons []string
		opts []simplex.Option
	}
	problems := map[string]problem{
		"fractions": {"x1 + x2", []string{"2x1 + 3x2 <= 3", "3x1 + x2 <= 1/2"}, nil},
		"minimize":  {"x1 - x2", []string{"x1 + x2 <= 4"}, []simplex.Option{simplex.WithDirection(simplex.Minimize)}},
	}
	for _, e := range simplex.Examples() {
		problems[e.Name] = problem{e.Objective, e.Constraints, []simplex.Option{simplex.WithDirection(e.Direction)}}
	}

	for name, p := range problems {
		t.Run(name, func(t *testing.T) {
			res := mustSolve(t, p.obj, p.cons, p.opts...)
			tabs := res.History.Tableaux()
			elims := res.History.Eliminations()
			require.NotEmpty(t, elims)

			// eliminations come in blocks of M per pivot, matching the pivot
			// recorded on the tableau that opened the block.
			m := tabs[0].M
			require.Len(t, elims, m*res.Iterations)
			for k, s := range elims {
				col := tabs[k/m].PivotCol
				assert.Zero(t, s.Coefficient.Cmp(rational.Neg(s.Original.Cells[col])), "row %d", s.Row)
				for j := range s.Result.Cells {
					assert.Zero(t, rational.Mul(s.PivotRow.Cells[j], s.Coefficient).Cmp(s.Scaled.Cells[j]), "row %d scaled col %d", s.Row, j)
					assert.Zero(t, rational.Add(s.Scaled.Cells[j], s.Original.Cells[j]).Cmp(s.Result.Cells[j]), "row %d result col %d", s.Row, j)
				}
				assert.True(t, s.Result.Cells[col].Sign() == 0, "row %d keeps the pivot column", s.Row)
			}
		})
	}
}
