package simplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/tableau/simplex"
)

// standardForm turns max c·x, Ax <= b into gonum's min c'·x', A'x' = b'
// by appending one slack column per row.
func standardForm(p simplex.Problem) ([]float64, *mat.Dense, []float64) {
	n, m := p.N(), p.M()
	c := make([]float64, n+m)
	for j, v := range p.Costs {
		c[j], _ = v.Float64()
	}
	A := mat.NewDense(m, n+m, nil)
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		for j, v := range p.A[i] {
			f, _ := v.Float64()
			A.Set(i, j, f)
		}
		A.Set(i, n+i, 1)
		b[i], _ = p.B[i].Float64()
	}
	return c, A, b
}

func TestSolve_AgreesWithGonum(t *testing.T) {
	cases := []struct {
		name string
		obj  string
		cons []string
	}{
		{"ex1", ex1Obj, ex1Cons},
		{"ex2", ex2Obj, ex2Cons},
		{"ex3", ex3Obj, ex3Cons},
		{"fractions", "x1 + x2", []string{"3x1 + 2x2 <= 5", "x1 + 4x2 <= 3/2"}},
		{"three by three", "3x1 + 2x2 + 4x3", []string{"x1 + x2 + 2x3 <= 4", "2x1 + 0x2 + 3x3 <= 5", "2x1 + x2 + 3x3 <= 7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := simplex.ParseProblem(tc.obj, tc.cons)
			require.NoError(t, err)
			res, err := simplex.Solve(p)
			require.NoError(t, err)

			c, A, b := standardForm(p)
			optF, _, err := lp.Simplex(c, A, b, 0, nil)
			require.NoError(t, err)

			z, _ := res.Solution.Objective.Float64()
			assert.InDelta(t, -optF, z, 1e-9)
			assert.False(t, math.IsNaN(z))
		})
	}
}

func TestTableau_Dense(t *testing.T) {
	res := mustSolve(t, ex1Obj, ex1Cons)
	final, ok := res.History.Final()
	require.True(t, ok)

	d := final.Dense()
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 6, c)
	assert.InDelta(t, 15.0, d.At(0, 5), 1e-12)
	assert.InDelta(t, 0.5, d.At(2, 2), 1e-12)

	tab := res.History.Tableaux()[0]
	assert.InDelta(t, -5.0, tab.Dense().At(0, 1), 1e-12)
}
