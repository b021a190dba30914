package simplex

import (
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// Float rendering for display and cross-checks only; the solver never
// reads these values back.

func denseOf(rows []Row) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	w := rows[0].Width()
	data := make([]float64, 0, len(rows)*w)
	for _, r := range rows {
		for _, c := range r.Cells {
			data = append(data, ratFloat(c))
		}
	}
	return mat.NewDense(len(rows), w, data)
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

// Dense returns the tableau as a float64 matrix, rows by columns.
func (t *Tableau) Dense() *mat.Dense { return denseOf(t.Rows) }

// Dense returns the final tableau as a float64 matrix.
func (f *FinalTableau) Dense() *mat.Dense { return denseOf(f.Rows) }

// Float64s returns the decision-variable values as floats, x1..xn.
func (s *Solution) Float64s() []float64 {
	var out []float64
	for _, a := range s.Values {
		if a.Var.Kind == Decision {
			out = append(out, ratFloat(a.Value))
		}
	}
	return out
}
