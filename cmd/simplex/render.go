package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tableau/rational"
	"github.com/katalvlaran/tableau/simplex"
)

// textRenderer prints history records as aligned tables.
type textRenderer struct {
	w        io.Writer
	decimals int
	tableau  int
}

var _ simplex.Visitor = (*textRenderer)(nil)

func newTextRenderer(w io.Writer, decimals int) *textRenderer {
	return &textRenderer{w: w, decimals: decimals}
}

func (r *textRenderer) num(x *big.Rat) string {
	if r.decimals < 0 {
		return rational.Format(x)
	}
	return rational.Display(x, r.decimals)
}

func (r *textRenderer) row(row simplex.Row) string {
	cells := make([]string, len(row.Cells))
	for j, c := range row.Cells {
		cells[j] = r.num(c)
	}
	return "[" + strings.Join(cells, "  ") + "]"
}

// table writes headers and rows; marked is the row to flag, or NoIndex.
func (r *textRenderer) table(headers []string, rows []simplex.Row, marked int) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")
	for i, row := range rows {
		for _, c := range row.Cells {
			fmt.Fprintf(tw, "%s\t", r.num(c))
		}
		if i == marked {
			fmt.Fprint(tw, " <")
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func (r *textRenderer) VisitTableau(t *simplex.Tableau) error {
	r.tableau++
	if t.HasPivot() {
		fmt.Fprintf(r.w, "\nTableau %d: %s enters, row %d leaves, pivot %s\n",
			r.tableau, t.Rows[0].Label(t.PivotCol), t.PivotRow, r.num(t.PivotElement))
	} else {
		fmt.Fprintf(r.w, "\nTableau %d: optimal\n", r.tableau)
	}
	return r.table(simplex.Headers(t.N, t.M), t.Rows, t.PivotRow)
}

func (r *textRenderer) VisitNormalization(s *simplex.PivotNormalizationStep) error {
	_, err := fmt.Fprintf(r.w, "  normalize row %d (divide by %s)\n    %s\n -> %s\n",
		s.Row, r.num(s.PivotElement), r.row(s.Before), r.row(s.After))
	return err
}

func (r *textRenderer) VisitElimination(s *simplex.RowEliminationStep) error {
	_, err := fmt.Fprintf(r.w, "  row %d += (%s) * pivot row\n    %s\n  + %s\n  = %s\n",
		s.Row, r.num(s.Coefficient), r.row(s.Original), r.row(s.Scaled), r.row(s.Result))
	return err
}

func (r *textRenderer) VisitFinalTableau(f *simplex.FinalTableau) error {
	fmt.Fprintln(r.w, "\nFinal tableau")
	return r.table(f.Headers, f.Rows, simplex.NoIndex)
}

func (r *textRenderer) VisitSolution(s *simplex.Solution) error {
	fmt.Fprintf(r.w, "\nSolution (%s)\n", s.Direction)
	for _, a := range s.Values {
		fmt.Fprintf(r.w, "  %-4s = %s\n", a.Var, r.num(a.Value))
	}
	_, err := fmt.Fprintf(r.w, "  Z    = %s\n", r.num(s.Objective))
	return err
}

// writeFloat prints the final tableau through gonum's matrix formatter.
func writeFloat(w io.Writer, f *simplex.FinalTableau) error {
	if f == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "\nFinal tableau (float64, %s)\n%v\n",
		strings.Join(f.Headers, " "), mat.Formatted(f.Dense(), mat.Squeeze()))
	return err
}
