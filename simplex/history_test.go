package simplex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/simplex"
)

func TestHistory_RecordsAreIndependent(t *testing.T) {
	res := mustSolve(t, ex3Obj, ex3Cons)
	h := res.History

	first, ok := h.At(0).(*simplex.Tableau)
	require.True(t, ok)
	want := cells(first.Rows[0])

	first.Rows[0].Cells[1].SetInt64(999)
	first.Basic[0] = 42

	again := h.At(0).(*simplex.Tableau)
	assert.Equal(t, want, cells(again.Rows[0]))
	assert.Equal(t, []int{3, 4}, again.Basic)

	// the initial snapshot still shows the initial values, not the final ones
	assert.Equal(t, []string{"1", "-10", "-12", "0", "0", "0"}, want)

	for _, r := range h.Records() {
		if s, ok := r.(*simplex.Solution); ok {
			s.Objective.SetInt64(0)
		}
	}
	sol, _ := h.Solution()
	assert.Equal(t, "1170", sol.Objective.RatString())
}

func TestHistory_Accessors(t *testing.T) {
	res := mustSolve(t, ex1Obj, ex1Cons)
	h := res.History

	assert.Equal(t, 7, h.Len())
	assert.Len(t, h.Tableaux(), 2)
	assert.Len(t, h.Normalizations(), 1)
	assert.Len(t, h.Eliminations(), 2)

	empty := simplex.NewHistory()
	_, ok := empty.Final()
	assert.False(t, ok)
	_, ok = empty.Solution()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

type countingVisitor struct {
	order []simplex.RecordKind
	stop  simplex.RecordKind
}

var errStop = errors.New("stop")

func (v *countingVisitor) note(k simplex.RecordKind) error {
	v.order = append(v.order, k)
	if k == v.stop {
		return errStop
	}
	return nil
}

func (v *countingVisitor) VisitTableau(*simplex.Tableau) error { return v.note(kT) }
func (v *countingVisitor) VisitNormalization(*simplex.PivotNormalizationStep) error {
	return v.note(kN)
}
func (v *countingVisitor) VisitElimination(*simplex.RowEliminationStep) error { return v.note(kE) }
func (v *countingVisitor) VisitFinalTableau(*simplex.FinalTableau) error      { return v.note(kF) }
func (v *countingVisitor) VisitSolution(*simplex.Solution) error              { return v.note(kS) }

func TestHistory_Walk(t *testing.T) {
	res := mustSolve(t, ex1Obj, ex1Cons)

	v := &countingVisitor{stop: -1}
	require.NoError(t, res.History.Walk(v))
	assert.Equal(t, res.History.Kinds(), v.order)

	v = &countingVisitor{stop: kE}
	err := res.History.Walk(v)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []simplex.RecordKind{kT, kN, kE}, v.order)
}

func TestRecordKind_String(t *testing.T) {
	assert.Equal(t, "tableau", simplex.KindTableau.String())
	assert.Equal(t, "final_tableau", simplex.KindFinalTableau.String())
	assert.Equal(t, "RecordKind(9)", simplex.RecordKind(9).String())
}
