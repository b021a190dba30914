// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/tableau/rational"
)

// RecordKind enumerates the variants of Record.
type RecordKind int

// Record kinds, in the order one pivot emits them.
const (
	KindTableau RecordKind = iota
	KindNormalization
	KindElimination
	KindFinalTableau
	KindSolution
)

var recordKindNames = [...]string{
	KindTableau:       "tableau",
	KindNormalization: "normalization",
	KindElimination:   "elimination",
	KindFinalTableau:  "final_tableau",
	KindSolution:      "solution",
}

func (k RecordKind) String() string {
	if k >= 0 && int(k) < len(recordKindNames) {
		return recordKindNames[k]
	}
	return fmt.Sprintf("RecordKind(%d)", int(k))
}

func parseRecordKind(s string) (RecordKind, error) {
	for k, name := range recordKindNames {
		if name == s {
			return RecordKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRecord, s)
}

// Record is one History entry. The set of implementations is closed:
// *Tableau, *PivotNormalizationStep, *RowEliminationStep, *FinalTableau and
// *Solution. Use Visit (or History.Walk) for exhaustive dispatch.
type Record interface {
	Kind() RecordKind
	record()
}

// Visitor handles every Record variant. Adding a variant adds a method here,
// so every consumer fails to compile until it handles it.
type Visitor interface {
	VisitTableau(*Tableau) error
	VisitNormalization(*PivotNormalizationStep) error
	VisitElimination(*RowEliminationStep) error
	VisitFinalTableau(*FinalTableau) error
	VisitSolution(*Solution) error
}

// Visit dispatches r to the matching Visitor method.
func Visit(r Record, v Visitor) error {
	switch rec := r.(type) {
	case *Tableau:
		return v.VisitTableau(rec)
	case *PivotNormalizationStep:
		return v.VisitNormalization(rec)
	case *RowEliminationStep:
		return v.VisitElimination(rec)
	case *FinalTableau:
		return v.VisitFinalTableau(rec)
	case *Solution:
		return v.VisitSolution(rec)
	}
	return fmt.Errorf("%w: %T", ErrUnknownRecord, r)
}

// PivotNormalizationStep is the pivot row before and after division by the
// pivot element.
type PivotNormalizationStep struct {
	Row          int
	PivotElement *big.Rat
	Before       Row
	After        Row
}

// Clone deep-copies s.
func (s *PivotNormalizationStep) Clone() *PivotNormalizationStep {
	return &PivotNormalizationStep{
		Row:          s.Row,
		PivotElement: rational.Clone(s.PivotElement),
		Before:       s.Before.Clone(),
		After:        s.After.Clone(),
	}
}

// RowEliminationStep is the elimination of the pivot column from one
// non-pivot row: Result = Scaled + Original, Scaled = PivotRow × Coefficient,
// Coefficient = -Original[col].
type RowEliminationStep struct {
	Row         int
	Coefficient *big.Rat
	PivotRow    Row
	Scaled      Row
	Original    Row
	Result      Row
}

// Clone deep-copies s.
func (s *RowEliminationStep) Clone() *RowEliminationStep {
	return &RowEliminationStep{
		Row:         s.Row,
		Coefficient: rational.Clone(s.Coefficient),
		PivotRow:    s.PivotRow.Clone(),
		Scaled:      s.Scaled.Clone(),
		Original:    s.Original.Clone(),
		Result:      s.Result.Clone(),
	}
}

// FinalTableau is the terminal tableau with its column headers.
type FinalTableau struct {
	Headers []string
	Rows    []Row
}

// NewFinalTableau snapshots t with headers Z, x1..xn, xf1..xm, B.
func NewFinalTableau(t *Tableau) *FinalTableau {
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}
	return &FinalTableau{Headers: Headers(t.N, t.M), Rows: rows}
}

// Clone deep-copies f.
func (f *FinalTableau) Clone() *FinalTableau {
	rows := make([]Row, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = r.Clone()
	}
	headers := make([]string, len(f.Headers))
	copy(headers, f.Headers)
	return &FinalTableau{Headers: headers, Rows: rows}
}

// Assignment is one variable's optimal value.
type Assignment struct {
	Var   VariableRef
	Value *big.Rat
}

// Solution holds the optimal values of x1..xn, xf1..xm (in that order), the
// objective value Σcⱼxⱼ in the caller's direction, and the Z value read off
// the objective row of the final tableau.
type Solution struct {
	Direction Direction
	Values    []Assignment
	Objective *big.Rat
	TableauZ  *big.Rat
}

// Value returns the value of v.
func (s *Solution) Value(v VariableRef) (*big.Rat, bool) {
	for _, a := range s.Values {
		if a.Var == v {
			return rational.Clone(a.Value), true
		}
	}
	return nil, false
}

// Decision returns x1..xn in order.
func (s *Solution) Decision() []*big.Rat {
	var out []*big.Rat
	for _, a := range s.Values {
		if a.Var.Kind == Decision {
			out = append(out, rational.Clone(a.Value))
		}
	}
	return out
}

// Map returns the values keyed by variable.
func (s *Solution) Map() map[VariableRef]*big.Rat {
	out := make(map[VariableRef]*big.Rat, len(s.Values))
	for _, a := range s.Values {
		out[a.Var] = rational.Clone(a.Value)
	}
	return out
}

// Clone deep-copies s.
func (s *Solution) Clone() *Solution {
	values := make([]Assignment, len(s.Values))
	for i, a := range s.Values {
		values[i] = Assignment{Var: a.Var, Value: rational.Clone(a.Value)}
	}
	return &Solution{
		Direction: s.Direction,
		Values:    values,
		Objective: rational.Clone(s.Objective),
		TableauZ:  rational.Clone(s.TableauZ),
	}
}

func (*Tableau) Kind() RecordKind                { return KindTableau }
func (*PivotNormalizationStep) Kind() RecordKind { return KindNormalization }
func (*RowEliminationStep) Kind() RecordKind     { return KindElimination }
func (*FinalTableau) Kind() RecordKind           { return KindFinalTableau }
func (*Solution) Kind() RecordKind               { return KindSolution }

func (*Tableau) record()                {}
func (*PivotNormalizationStep) record() {}
func (*RowEliminationStep) record()     {}
func (*FinalTableau) record()           {}
func (*Solution) record()               {}

// cloneRecord deep-copies any Record variant.
func cloneRecord(r Record) Record {
	switch rec := r.(type) {
	case *Tableau:
		return rec.Clone()
	case *PivotNormalizationStep:
		return rec.Clone()
	case *RowEliminationStep:
		return rec.Clone()
	case *FinalTableau:
		return rec.Clone()
	case *Solution:
		return rec.Clone()
	}
	panic(fmt.Sprintf("simplex: cloneRecord: unknown record %T", r))
}
