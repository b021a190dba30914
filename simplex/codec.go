package simplex

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/katalvlaran/tableau/rational"
)

// JSON encoding writes every rational as an exact string ("-5", "7/2") so
// histories round-trip without loss. Nil rationals are written as "".

func formatRat(r *big.Rat) string {
	if r == nil {
		return ""
	}
	return rational.Format(r)
}

func parseRat(s string) (*big.Rat, error) {
	if s == "" {
		return nil, nil
	}
	return rational.Parse(s)
}

type rowJSON struct {
	N     int      `json:"n"`
	M     int      `json:"m"`
	Cells []string `json:"cells"`
}

// MarshalJSON encodes r as {"n","m","cells"}.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(rowJSON{N: r.N, M: r.M, Cells: r.Strings()})
}

// UnmarshalJSON decodes a row and checks its width against n and m.
func (r *Row) UnmarshalJSON(b []byte) error {
	var w rowJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if len(w.Cells) != w.N+w.M+2 {
		return fmt.Errorf("%w: row has %d cells, want %d", ErrDimensionMismatch, len(w.Cells), w.N+w.M+2)
	}
	cells, err := rational.ParseSlice(w.Cells)
	if err != nil {
		return err
	}
	*r = Row{Cells: cells, N: w.N, M: w.M}
	return nil
}

type tableauJSON struct {
	N            int    `json:"n"`
	M            int    `json:"m"`
	Rows         []Row  `json:"rows"`
	Basic        []int  `json:"basic"`
	PivotCol     int    `json:"pivot_col"`
	PivotRow     int    `json:"pivot_row"`
	PivotElement string `json:"pivot_element,omitempty"`
}

func (t *Tableau) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableauJSON{
		N:            t.N,
		M:            t.M,
		Rows:         t.Rows,
		Basic:        t.Basic,
		PivotCol:     t.PivotCol,
		PivotRow:     t.PivotRow,
		PivotElement: formatRat(t.PivotElement),
	})
}

func (t *Tableau) UnmarshalJSON(b []byte) error {
	var w tableauJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	elem, err := parseRat(w.PivotElement)
	if err != nil {
		return err
	}
	if len(w.Rows) != w.M+1 || len(w.Basic) != w.M {
		return fmt.Errorf("%w: tableau with m = %d has %d rows and %d basic variables",
			ErrDimensionMismatch, w.M, len(w.Rows), len(w.Basic))
	}
	*t = Tableau{
		Rows:         w.Rows,
		N:            w.N,
		M:            w.M,
		Basic:        w.Basic,
		PivotCol:     w.PivotCol,
		PivotRow:     w.PivotRow,
		PivotElement: elem,
	}
	return nil
}

type normalizationJSON struct {
	Row          int    `json:"row"`
	PivotElement string `json:"pivot_element"`
	Before       Row    `json:"before"`
	After        Row    `json:"after"`
}

func (s *PivotNormalizationStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(normalizationJSON{
		Row:          s.Row,
		PivotElement: formatRat(s.PivotElement),
		Before:       s.Before,
		After:        s.After,
	})
}

func (s *PivotNormalizationStep) UnmarshalJSON(b []byte) error {
	var w normalizationJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	elem, err := parseRat(w.PivotElement)
	if err != nil {
		return err
	}
	*s = PivotNormalizationStep{Row: w.Row, PivotElement: elem, Before: w.Before, After: w.After}
	return nil
}

type eliminationJSON struct {
	Row         int    `json:"row"`
	Coefficient string `json:"coefficient"`
	PivotRow    Row    `json:"pivot_row"`
	Scaled      Row    `json:"scaled"`
	Original    Row    `json:"original"`
	Result      Row    `json:"result"`
}

func (s *RowEliminationStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(eliminationJSON{
		Row:         s.Row,
		Coefficient: formatRat(s.Coefficient),
		PivotRow:    s.PivotRow,
		Scaled:      s.Scaled,
		Original:    s.Original,
		Result:      s.Result,
	})
}

func (s *RowEliminationStep) UnmarshalJSON(b []byte) error {
	var w eliminationJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	coef, err := parseRat(w.Coefficient)
	if err != nil {
		return err
	}
	*s = RowEliminationStep{
		Row:         w.Row,
		Coefficient: coef,
		PivotRow:    w.PivotRow,
		Scaled:      w.Scaled,
		Original:    w.Original,
		Result:      w.Result,
	}
	return nil
}

type finalJSON struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

func (f *FinalTableau) MarshalJSON() ([]byte, error) {
	return json.Marshal(finalJSON{Headers: f.Headers, Rows: f.Rows})
}

func (f *FinalTableau) UnmarshalJSON(b []byte) error {
	var w finalJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*f = FinalTableau{Headers: w.Headers, Rows: w.Rows}
	return nil
}

type assignmentJSON struct {
	Var   VariableRef `json:"var"`
	Value string      `json:"value"`
}

type solutionJSON struct {
	Direction Direction        `json:"direction"`
	Values    []assignmentJSON `json:"values"`
	Objective string           `json:"objective"`
	TableauZ  string           `json:"tableau_z"`
}

func (s *Solution) MarshalJSON() ([]byte, error) {
	w := solutionJSON{
		Direction: s.Direction,
		Values:    make([]assignmentJSON, len(s.Values)),
		Objective: formatRat(s.Objective),
		TableauZ:  formatRat(s.TableauZ),
	}
	for i, a := range s.Values {
		w.Values[i] = assignmentJSON{Var: a.Var, Value: formatRat(a.Value)}
	}
	return json.Marshal(w)
}

func (s *Solution) UnmarshalJSON(b []byte) error {
	var w solutionJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := Solution{Direction: w.Direction, Values: make([]Assignment, len(w.Values))}
	for i, a := range w.Values {
		v, err := parseRat(a.Value)
		if err != nil {
			return err
		}
		out.Values[i] = Assignment{Var: a.Var, Value: v}
	}
	var err error
	if out.Objective, err = parseRat(w.Objective); err != nil {
		return err
	}
	if out.TableauZ, err = parseRat(w.TableauZ); err != nil {
		return err
	}
	*s = out
	return nil
}

type entryJSON struct {
	Kind  string          `json:"kind"`
	State json.RawMessage `json:"state"`
}

// MarshalJSON encodes the history as [{"kind": ..., "state": ...}, ...].
func (h *History) MarshalJSON() ([]byte, error) {
	entries := make([]entryJSON, len(h.records))
	for i, r := range h.records {
		state, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries[i] = entryJSON{Kind: r.Kind().String(), State: state}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON replaces h with the decoded records.
// An unknown kind fails with ErrUnknownRecord.
func (h *History) UnmarshalJSON(b []byte) error {
	var entries []entryJSON
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	records := make([]Record, len(entries))
	for i, e := range entries {
		k, err := parseRecordKind(e.Kind)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		var r Record
		switch k {
		case KindTableau:
			r = new(Tableau)
		case KindNormalization:
			r = new(PivotNormalizationStep)
		case KindElimination:
			r = new(RowEliminationStep)
		case KindFinalTableau:
			r = new(FinalTableau)
		case KindSolution:
			r = new(Solution)
		}
		if err = json.Unmarshal(e.State, r); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, k, err)
		}
		records[i] = r
	}
	h.records = records
	return nil
}
