package simplex

// History is the ordered, append-only trace of one solve.
//
// Every record is deep-copied on the way in and on the way out: the solver
// keeps mutating its working tableau after a snapshot is taken, and a
// consumer may scribble on whatever it receives. Neither can reach the
// stored records.
type History struct {
	records []Record
}

// NewHistory returns an empty History.
func NewHistory() *History { return &History{} }

// add appends a deep copy of r.
func (h *History) add(r Record) {
	h.records = append(h.records, cloneRecord(r))
}

// Len returns the number of records.
func (h *History) Len() int { return len(h.records) }

// At returns a copy of record i.
func (h *History) At(i int) Record { return cloneRecord(h.records[i]) }

// Kinds returns the kind of every record, in order.
func (h *History) Kinds() []RecordKind {
	out := make([]RecordKind, len(h.records))
	for i, r := range h.records {
		out[i] = r.Kind()
	}
	return out
}

// Records returns copies of all records, in order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	for i, r := range h.records {
		out[i] = cloneRecord(r)
	}
	return out
}

// Walk visits copies of all records in order and stops at the first error.
func (h *History) Walk(v Visitor) error {
	for _, r := range h.records {
		if err := Visit(cloneRecord(r), v); err != nil {
			return err
		}
	}
	return nil
}

// Tableaux returns copies of the *Tableau records.
func (h *History) Tableaux() []*Tableau {
	var out []*Tableau
	for _, r := range h.records {
		if t, ok := r.(*Tableau); ok {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Normalizations returns copies of the *PivotNormalizationStep records.
func (h *History) Normalizations() []*PivotNormalizationStep {
	var out []*PivotNormalizationStep
	for _, r := range h.records {
		if s, ok := r.(*PivotNormalizationStep); ok {
			out = append(out, s.Clone())
		}
	}
	return out
}

// Eliminations returns copies of the *RowEliminationStep records.
func (h *History) Eliminations() []*RowEliminationStep {
	var out []*RowEliminationStep
	for _, r := range h.records {
		if s, ok := r.(*RowEliminationStep); ok {
			out = append(out, s.Clone())
		}
	}
	return out
}

// Final returns the FinalTableau record, if the solve reached one.
func (h *History) Final() (*FinalTableau, bool) {
	for i := len(h.records) - 1; i >= 0; i-- {
		if f, ok := h.records[i].(*FinalTableau); ok {
			return f.Clone(), true
		}
	}
	return nil, false
}

// Solution returns the Solution record, if the solve reached one.
func (h *History) Solution() (*Solution, bool) {
	for i := len(h.records) - 1; i >= 0; i-- {
		if s, ok := h.records[i].(*Solution); ok {
			return s.Clone(), true
		}
	}
	return nil, false
}
