package simplex

// Example is a named textbook problem bundled with the tools.
type Example struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Objective   string    `json:"objective"`
	Constraints []string  `json:"constraints"`
	Direction   Direction `json:"direction"`
}

var examples = []Example{
	{
		Name:        "ex1",
		Description: "two products, two resources; one pivot",
		Objective:   "5x1 + 2x2",
		Constraints: []string{"10x1 + 12x2 <= 60", "2x1 + x2 <= 6"},
	},
	{
		Name:        "ex2",
		Description: "three variables with single-variable bounds",
		Objective:   "2x1 + 3x2 + 4x3",
		Constraints: []string{"x1 + x2 + x3 <= 100", "2x1 + x2 + 0x3 <= 210", "x1 + 0x2 + 0x3 <= 80"},
	},
	{
		Name:        "ex3",
		Description: "two pivots with fractional intermediate tableaux",
		Objective:   "10x1 + 12x2",
		Constraints: []string{"x1 + x2 <= 100", "x1 + 3x2 <= 270"},
	},
}

// Examples returns copies of the bundled problems in name order.
func Examples() []Example {
	out := make([]Example, len(examples))
	for i, e := range examples {
		out[i] = e
		out[i].Constraints = append([]string(nil), e.Constraints...)
	}
	return out
}

// LookupExample returns the bundled problem called name.
func LookupExample(name string) (Example, bool) {
	for _, e := range Examples() {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}

// Solve runs the example with opts; its own direction is applied first.
func (e Example) Solve(opts ...Option) (*Result, error) {
	return SolveStrings(e.Objective, e.Constraints, append([]Option{WithDirection(e.Direction)}, opts...)...)
}
