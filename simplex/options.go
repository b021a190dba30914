// SPDX-License-Identifier: MIT

package simplex

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations bounds the number of pivots. Dantzig's rule has no
	// anti-cycling guarantee, so a degenerate problem needs a hard stop.
	DefaultMaxIterations = 1000

	// DefaultDirection is maximization.
	DefaultDirection = Maximize

	// DefaultAllowNegativeRHS rejects negative right-hand sides with
	// ErrInfeasibleInitialTableau.
	DefaultAllowNegativeRHS = false

	// DefaultStrictBasis reads ambiguous unit columns as non-basic instead of
	// failing with ErrAmbiguousBasis.
	DefaultStrictBasis = false
)

const (
	panicMaxIterationsInvalid = "simplex: WithMaxIterations: n must be > 0"
	panicDirectionInvalid     = "simplex: WithDirection: unknown direction"
)

// Option configures Solve and Build.
type Option func(*Options)

// Options is the resolved configuration. Fields are read through accessors.
type Options struct {
	maxIterations    int
	direction        Direction
	allowNegativeRHS bool
	strictBasis      bool
}

func defaultOptions() Options {
	return Options{
		maxIterations:    DefaultMaxIterations,
		direction:        DefaultDirection,
		allowNegativeRHS: DefaultAllowNegativeRHS,
		strictBasis:      DefaultStrictBasis,
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// MaxIterations returns the pivot limit.
func (o Options) MaxIterations() int { return o.maxIterations }

// Direction returns the optimization direction.
func (o Options) Direction() Direction { return o.direction }

// AllowNegativeRHS reports whether negative right-hand sides are accepted.
func (o Options) AllowNegativeRHS() bool { return o.allowNegativeRHS }

// StrictBasis reports whether ambiguous basic columns are an error.
func (o Options) StrictBasis() bool { return o.strictBasis }

// WithMaxIterations sets the pivot limit. It panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}
	return func(o *Options) { o.maxIterations = n }
}

// WithDirection selects maximization or minimization. Minimization negates
// the costs before the tableau is built; the reported Solution.Objective is
// still Σcⱼxⱼ with the caller's coefficients.
func WithDirection(d Direction) Option {
	if d != Maximize && d != Minimize {
		panic(panicDirectionInvalid)
	}
	return func(o *Options) { o.direction = d }
}

// WithAllowNegativeRHS accepts negative right-hand sides. The initial slack
// basis then violates x >= 0 and the result is not a valid optimum; this
// reproduces the unchecked classroom behavior for demonstration.
func WithAllowNegativeRHS() Option {
	return func(o *Options) { o.allowNegativeRHS = true }
}

// WithStrictBasis makes solution extraction fail with ErrAmbiguousBasis when
// a unit column is not the recorded basic variable of its row, or a recorded
// basic column is not a unit column.
func WithStrictBasis() Option {
	return func(o *Options) { o.strictBasis = true }
}
