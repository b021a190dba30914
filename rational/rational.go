// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidNumber is returned by Parse when the literal is not a valid
// integer, decimal or fraction.
var ErrInvalidNumber = errors.New("rational: invalid number")

// New returns n as a rational.
func New(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Frac returns p/q in lowest terms. It panics if q == 0 (programmer error).
func Frac(p, q int64) *big.Rat {
	if q == 0 {
		panic("rational: Frac: zero denominator")
	}
	return new(big.Rat).SetFrac64(p, q)
}

// Zero returns a fresh 0.
func Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1.
func One() *big.Rat { return new(big.Rat).SetInt64(1) }

// Parse reads an integer ("12"), signed value ("-3"), decimal ("0.25") or
// fraction ("7/2"). Surrounding whitespace is ignored.
func Parse(s string) (*big.Rat, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return nil, fmt.Errorf("%w: empty literal", ErrInvalidNumber)
	}
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, lit)
	}
	return r, nil
}

// MustParse is Parse for literals known at compile time. It panics on error.
func MustParse(s string) *big.Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Clone returns an independent copy of r. A nil r yields nil.
func Clone(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}
	return new(big.Rat).Set(r)
}

// CloneSlice deep-copies every element of rs.
func CloneSlice(rs []*big.Rat) []*big.Rat {
	if rs == nil {
		return nil
	}
	out := make([]*big.Rat, len(rs))
	for i, r := range rs {
		out[i] = Clone(r)
	}
	return out
}

// Add returns a+b.
func Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a-b.
func Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a·b.
func Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Quo returns a/b. It panics if b is zero; callers divide only by a pivot
// element that was selected for being strictly positive.
func Quo(a, b *big.Rat) *big.Rat {
	if b.Sign() == 0 {
		panic("rational: Quo: division by zero")
	}
	return new(big.Rat).Quo(a, b)
}

// Neg returns -a.
func Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// IsZero reports whether r == 0.
func IsZero(r *big.Rat) bool { return r.Sign() == 0 }

// IsOne reports whether r == 1.
func IsOne(r *big.Rat) bool { return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1 }

// Equal reports whether a == b. Two nils are equal.
func Equal(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// Format renders r exactly: "3", "-7/2". A nil r renders as "<nil>".
func Format(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// Display renders integers as-is and everything else rounded to places
// decimals ("0.33" for 1/3 with places=2).
func Display(r *big.Rat, places int) string {
	if r == nil {
		return "<nil>"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	if places < 0 {
		places = 0
	}
	return r.FloatString(places)
}

// FormatSlice renders every element with Format.
func FormatSlice(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = Format(r)
	}
	return out
}

// ParseSlice parses every literal with Parse, stopping at the first error.
func ParseSlice(ss []string) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		r, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}
