// SPDX-License-Identifier: MIT

package expr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/tableau/rational"
)

// MaxVariableIndex bounds xN so that a typo like "x99999999" cannot make a
// caller allocate a huge coefficient vector.
const MaxVariableIndex = 4096

// Relation literals.
const (
	RelLessEqual        = "<="
	relLessEqualUnicode = "≤"
)

// Term is one coefficient-variable pair; Index is 1-based.
type Term struct {
	Index int
	Coeff *big.Rat
}

// Linear is a parsed linear expression, terms kept in input order.
type Linear struct {
	Terms []Term
}

// MaxIndex returns the highest variable index in l, 0 for an empty l.
func (l Linear) MaxIndex() int {
	maxIdx := 0
	for _, t := range l.Terms {
		if t.Index > maxIdx {
			maxIdx = t.Index
		}
	}
	return maxIdx
}

// Dense lays l out as an n-vector by variable index (x1 at position 0).
// Indices above n are dropped; callers size n with MaxIndex.
func (l Linear) Dense(n int) []*big.Rat {
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = rational.Zero()
	}
	for _, t := range l.Terms {
		if t.Index <= n {
			out[t.Index-1] = rational.Clone(t.Coeff)
		}
	}
	return out
}

// Constraint is a parsed "lhs <= rhs" constraint.
type Constraint struct {
	LHS Linear
	RHS *big.Rat
}

// ParseLinear parses an expression without any relation.
func ParseLinear(s string) (Linear, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Linear{}, fail(s, -1, "", ErrEmptyExpression)
	}
	lin, stop, err := parseTerms(s, tokens)
	if err != nil {
		return Linear{}, err
	}
	if stop < len(tokens) {
		return Linear{}, fail(s, stop, tokens[stop], ErrUnrecognizedToken)
	}
	return lin, nil
}

// ParseConstraintExpr parses "lhs <= rhs".
func ParseConstraintExpr(s string) (Constraint, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Constraint{}, fail(s, -1, "", ErrEmptyExpression)
	}
	lin, stop, err := parseTerms(s, tokens)
	if err != nil {
		return Constraint{}, err
	}
	if stop == len(tokens) {
		return Constraint{}, fail(s, -1, "", ErrUnsupportedOperator)
	}
	if rel := tokens[stop]; rel != RelLessEqual && rel != relLessEqualUnicode {
		return Constraint{}, fail(s, stop, rel, ErrUnsupportedOperator)
	}
	if len(lin.Terms) == 0 {
		return Constraint{}, fail(s, -1, "", ErrEmptyExpression)
	}

	rest := tokens[stop+1:]
	switch {
	case len(rest) == 0:
		return Constraint{}, fail(s, stop, tokens[stop], ErrMissingRHS)
	case len(rest) > 1:
		return Constraint{}, fail(s, stop+2, rest[1], ErrUnrecognizedToken)
	}
	rhs, perr := rational.Parse(rest[0])
	if perr != nil {
		return Constraint{}, fail(s, stop+1, rest[0], ErrInvalidNumber)
	}

	return Constraint{LHS: lin, RHS: rhs}, nil
}

// ParseObjective parses an objective such as "5x1 + 2x2" and returns its
// coefficients negated, laid out by variable index.
func ParseObjective(s string) ([]*big.Rat, error) {
	lin, err := ParseLinear(s)
	if err != nil {
		return nil, err
	}
	row := lin.Dense(lin.MaxIndex())
	for i, c := range row {
		row[i] = c.Neg(c)
	}
	return row, nil
}

// ParseConstraint parses "10x1 + 12x2 <= 60" into its coefficients (not
// negated) and right-hand side.
func ParseConstraint(s string) ([]*big.Rat, *big.Rat, error) {
	c, err := ParseConstraintExpr(s)
	if err != nil {
		return nil, nil, err
	}
	return c.LHS.Dense(c.LHS.MaxIndex()), c.RHS, nil
}

// parseTerms consumes "[sign] term { sign term }" and returns the position
// of the first relation token, or len(tokens) when there is none.
func parseTerms(input string, tokens []string) (Linear, int, error) {
	var (
		lin       Linear
		seen      = make(map[int]struct{})
		negate    bool
		pending   bool // a sign was read and awaits its term
		pendingAt int
		afterTerm bool
	)
	for i, tok := range tokens {
		if isRelation(tok) {
			if pending {
				return Linear{}, 0, fail(input, pendingAt, tokens[pendingAt], ErrDanglingOperator)
			}
			return lin, i, nil
		}

		if tok == "+" || tok == "-" {
			if pending {
				return Linear{}, 0, fail(input, i, tok, ErrDanglingOperator)
			}
			pending, pendingAt, negate, afterTerm = true, i, tok == "-", false
			continue
		}

		term, err := parseTerm(tok)
		if err != nil {
			return Linear{}, 0, fail(input, i, tok, err)
		}
		if afterTerm {
			return Linear{}, 0, fail(input, i, tok, ErrMissingOperator)
		}
		if _, dup := seen[term.Index]; dup {
			return Linear{}, 0, fail(input, i, tok, ErrDuplicateVariable)
		}
		seen[term.Index] = struct{}{}
		if negate {
			term.Coeff.Neg(term.Coeff)
		}
		lin.Terms = append(lin.Terms, term)
		negate, pending, afterTerm = false, false, true
	}
	if pending {
		return Linear{}, 0, fail(input, pendingAt, tokens[pendingAt], ErrDanglingOperator)
	}
	return lin, len(tokens), nil
}

// parseTerm reads "<coef>x<index>".
func parseTerm(tok string) (Term, error) {
	k := strings.IndexAny(tok, "xX")
	if k < 0 {
		return Term{}, ErrUnrecognizedToken
	}
	idxPart := tok[k+1:]
	if idxPart == "" || !allDigits(idxPart) {
		return Term{}, ErrUnrecognizedToken
	}
	idx, err := strconv.Atoi(idxPart)
	if err != nil || idx < 1 || idx > MaxVariableIndex {
		return Term{}, ErrInvalidVariableIndex
	}

	var coeff *big.Rat
	switch coefPart := strings.TrimSuffix(tok[:k], "*"); coefPart {
	case "", "+":
		coeff = rational.One()
	case "-":
		coeff = rational.New(-1)
	default:
		if coeff, err = rational.Parse(coefPart); err != nil {
			return Term{}, ErrInvalidNumber
		}
	}
	return Term{Index: idx, Coeff: coeff}, nil
}

// isRelation reports whether tok looks like any comparison operator, so that
// unsupported ones surface as ErrUnsupportedOperator rather than as an
// unrecognized term.
func isRelation(tok string) bool {
	switch tok {
	case "<=", "≤", ">=", "≥", "=", "==", "<", ">", "!=", "=<", "=>", "≠":
		return true
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
