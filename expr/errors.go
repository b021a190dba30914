// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

// ErrParse matches every parse failure of this package via errors.Is.
var ErrParse = errors.New("expr: parse error")

// kind is a parse-failure sentinel that also matches ErrParse.
type kind struct{ msg string }

func (k *kind) Error() string { return "expr: " + k.msg }

// Is lets errors.Is(err, ErrParse) succeed for every specific sentinel.
func (k *kind) Is(target error) bool { return target == ErrParse }

var (
	// ErrEmptyExpression indicates an expression without any term.
	ErrEmptyExpression error = &kind{"empty expression"}

	// ErrUnsupportedOperator indicates a relation other than "<=", or a
	// constraint without any relation.
	ErrUnsupportedOperator error = &kind{"unsupported constraint operator"}

	// ErrUnrecognizedToken indicates a token that is neither a term, a sign,
	// nor a relation in a position where one of those is expected.
	ErrUnrecognizedToken error = &kind{"unrecognized token"}

	// ErrMissingRHS indicates a constraint that ends right after its relation.
	ErrMissingRHS error = &kind{"missing right-hand side"}

	// ErrInvalidNumber indicates a coefficient or right-hand side that is not
	// a valid rational literal.
	ErrInvalidNumber error = &kind{"invalid number"}

	// ErrInvalidVariableIndex indicates xN with N < 1 or N > MaxVariableIndex.
	ErrInvalidVariableIndex error = &kind{"invalid variable index"}

	// ErrDuplicateVariable indicates the same variable twice in one expression.
	ErrDuplicateVariable error = &kind{"duplicate variable"}

	// ErrDanglingOperator indicates a sign with no term after it.
	ErrDanglingOperator error = &kind{"dangling operator"}

	// ErrMissingOperator indicates two consecutive terms with no sign between them.
	ErrMissingOperator error = &kind{"missing operator between terms"}
)

// ParseError reports where in the input a parse failure happened.
// Pos is the 0-based token position, or -1 when the failure concerns the
// expression as a whole.
type ParseError struct {
	Input string
	Token string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v in %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: token %q at position %d in %q", e.Err, e.Token, e.Pos, e.Input)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

func fail(input string, pos int, token string, err error) *ParseError {
	return &ParseError{Input: input, Token: token, Pos: pos, Err: err}
}
