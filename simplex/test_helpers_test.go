// SPDX-License-Identifier: MIT

package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/rational"
	"github.com/katalvlaran/tableau/simplex"
)

// classroom problems used across the package tests.
var (
	ex1Obj  = "5x1 + 2x2"
	ex1Cons = []string{"10x1 + 12x2 <= 60", "2x1 + x2 <= 6"}

	ex2Obj  = "2x1 + 3x2 + 4x3"
	ex2Cons = []string{"x1 + x2 + x3 <= 100", "2x1 + x2 + 0x3 <= 210", "x1 + 0x2 + 0x3 <= 80"}

	ex3Obj  = "10x1 + 12x2"
	ex3Cons = []string{"x1 + x2 <= 100", "x1 + 3x2 <= 270"}
)

func rats(ss ...string) []*big.Rat {
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		out[i] = rational.MustParse(s)
	}
	return out
}

func cells(r simplex.Row) []string { return r.Strings() }

func mustSolve(t testing.TB, obj string, cons []string, opts ...simplex.Option) *simplex.Result {
	t.Helper()
	res, err := simplex.SolveStrings(obj, cons, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func mustBuild(t testing.TB, obj string, cons []string) *simplex.Tableau {
	t.Helper()
	p, err := simplex.ParseProblem(obj, cons)
	require.NoError(t, err)
	tab, err := simplex.Build(p)
	require.NoError(t, err)
	return tab
}
