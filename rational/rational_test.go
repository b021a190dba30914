package rational_test

import (
	"testing"

	"github.com/katalvlaran/tableau/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse covers integers, signed values, decimals and fractions.
func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12", "12"},
		{"-3", "-3"},
		{" 0.25 ", "1/4"},
		{"7/2", "7/2"},
		{"6/4", "3/2"},
		{"1e2", "100"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := rational.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rational.Format(r))
		})
	}
}

// TestParse_Invalid ensures malformed literals map to ErrInvalidNumber.
func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1/0", "x1", "<="} {
		_, err := rational.Parse(in)
		assert.ErrorIs(t, err, rational.ErrInvalidNumber, "input %q", in)
	}
}

// TestClone_Independent verifies that a clone does not alias its source.
func TestClone_Independent(t *testing.T) {
	src := rational.Frac(1, 3)
	dup := rational.Clone(src)
	src.SetInt64(9)
	assert.Equal(t, "1/3", rational.Format(dup))

	assert.Nil(t, rational.Clone(nil))
}

// TestCloneSlice_Deep verifies element-wise deep copy.
func TestCloneSlice_Deep(t *testing.T) {
	src := []string{"1", "2/3", "-4"}
	rs, err := rational.ParseSlice(src)
	require.NoError(t, err)

	dup := rational.CloneSlice(rs)
	rs[1].SetInt64(0)
	assert.Equal(t, []string{"1", "2/3", "-4"}, rational.FormatSlice(dup))
	assert.Nil(t, rational.CloneSlice(nil))
}

// TestArithmetic checks the non-mutating helpers.
func TestArithmetic(t *testing.T) {
	a := rational.Frac(1, 2)
	b := rational.Frac(1, 3)

	assert.Equal(t, "5/6", rational.Format(rational.Add(a, b)))
	assert.Equal(t, "1/6", rational.Format(rational.Sub(a, b)))
	assert.Equal(t, "1/6", rational.Format(rational.Mul(a, b)))
	assert.Equal(t, "3/2", rational.Format(rational.Quo(a, b)))
	assert.Equal(t, "-1/2", rational.Format(rational.Neg(a)))

	// operands untouched
	assert.Equal(t, "1/2", rational.Format(a))
	assert.Equal(t, "1/3", rational.Format(b))

	assert.Panics(t, func() { rational.Quo(a, rational.Zero()) })
	assert.Panics(t, func() { rational.Frac(1, 0) })
}

// TestPredicates covers IsZero, IsOne and Equal.
func TestPredicates(t *testing.T) {
	assert.True(t, rational.IsZero(rational.Zero()))
	assert.False(t, rational.IsZero(rational.One()))
	assert.True(t, rational.IsOne(rational.Frac(3, 3)))
	assert.False(t, rational.IsOne(rational.Frac(1, 3)))
	assert.False(t, rational.IsOne(rational.New(-1)))
	assert.True(t, rational.Equal(rational.Frac(2, 4), rational.Frac(1, 2)))
	assert.True(t, rational.Equal(nil, nil))
	assert.False(t, rational.Equal(nil, rational.One()))
}

// TestDisplay mirrors the classroom rendering: integers plain, others rounded.
func TestDisplay(t *testing.T) {
	assert.Equal(t, "15", rational.Display(rational.New(15), 2))
	assert.Equal(t, "0.33", rational.Display(rational.Frac(1, 3), 2))
	assert.Equal(t, "-2.67", rational.Display(rational.Frac(-8, 3), 2))
	assert.Equal(t, "3", rational.Display(rational.Frac(5, 2), -1))
	assert.Equal(t, "<nil>", rational.Display(nil, 2))
	assert.Equal(t, "<nil>", rational.Format(nil))
}

// TestMustParse panics on invalid literal.
func TestMustParse(t *testing.T) {
	assert.Equal(t, "1/2", rational.Format(rational.MustParse("0.5")))
	assert.Panics(t, func() { rational.MustParse("nope") })
}
