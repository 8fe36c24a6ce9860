package matl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString(t *testing.T) {
	cases := []struct {
		n      Number
		expect string
	}{
		{Int(14), "14"},
		{Int(-6), "-6"},
		{Real(5), "5.0"},
		{Real(-0.25), "-0.25"},
		{Real(1.5), "1.5"},
		{Real(0), "0.0"},
		{Real(1e16), "1e+16"},
		{Real(0.00001), "1e-05"},
		{Real(123456789), "123456789.0"},
		{Real(math.Inf(1)), "inf"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, c.n.String())
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("42")
	assert.NoError(t, err)
	assert.Equal(t, Int(42), n)

	n, err = ParseNumber("4.")
	assert.NoError(t, err)
	assert.Equal(t, Real(4), n)

	_, err = ParseNumber("1.2.3")
	assert.Error(t, err)
}

func TestNumberPromotion(t *testing.T) {
	sum, err := Int(1).add(Real(0.5))
	assert.NoError(t, err)
	assert.Equal(t, Real(1.5), sum)

	diff, err := Real(2).sub(Int(2))
	assert.NoError(t, err)
	assert.Equal(t, Real(0), diff)

	prod, err := Int(-3).mul(Int(4))
	assert.NoError(t, err)
	assert.Equal(t, Int(-12), prod)

	quot, err := Int(9).div(Int(3))
	assert.NoError(t, err)
	assert.Equal(t, Real(3), quot)

	neg, err := Real(2.5).neg()
	assert.NoError(t, err)
	assert.Equal(t, Real(-2.5), neg)
}

func TestNumberOverflow(t *testing.T) {
	_, err := Int(math.MaxInt64).add(Int(1))
	assert.Equal(t, errIntegerOverflow, err)

	_, err = Int(math.MinInt64).sub(Int(1))
	assert.Equal(t, errIntegerOverflow, err)

	_, err = Int(math.MinInt64).mul(Int(-1))
	assert.Equal(t, errIntegerOverflow, err)

	_, err = Int(math.MinInt64).neg()
	assert.Equal(t, errIntegerOverflow, err)

	v, err := Int(math.MaxInt64).add(Int(-1))
	assert.NoError(t, err)
	assert.Equal(t, Int(math.MaxInt64-1), v)

	v, err = Int(math.MinInt64 + 1).sub(Int(1))
	assert.NoError(t, err)
	assert.Equal(t, Int(math.MinInt64), v)
}
