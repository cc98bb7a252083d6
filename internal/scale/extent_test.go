package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfBoundsEveryElement(t *testing.T) {
	cases := [][]float64{
		{3},
		{5, 1, 4, 1, 5, 9, 2, 6},
		{-2.5, -7, 0, 12.25},
		{2000, 2001, 1960, 2017},
	}
	for _, vs := range cases {
		e := Of(vs)
		for _, v := range vs {
			assert.LessOrEqual(t, e.Min, v)
			assert.GreaterOrEqual(t, e.Max, v)
		}
		assert.Contains(t, vs, e.Min)
		assert.Contains(t, vs, e.Max)
	}
}

func TestOfNaNPoisons(t *testing.T) {
	e := Of([]float64{1, math.NaN(), 3})
	assert.True(t, math.IsNaN(e.Min))
	assert.True(t, math.IsNaN(e.Max))
	assert.False(t, e.Valid())

	e = Of(ParseValues([]string{"1.5", "n/a", "2"}))
	assert.False(t, e.Valid())
}

func TestOfEmpty(t *testing.T) {
	e := Of(nil)
	assert.False(t, e.Valid())
}

func TestParseValues(t *testing.T) {
	vs := ParseValues([]string{" 19.4", "x", "2000"})
	assert.Equal(t, 19.4, vs[0])
	assert.True(t, math.IsNaN(vs[1]))
	assert.Equal(t, 2000.0, vs[2])
}

func TestExtentHelpers(t *testing.T) {
	e := Extent{Min: 1.234, Max: 8.765}
	assert.Equal(t, Extent{Min: 0.234, Max: 13.765}, e.Pad(1, 5))
	assert.Equal(t, Extent{Min: 1.23, Max: 8.77}, e.Round(2))
	assert.InDelta(t, 7.531, e.Span(), 1e-12)
	assert.True(t, e.Contains(1.234))
	assert.False(t, e.Contains(9))
	assert.False(t, Extent{Min: 0, Max: math.Inf(1)}.Valid())
}
