package scale

import (
	"math"
	"strconv"
	"strings"
)

// Extent is the [Min, Max] range of a numeric series.
type Extent struct {
	Min float64
	Max float64
}

// EmptyExtent is what reducing no values yields.
var EmptyExtent = Extent{Min: math.NaN(), Max: math.NaN()}

// Of reduces values to their extent. NaN is not skipped: a single NaN
// anywhere poisons both ends, and callers that want otherwise must
// filter first. No values also yield EmptyExtent.
func Of(values []float64) Extent {
	if len(values) == 0 {
		return EmptyExtent
	}
	e := Extent{Min: values[0], Max: values[0]}
	for _, v := range values {
		if math.IsNaN(v) {
			return EmptyExtent
		}
		if v < e.Min {
			e.Min = v
		}
		if v > e.Max {
			e.Max = v
		}
	}
	return e
}

// ParseValues coerces strings to floats; unparsable entries become NaN.
func ParseValues(raw []string) []float64 {
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// Pad widens the extent by lo below and hi above.
func (e Extent) Pad(lo, hi float64) Extent {
	return Extent{Min: e.Min - lo, Max: e.Max + hi}
}

// Round rounds both ends to the given number of decimal places.
func (e Extent) Round(places int) Extent {
	p := math.Pow(10, float64(places))
	return Extent{Min: math.Round(e.Min*p) / p, Max: math.Round(e.Max*p) / p}
}

// Valid reports whether both ends are finite.
func (e Extent) Valid() bool {
	return !math.IsNaN(e.Min) && !math.IsNaN(e.Max) && !math.IsInf(e.Min, 0) && !math.IsInf(e.Max, 0)
}

// Span is Max - Min.
func (e Extent) Span() float64 { return e.Max - e.Min }

// Contains reports whether v lies within the extent, inclusive.
func (e Extent) Contains(v float64) bool { return v >= e.Min && v <= e.Max }
