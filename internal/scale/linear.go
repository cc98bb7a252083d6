package scale

import "math"

// Linear maps the domain [D0, D1] onto the range [R0, R1]. Values outside
// the domain extrapolate; nothing is clamped. A degenerate domain (D0 == D1)
// divides by zero, so callers pad extents before building one.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects a domain value into the range. It interpolates on the
// normalized position t so that both domain ends land exactly on R0 and R1.
func (s Linear) Map(x float64) float64 {
	t := (x - s.D0) / (s.D1 - s.D0)
	return s.R0*(1-t) + s.R1*t
}

// Invert projects a range value back into the domain.
func (s Linear) Invert(px float64) float64 {
	t := (px - s.R0) / (s.R1 - s.R0)
	return s.D0*(1-t) + s.D1*t
}

// Domain returns the domain in increasing order.
func (s Linear) Domain() Extent {
	return Extent{Min: math.Min(s.D0, s.D1), Max: math.Max(s.D0, s.D1)}
}

// Ticks returns roughly n round values inside the domain, ascending.
// Steps follow the 1, 2, 5 x 10^k pattern.
func (s Linear) Ticks(n int) []float64 {
	d := s.Domain()
	if !d.Valid() || n < 1 {
		return nil
	}
	if d.Span() == 0 {
		return []float64{d.Min}
	}
	step := tickStep(d.Span(), n)
	// For fractional steps count in whole multiples of 1/step so values
	// come out as 0.6 rather than 0.6000000000000001.
	var at func(k float64) float64
	var k0, k1 float64
	if step < 1 {
		inv := math.Round(1 / step)
		at = func(k float64) float64 { return k / inv }
		k0, k1 = math.Ceil(d.Min*inv), math.Floor(d.Max*inv)
	} else {
		at = func(k float64) float64 { return k * step }
		k0, k1 = math.Ceil(d.Min/step), math.Floor(d.Max/step)
	}
	var out []float64
	for k := k0; k <= k1; k++ {
		out = append(out, at(k))
	}
	return out
}

func tickStep(span float64, n int) float64 {
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm >= 7.07:
		return 10 * mag
	case norm >= 3.16:
		return 5 * mag
	case norm >= 1.41:
		return 2 * mag
	default:
		return mag
	}
}
