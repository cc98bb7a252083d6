package surface

import "math"

const curveSteps = 8

// Sample turns a path's vertices into the polyline that is actually drawn.
// Monotone curves use Steffen's tangents, so the curve never overshoots
// the data between two vertices.
func Sample(pts []Point, c Curve) []Point {
	if c != CurveMonotone || len(pts) < 3 {
		return pts
	}
	n := len(pts)
	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	t[0] = slope2(pts[0], pts[1], t[1])
	t[n-1] = slope2(pts[n-2], pts[n-1], t[n-2])

	out := []Point{pts[0]}
	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		c0 := Point{X: p0.X + dx, Y: p0.Y + dx*t[i]}
		c1 := Point{X: p1.X - dx, Y: p1.Y - dx*t[i+1]}
		for s := 1; s <= curveSteps; s++ {
			out = append(out, bezier(p0, c0, c1, p1, float64(s)/curveSteps))
		}
	}
	return out
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func slope3(p0, p1, p2 Point) float64 {
	h0 := p1.X - p0.X
	h1 := p2.X - p1.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0 := (p1.Y - p0.Y) / h0
	s1 := (p2.Y - p1.Y) / h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	v := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func slope2(p0, p1 Point, t float64) float64 {
	h := p1.X - p0.X
	if h == 0 {
		return t
	}
	return (3*(p1.Y-p0.Y)/h - t) / 2
}

func bezier(p0, c0, c1, p1 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*p0.X + b*c0.X + c*c1.X + d*p1.X,
		Y: a*p0.Y + b*c0.Y + c*c1.Y + d*p1.Y,
	}
}
