package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveByTagOnlyMatching(t *testing.T) {
	s := NewScene(800, 500)
	s.DrawText(100, 40, "title", Style{Tag: "label"})
	s.DrawPath([]Point{{X: 50, Y: 50}, {X: 750, Y: 450}}, Style{Tag: "series"})
	s.DrawPoint(10, 10, 3, Style{Tag: "series"})
	s.DrawPath([]Point{{X: 50, Y: 450}, {X: 750, Y: 450}}, Style{Tag: "axis"})

	assert.Equal(t, 2, s.RemoveByTag("series"))
	require.Len(t, s.Shapes(), 2)
	assert.Equal(t, "label", s.Shapes()[0].Style.Tag)
	assert.Equal(t, "axis", s.Shapes()[1].Style.Tag)
	assert.Equal(t, 0, s.RemoveByTag("series"))
	assert.Equal(t, 1, s.Count("axis"))
}

func TestDrawPathCopiesPoints(t *testing.T) {
	s := NewScene(10, 10)
	pts := []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	s.DrawPath(pts, Style{})
	pts[0].X = 9
	assert.Equal(t, 1.0, s.Shapes()[0].Points[0].X)
}

func TestHit(t *testing.T) {
	s := NewScene(800, 500)
	s.DrawPoint(100, 100, 3, Style{Tag: "dot", Rows: []int{4}})
	s.DrawPoint(200, 100, 3, Style{Tag: "dot", Rows: []int{7}})
	s.DrawPath([]Point{{X: 0, Y: 300}, {X: 800, Y: 300}}, Style{Tag: "line", Rows: []int{0, 1}})

	sh, ok := s.Hit(Point{X: 195, Y: 101}, 4, "dot")
	require.True(t, ok)
	assert.Equal(t, []int{7}, sh.Style.Rows)

	_, ok = s.Hit(Point{X: 150, Y: 150}, 4, "dot")
	assert.False(t, ok)

	sh, ok = s.Hit(Point{X: 420, Y: 296}, 5, "line")
	require.True(t, ok)
	assert.Equal(t, KindPath, sh.Kind)

	_, ok = s.Hit(Point{X: 420, Y: 296}, 5, "missing")
	assert.False(t, ok)
}

func TestScreenPosRoundTrip(t *testing.T) {
	s := NewScene(800, 500)
	col, row := s.ScreenPos(12.4, 7.6)
	assert.Equal(t, 12, col)
	assert.Equal(t, 8, row)
	_, ok := s.FromScreen(0, 0)
	assert.False(t, ok)

	s.SetViewport(2, 1, 80, 25)
	col, row = s.ScreenPos(0, 0)
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)
	col, row = s.ScreenPos(800, 500)
	assert.Equal(t, 81, col)
	assert.Equal(t, 25, row)

	p, ok := s.FromScreen(42, 13)
	require.True(t, ok)
	c2, r2 := s.ScreenPos(p.X, p.Y)
	assert.Equal(t, 42, c2)
	assert.Equal(t, 13, r2)

	_, ok = s.FromScreen(1, 1)
	assert.False(t, ok)
	_, ok = s.FromScreen(82, 1)
	assert.False(t, ok)
}

func TestSampleMonotone(t *testing.T) {
	pts := []Point{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 5}}
	assert.Equal(t, pts, Sample(pts, CurveLinear))
	two := pts[:2]
	assert.Equal(t, two, Sample(two, CurveMonotone))

	out := Sample(pts, CurveMonotone)
	require.Len(t, out, 1+3*curveSteps)
	assert.Equal(t, pts[0], out[0])
	assert.InDelta(t, pts[3].X, out[len(out)-1].X, 1e-9)
	assert.InDelta(t, pts[3].Y, out[len(out)-1].Y, 1e-9)
	// flat middle segment stays flat: no overshoot below 0
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Y, -1e-9)
		assert.LessOrEqual(t, p.Y, 10+1e-9)
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, finite(Point{X: 1, Y: 2}))
	assert.False(t, finite(Point{X: math.NaN(), Y: 2}))
	assert.False(t, finite(Point{X: 1, Y: math.Inf(-1)}))
}
