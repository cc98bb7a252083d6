// Package surface is the 2-D drawing target charts are built on: a retained
// scene of tagged shapes plus backends that rasterize it for the terminal
// or export it as SVG/PNG.
package surface

import (
	"math"

	"popchart/internal/scale"
)

// Point is a position in surface pixels.
type Point = scale.Point

// Surface is everything a chart needs from a drawing target.
type Surface interface {
	DrawPoint(x, y, r float64, st Style)
	DrawPath(pts []Point, st Style)
	DrawText(x, y float64, text string, st Style)
	// RemoveByTag drops every shape carrying tag and returns how many went.
	RemoveByTag(tag string) int
	// ScreenPos converts a surface position to a terminal cell (col, row).
	ScreenPos(x, y float64) (int, int)
}

// Kind is the shape type.
type Kind int

const (
	KindPoint Kind = iota
	KindPath
	KindText
)

// Curve selects how a path joins its vertices.
type Curve string

const (
	CurveLinear   Curve = "linear"
	CurveMonotone Curve = "monotone"
)

// Style carries drawing attributes. Colors are hex strings ("#4286f4").
type Style struct {
	Tag         string
	Fill        string
	Stroke      string
	StrokeWidth float64
	FontSize    float64
	// Rotate is in degrees; -90 draws text bottom to top.
	Rotate float64
	Curve  Curve
	// Rows are indices of the data rows a mark stands for.
	Rows []int
}

// Shape is one retained drawing.
type Shape struct {
	Kind   Kind
	Points []Point
	Radius float64
	Text   string
	Style  Style
}

// Scene is a retained-mode Surface.
type Scene struct {
	Width  float64
	Height float64

	shapes []Shape

	// terminal viewport used by ScreenPos
	col0, row0 int
	cols, rows int
}

// NewScene returns an empty scene of the given pixel size.
func NewScene(w, h float64) *Scene {
	return &Scene{Width: w, Height: h}
}

func (s *Scene) DrawPoint(x, y, r float64, st Style) {
	s.shapes = append(s.shapes, Shape{Kind: KindPoint, Points: []Point{{X: x, Y: y}}, Radius: r, Style: st})
}

func (s *Scene) DrawPath(pts []Point, st Style) {
	cp := append([]Point(nil), pts...)
	s.shapes = append(s.shapes, Shape{Kind: KindPath, Points: cp, Style: st})
}

func (s *Scene) DrawText(x, y float64, text string, st Style) {
	s.shapes = append(s.shapes, Shape{Kind: KindText, Points: []Point{{X: x, Y: y}}, Text: text, Style: st})
}

func (s *Scene) RemoveByTag(tag string) int {
	kept := s.shapes[:0]
	for _, sh := range s.shapes {
		if sh.Style.Tag != tag {
			kept = append(kept, sh)
		}
	}
	n := len(s.shapes) - len(kept)
	for i := len(kept); i < len(s.shapes); i++ {
		s.shapes[i] = Shape{}
	}
	s.shapes = kept
	return n
}

// Clear drops every shape.
func (s *Scene) Clear() { s.shapes = nil }

// Shapes returns the retained shapes in draw order.
func (s *Scene) Shapes() []Shape { return s.shapes }

// Count returns the number of shapes carrying tag.
func (s *Scene) Count(tag string) int {
	n := 0
	for _, sh := range s.shapes {
		if sh.Style.Tag == tag {
			n++
		}
	}
	return n
}

// SetViewport places the scene on the terminal: its top-left cell and size in cells.
func (s *Scene) SetViewport(col, row, cols, rows int) {
	s.col0, s.row0, s.cols, s.rows = col, row, cols, rows
}

// Viewport returns what SetViewport stored.
func (s *Scene) Viewport() (col, row, cols, rows int) {
	return s.col0, s.row0, s.cols, s.rows
}

// ScreenPos maps a surface position to a terminal cell. Without a
// viewport it returns the rounded pixel position.
func (s *Scene) ScreenPos(x, y float64) (int, int) {
	if s.cols <= 0 || s.rows <= 0 {
		return int(math.Round(x)), int(math.Round(y))
	}
	mx := toMicro(x, s.Width, s.cols*2)
	my := toMicro(y, s.Height, s.rows*4)
	return s.col0 + mx/2, s.row0 + my/4
}

// FromScreen maps a terminal cell to the surface position at its center.
// ok is false when the cell is outside the viewport.
func (s *Scene) FromScreen(col, row int) (Point, bool) {
	if s.cols <= 0 || s.rows <= 0 {
		return Point{}, false
	}
	cx, cy := col-s.col0, row-s.row0
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return Point{}, false
	}
	return Point{
		X: fromMicro(cx*2, s.Width, s.cols*2),
		Y: fromMicro(cy*4+1, s.Height, s.rows*4),
	}, true
}

// Hit finds the shape tagged tag nearest to p within tol pixels. Points
// count from their rim, paths from their nearest segment.
func (s *Scene) Hit(p Point, tol float64, tag string) (Shape, bool) {
	best := math.Inf(1)
	var found Shape
	for _, sh := range s.shapes {
		if sh.Style.Tag != tag {
			continue
		}
		var d float64
		switch sh.Kind {
		case KindPoint:
			d = dist(p, sh.Points[0]) - sh.Radius
		case KindPath:
			d = pathDist(p, sh.Points)
		default:
			continue
		}
		if d < best {
			best, found = d, sh
		}
	}
	if best > tol {
		return Shape{}, false
	}
	return found, true
}

func dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func pathDist(p Point, pts []Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return dist(p, pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		if d := segDist(p, pts[i-1], pts[i]); d < best {
			best = d
		}
	}
	return best
}

func segDist(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return dist(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// toMicro maps v in [0, extent] onto n micro-pixels.
func toMicro(v, extent float64, n int) int {
	if extent <= 0 || n <= 1 {
		return 0
	}
	return int(math.Round(v / extent * float64(n-1)))
}

func fromMicro(m int, extent float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(m) / float64(n-1) * extent
}
