package chart

import (
	"math"
	"strconv"

	"popchart/internal/dataset"
	"popchart/internal/scale"
	"popchart/internal/surface"
)

// Shape tags. Series marks (line and circles) are what a redraw clears.
const (
	TagLabel  = "label"
	TagAxis   = "axis"
	TagLine   = "line"
	TagPoints = "circles"
)

const (
	inkColor     = "#6b7280"
	defaultFill  = "#4286f4"
	defaultLine  = "#4682b4"
	charWidthPx  = 6
	tickLengthPx = 6
)

func drawLabels(s surface.Surface, p Panel) {
	xr, yr := p.X.PixelRange(), p.Y.PixelRange()
	if p.Title != "" {
		s.DrawText(xr.Min+50, yr.Min-10, p.Title, surface.Style{Tag: TagLabel, Fill: inkColor, FontSize: 14})
	}
	if p.X.Label != "" {
		w := float64(len(p.X.Label) * charWidthPx)
		s.DrawText((xr.Min+xr.Max-w)/2, p.Height-10, p.X.Label, surface.Style{Tag: TagLabel, Fill: inkColor, FontSize: 10})
	}
	if p.Y.Label != "" {
		h := float64(len(p.Y.Label) * charWidthPx)
		s.DrawText(12, (yr.Min+yr.Max+h)/2, p.Y.Label, surface.Style{Tag: TagLabel, Fill: inkColor, FontSize: 10, Rotate: -90})
	}
}

// drawAxes draws a bottom x axis and a left y axis with tick labels.
// Nothing is drawn for an axis whose domain is not finite.
func drawAxes(s surface.Surface, m scale.Mapper, p Panel) {
	xr, yr := p.X.PixelRange(), p.Y.PixelRange()
	st := surface.Style{Tag: TagAxis, Stroke: inkColor, StrokeWidth: 1}
	txt := surface.Style{Tag: TagAxis, Fill: inkColor, FontSize: 9}

	if m.X.Domain().Valid() {
		s.DrawPath([]surface.Point{{X: xr.Min, Y: yr.Max}, {X: xr.Max, Y: yr.Max}}, st)
		for _, v := range m.X.Ticks(tickCount(p.Width, 100)) {
			x := m.X.Map(v)
			label := formatTick(v)
			s.DrawPath([]surface.Point{{X: x, Y: yr.Max}, {X: x, Y: yr.Max + tickLengthPx}}, st)
			s.DrawText(x-float64(len(label)*charWidthPx)/2, yr.Max+tickLengthPx+12, label, txt)
		}
	}
	if m.Y.Domain().Valid() {
		s.DrawPath([]surface.Point{{X: xr.Min, Y: yr.Min}, {X: xr.Min, Y: yr.Max}}, st)
		for _, v := range m.Y.Ticks(tickCount(p.Height, 80)) {
			y := m.Y.Map(v)
			label := formatTick(v)
			s.DrawPath([]surface.Point{{X: xr.Min - tickLengthPx, Y: y}, {X: xr.Min, Y: y}}, st)
			s.DrawText(xr.Min-tickLengthPx-2-float64(len(label)*charWidthPx), y+3, label, txt)
		}
	}
}

func tickCount(px, per float64) int {
	n := int(px / per)
	if n < 2 {
		return 2
	}
	return n
}

func formatTick(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// plotMarks draws rows through m. Each mark's Style.Rows holds indices
// into rows.
func plotMarks(s surface.Surface, rows []dataset.Row, m scale.Mapper, mk Marks) {
	if mk.Line {
		idx := make([]int, len(rows))
		for i := range rows {
			idx[i] = i
		}
		stroke := mk.Stroke
		if stroke == "" {
			stroke = defaultLine
		}
		s.DrawPath(m.ProjectAll(rows), surface.Style{
			Tag:         TagLine,
			Stroke:      stroke,
			StrokeWidth: mk.StrokeWidth,
			Curve:       mk.Curve,
			Rows:        idx,
		})
	}
	if mk.Points {
		fill := mk.Fill
		if fill == "" {
			fill = defaultFill
		}
		radius := pointRadius(rows, mk)
		for i, r := range rows {
			p := m.Project(r)
			s.DrawPoint(p.X, p.Y, radius(r), surface.Style{Tag: TagPoints, Fill: fill, Rows: []int{i}})
		}
	}
}

// pointRadius returns the sizing rule for point marks: a fixed radius, or
// a linear scale from the RadiusBy field's extent over rows.
func pointRadius(rows []dataset.Row, mk Marks) func(dataset.Row) float64 {
	rb := mk.RadiusBy
	if rb == nil {
		r := mk.Radius
		if r <= 0 {
			r = 3
		}
		return func(dataset.Row) float64 { return r }
	}
	e := scale.Of(rb.Field.Values(rows))
	if e.Valid() && e.Span() == 0 {
		mid := (rb.Range[0] + rb.Range[1]) / 2
		return func(dataset.Row) float64 { return mid }
	}
	lin := scale.NewLinear(e.Min, e.Max, rb.Range[0], rb.Range[1])
	return func(r dataset.Row) float64 {
		v := lin.Map(rb.Field.Value(r))
		if math.IsNaN(v) {
			return rb.Range[0]
		}
		return v
	}
}
