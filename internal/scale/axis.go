package scale

import "popchart/internal/dataset"

// Range is a pixel interval.
type Range struct {
	Min float64
	Max float64
}

// Point is a pixel position on a surface.
type Point struct {
	X, Y float64
}

// Mapper projects rows onto a surface through one scale per axis.
//
// The y scale is built with its domain reversed ([max, min] onto
// [Range.Min, Range.Max]) so that larger values land nearer the top of the
// surface. Ports that keep the domain in natural order draw upside down.
type Mapper struct {
	XField dataset.Field
	YField dataset.Field
	X      Linear
	Y      Linear
}

// NewMapper builds the projections for already padded extents.
func NewMapper(xField, yField dataset.Field, xe, ye Extent, xr, yr Range) Mapper {
	return Mapper{
		XField: xField,
		YField: yField,
		X:      NewLinear(xe.Min, xe.Max, xr.Min, xr.Max),
		Y:      NewLinear(ye.Max, ye.Min, yr.Min, yr.Max),
	}
}

// XMap returns the pixel x of a row.
func (m Mapper) XMap(r dataset.Row) float64 { return m.X.Map(m.XField.Value(r)) }

// YMap returns the pixel y of a row.
func (m Mapper) YMap(r dataset.Row) float64 { return m.Y.Map(m.YField.Value(r)) }

// Project returns the pixel position of a row.
func (m Mapper) Project(r dataset.Row) Point {
	return Point{X: m.XMap(r), Y: m.YMap(r)}
}

// ProjectAll projects rows in order.
func (m Mapper) ProjectAll(rows []dataset.Row) []Point {
	pts := make([]Point, len(rows))
	for i, r := range rows {
		pts[i] = m.Project(r)
	}
	return pts
}

// Unproject converts a pixel position back to data coordinates.
func (m Mapper) Unproject(p Point) (x, y float64) {
	return m.X.Invert(p.X), m.Y.Invert(p.Y)
}

// Extents reduces rows onto the mapper's two fields.
func Extents(rows []dataset.Row, xField, yField dataset.Field) (Extent, Extent) {
	return Of(xField.Values(rows)), Of(yField.Values(rows))
}
