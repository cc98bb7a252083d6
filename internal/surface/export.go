package surface

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an export file format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ErrUnsupportedFormat is returned for export targets other than .svg and .png.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(p))
}

// Export renders the scene at its pixel size through go-chart's renderer.
func Export(s *Scene, w io.Writer, f Format) error {
	var provider chart.RendererProvider
	switch f {
	case FormatSVG:
		provider = chart.SVG
	case FormatPNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	width, height := int(math.Round(s.Width)), int(math.Round(s.Height))
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", f, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)

	// background
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()
	r.ResetStyle()

	for _, sh := range s.shapes {
		exportShape(r, sh)
	}
	return r.Save(w)
}

func exportShape(r chart.Renderer, sh Shape) {
	defer r.ResetStyle()
	r.SetClassName(sh.Style.Tag)
	switch sh.Kind {
	case KindPoint:
		p := sh.Points[0]
		if !finite(p) {
			return
		}
		r.SetFillColor(hexColor(firstColor(sh.Style.Fill, sh.Style.Stroke)))
		if sh.Style.Stroke != "" {
			r.SetStrokeColor(hexColor(sh.Style.Stroke))
			r.SetStrokeWidth(strokeWidth(sh.Style))
		}
		r.Circle(sh.Radius, px(p.X), px(p.Y))
		r.FillStroke()
	case KindPath:
		pts := Sample(sh.Points, sh.Style.Curve)
		started := false
		for _, p := range pts {
			if !finite(p) {
				started = false
				continue
			}
			if !started {
				r.MoveTo(px(p.X), px(p.Y))
				started = true
				continue
			}
			r.LineTo(px(p.X), px(p.Y))
		}
		r.SetStrokeColor(hexColor(firstColor(sh.Style.Stroke, sh.Style.Fill)))
		r.SetStrokeWidth(strokeWidth(sh.Style))
		r.Stroke()
	case KindText:
		p := sh.Points[0]
		if !finite(p) {
			return
		}
		size := sh.Style.FontSize
		if size <= 0 {
			size = 10
		}
		r.SetFontColor(hexColor(firstColor(sh.Style.Fill, "#000000")))
		r.SetFontSize(size)
		if sh.Style.Rotate != 0 {
			r.SetTextRotation(sh.Style.Rotate * math.Pi / 180)
		}
		r.Text(sh.Text, px(p.X), px(p.Y))
		r.ClearTextRotation()
	}
}

func px(v float64) int { return int(math.Round(v)) }

func strokeWidth(st Style) float64 {
	if st.StrokeWidth > 0 {
		return st.StrokeWidth
	}
	return 1.5
}

func hexColor(c string) drawing.Color {
	if c == "" || c == "none" {
		return drawing.ColorTransparent
	}
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}
