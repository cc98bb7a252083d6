package tui

import (
	"math"
	"strings"

	"popchart/internal/surface"
)

// renderChart rasterizes the primary scene into the chart area and lays
// the hover overlay over it at the controller's placement.
func (m Model) renderChart() string {
	r := surface.NewRaster(m.chartCols, m.chartRows)
	r.Draw(m.scene)

	if ov := m.ctl.Overlay(); ov != nil && ov.Visible() {
		cols := scaleCells(ov.Scene.Width, m.scene.Width, m.chartCols)
		rows := scaleCells(ov.Scene.Height, m.scene.Height, m.chartRows)
		sub := surface.NewRaster(cols, rows)
		sub.Draw(ov.Scene)
		sub.Frame(frameHex)

		col, row := m.scene.ScreenPos(ov.Origin.X, ov.Origin.Y)
		col = clamp(col-m.chartCol, 0, m.chartCols-cols)
		row = clamp(row-m.chartRow, 0, m.chartRows-rows)
		r.Overlay(sub, col, row, ov.Opacity(), backdropHex)
	}
	return r.Render()
}

// scaleCells sizes a secondary surface of w pixels in the same cells per
// pixel as a primary of pw pixels drawn over n cells.
func scaleCells(w, pw float64, n int) int {
	if pw <= 0 {
		return 0
	}
	c := int(math.Round(w / pw * float64(n)))
	return clamp(c, 0, n)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// renderTooltip shows the hovered row's facts on one line.
func (m Model) renderTooltip() string {
	if m.ctl == nil {
		return ""
	}
	lines := m.ctl.Tooltip()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "  ·  ")
}
