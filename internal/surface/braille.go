package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Raster is a terminal cell grid. Each cell holds a braille mask (2x4
// micro-pixels), optionally a text rune that overrides the mask, and the
// foreground color of the last mark drawn into it.
type Raster struct {
	w, h int // in cells
	mask [][]uint8
	text [][]rune
	fg   [][]string
}

func NewRaster(cols, rows int) *Raster {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	r := &Raster{w: cols, h: rows}
	r.mask = make([][]uint8, rows)
	r.text = make([][]rune, rows)
	r.fg = make([][]string, rows)
	for i := 0; i < rows; i++ {
		r.mask[i] = make([]uint8, cols)
		r.text[i] = make([]rune, cols)
		r.fg[i] = make([]string, cols)
	}
	return r
}

func (r *Raster) Cols() int { return r.w }
func (r *Raster) Rows() int { return r.h }

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (r *Raster) setPixel(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= r.h || cx >= r.w {
		return
	}
	r.mask[cy][cx] |= brailleBits[rx][ry]
	if col != "" {
		r.fg[cy][cx] = col
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (r *Raster) drawLineMicro(x0, y0, x1, y1 int, col string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillDisc sets every micro-pixel within rad of (cx, cy).
func (r *Raster) fillDisc(cx, cy int, rad float64, col string) {
	ir := int(math.Ceil(rad))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= rad*rad {
				r.setPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// putText writes s starting at cell (cx, cy); vertical runs downward.
func (r *Raster) putText(cx, cy int, s string, vertical bool, col string) {
	for _, ch := range s {
		if cy >= 0 && cy < r.h && cx >= 0 && cx < r.w {
			r.text[cy][cx] = ch
			r.fg[cy][cx] = col
		}
		if vertical {
			cy++
		} else {
			cx++
		}
	}
}

// Draw rasterizes every shape of s, scaled to fill the grid.
func (r *Raster) Draw(s *Scene) {
	if s.Width <= 0 || s.Height <= 0 || r.w == 0 || r.h == 0 {
		return
	}
	wMic, hMic := r.w*2, r.h*4
	micro := func(p Point) (int, int) {
		return toMicro(p.X, s.Width, wMic), toMicro(p.Y, s.Height, hMic)
	}
	pxScale := float64(wMic-1) / s.Width
	for _, sh := range s.shapes {
		switch sh.Kind {
		case KindPoint:
			p := sh.Points[0]
			if !finite(p) {
				continue
			}
			mx, my := micro(p)
			col := firstColor(sh.Style.Fill, sh.Style.Stroke)
			rad := sh.Radius * pxScale
			if rad < 1 {
				r.setPixel(mx, my, col)
				continue
			}
			r.fillDisc(mx, my, rad, col)
		case KindPath:
			col := firstColor(sh.Style.Stroke, sh.Style.Fill)
			var prev *[2]int
			for _, p := range Sample(sh.Points, sh.Style.Curve) {
				if !finite(p) {
					prev = nil
					continue
				}
				mx, my := micro(p)
				if prev != nil {
					r.drawLineMicro(prev[0], prev[1], mx, my, col)
				} else {
					r.setPixel(mx, my, col)
				}
				prev = &[2]int{mx, my}
			}
		case KindText:
			p := sh.Points[0]
			if !finite(p) {
				continue
			}
			mx, my := micro(p)
			vertical := sh.Style.Rotate <= -45 || sh.Style.Rotate >= 45
			cx, cy := mx/2, my/4
			if vertical {
				// rotated labels read bottom to top and end at their anchor
				cy -= len([]rune(sh.Text)) - 1
			}
			r.putText(cx, cy, sh.Text, vertical, firstColor(sh.Style.Fill, sh.Style.Stroke))
		}
	}
}

// Frame draws a rounded border on the outermost cells.
func (r *Raster) Frame(col string) {
	if r.w < 2 || r.h < 2 {
		return
	}
	for x := 1; x < r.w-1; x++ {
		r.putText(x, 0, "─", false, col)
		r.putText(x, r.h-1, "─", false, col)
	}
	for y := 1; y < r.h-1; y++ {
		r.putText(0, y, "│", false, col)
		r.putText(r.w-1, y, "│", false, col)
	}
	r.putText(0, 0, "╭", false, col)
	r.putText(r.w-1, 0, "╮", false, col)
	r.putText(0, r.h-1, "╰", false, col)
	r.putText(r.w-1, r.h-1, "╯", false, col)
}

// Overlay copies src onto r with its top-left at (col, row). Cells under
// src are replaced, blank ones included, so the overlay hides what is
// beneath it. Colors are blended toward bg by 1-opacity; at zero opacity
// nothing is copied.
func (r *Raster) Overlay(src *Raster, col, row int, opacity float64, bg string) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	for y := 0; y < src.h; y++ {
		ty := row + y
		if ty < 0 || ty >= r.h {
			continue
		}
		for x := 0; x < src.w; x++ {
			tx := col + x
			if tx < 0 || tx >= r.w {
				continue
			}
			r.mask[ty][tx] = src.mask[y][x]
			r.text[ty][tx] = src.text[y][x]
			r.fg[ty][tx] = fade(src.fg[y][x], bg, opacity)
		}
	}
}

// Plain returns the grid without styling.
func (r *Raster) Plain() []string {
	out := make([]string, r.h)
	for y := 0; y < r.h; y++ {
		row := make([]rune, r.w)
		for x := 0; x < r.w; x++ {
			row[x] = r.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the grid as colored lines joined by newlines. Runs of
// cells sharing a color are styled together.
func (r *Raster) Render() string {
	lines := make([]string, r.h)
	for y := 0; y < r.h; y++ {
		var b strings.Builder
		var run []rune
		runCol := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runCol)).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < r.w; x++ {
			g := r.glyph(x, y)
			c := r.fg[y][x]
			if g == ' ' {
				c = ""
			}
			if c != runCol {
				flush()
				runCol = c
			}
			run = append(run, g)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Raster) glyph(x, y int) rune {
	if t := r.text[y][x]; t != 0 {
		return t
	}
	if m := r.mask[y][x]; m != 0 {
		return rune(0x2800 + int(m))
	}
	return ' '
}

func firstColor(cs ...string) string {
	for _, c := range cs {
		if c != "" && c != "none" {
			return c
		}
	}
	return ""
}

// fade blends fg toward bg; unparsable colors pass through unchanged.
func fade(fg, bg string, opacity float64) string {
	if fg == "" || opacity >= 1 {
		return fg
	}
	c, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return c.BlendRgb(b, 1-opacity).Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
