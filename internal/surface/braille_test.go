package surface

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterPointAndText(t *testing.T) {
	s := NewScene(100, 100)
	s.DrawPoint(0, 0, 0.1, Style{Fill: "#4286f4"})
	s.DrawText(50, 50, "Hi", Style{Fill: "#000000"})

	r := NewRaster(10, 5)
	r.Draw(s)
	lines := r.Plain()
	require.Len(t, lines, 5)
	assert.Equal(t, rune(0x2801), []rune(lines[0])[0])
	assert.Contains(t, lines[2], "Hi")
}

func TestRasterVerticalText(t *testing.T) {
	s := NewScene(100, 100)
	s.DrawText(0, 99, "abc", Style{Rotate: -90})
	r := NewRaster(4, 6)
	r.Draw(s)
	lines := r.Plain()
	assert.Equal(t, 'a', []rune(lines[3])[0])
	assert.Equal(t, 'b', []rune(lines[4])[0])
	assert.Equal(t, 'c', []rune(lines[5])[0])
}

func TestRasterPathSkipsNaN(t *testing.T) {
	s := NewScene(100, 100)
	s.DrawPath([]Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 10}, {X: 99, Y: 99}}, Style{Stroke: "#ff0000"})
	s.DrawPoint(math.NaN(), 1, 3, Style{})
	r := NewRaster(10, 10)
	r.Draw(s)
	lines := r.Plain()
	// endpoints drawn, no segment between them
	assert.NotEqual(t, ' ', []rune(lines[0])[0])
	assert.NotEqual(t, ' ', []rune(lines[9])[9])
	assert.Equal(t, ' ', []rune(lines[5])[5])
}

func TestRasterOverlay(t *testing.T) {
	base := NewRaster(10, 4)
	base.putText(0, 0, "xxxxxxxxxx", false, "#ffffff")

	ov := NewRaster(4, 3)
	ov.Frame("#ff0000")

	hidden := NewRaster(10, 4)
	hidden.putText(0, 0, "xxxxxxxxxx", false, "#ffffff")
	hidden.Overlay(ov, 2, 0, 0, "#000000")
	assert.Equal(t, "xxxxxxxxxx", hidden.Plain()[0])

	base.Overlay(ov, 2, 0, 0.5, "#000000")
	assert.Equal(t, "xx╭──╮xxxx", base.Plain()[0])
	assert.Equal(t, "  │  │    ", base.Plain()[1])
	assert.Equal(t, "#800000", base.fg[0][2])

	base.Overlay(ov, 8, 2, 1, "#000000")
	assert.Equal(t, "  ╰──╯  ╭─", base.Plain()[2])
	assert.Equal(t, "        │ ", base.Plain()[3])
	assert.Equal(t, "#ff0000", base.fg[2][8])
}

func TestRasterRenderKeepsGlyphs(t *testing.T) {
	r := NewRaster(6, 1)
	r.putText(0, 0, "ab", false, "#ff0000")
	r.putText(3, 0, "cd", false, "")
	out := r.Render()
	assert.Contains(t, out, "ab")
	assert.True(t, strings.HasSuffix(out, "cd "))
}

func TestFade(t *testing.T) {
	assert.Equal(t, "#ff0000", fade("#ff0000", "#000000", 1))
	assert.Equal(t, "", fade("", "#000000", 0.5))
	assert.Equal(t, "bogus", fade("bogus", "#000000", 0.5))
	assert.Equal(t, "#000000", fade("#ffffff", "#000000", 0))
}
