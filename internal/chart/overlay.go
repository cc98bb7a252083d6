package chart

import (
	"time"

	"popchart/internal/dataset"
	"popchart/internal/scale"
	"popchart/internal/surface"
)

// Overlay is the secondary chart shown while hovering a primary mark. Its
// scene is rebuilt on every hover-enter and kept afterwards; only its
// opacity says whether it is showing.
type Overlay struct {
	Scene  *surface.Scene
	Origin scale.Point
	Rows   []dataset.Row
	Mapper scale.Mapper

	opacity float64
	from    float64
	to      float64
	start   time.Time
	dur     time.Duration
}

func newOverlay(p Panel) *Overlay {
	return &Overlay{Scene: surface.NewScene(p.Width, p.Height)}
}

// Opacity is the current opacity in [0, 1].
func (o *Overlay) Opacity() float64 { return o.opacity }

// Visible reports whether any of the overlay shows.
func (o *Overlay) Visible() bool { return o.opacity > 0 }

// Animating reports whether a transition is in progress.
func (o *Overlay) Animating() bool { return o.opacity != o.to }

// FadeTo starts a transition from the current opacity to target. A zero
// duration jumps straight there.
func (o *Overlay) FadeTo(target float64, d time.Duration, now time.Time) {
	o.from, o.to, o.start, o.dur = o.opacity, target, now, d
	if d <= 0 {
		o.opacity = target
	}
}

// Tick advances the transition to now and reports whether it is still running.
func (o *Overlay) Tick(now time.Time) bool {
	if !o.Animating() {
		return false
	}
	t := float64(now.Sub(o.start)) / float64(o.dur)
	if t >= 1 {
		o.opacity = o.to
		return false
	}
	if t < 0 {
		t = 0
	}
	o.opacity = o.from + (o.to-o.from)*easeCubicInOut(t)
	return true
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// rebuild clears the scene and draws rows into it.
func (o *Overlay) rebuild(cfg *OverlayConfig, rows []dataset.Row) {
	o.Scene.Clear()
	o.Rows = rows
	o.Mapper = cfg.Mapper(cfg.X.Extent(rows), cfg.Y.Extent(rows))
	drawAxes(o.Scene, o.Mapper, cfg.Panel)
	plotMarks(o.Scene, rows, o.Mapper, cfg.Marks)
	drawLabels(o.Scene, cfg.Panel)
}
