// Package chart draws a population chart variant onto a surface and keeps
// it in step with selection and hover input.
package chart

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"popchart/internal/dataset"
	"popchart/internal/scale"
	"popchart/internal/series"
	"popchart/internal/surface"
)

// Canvas is a surface the controller can also hit-test for hover.
type Canvas interface {
	surface.Surface
	Hit(p surface.Point, tol float64, tag string) (surface.Shape, bool)
}

// State is the controller's redraw state.
type State int

const (
	StateIdle State = iota
	StateRedrawing
)

func (s State) String() string {
	if s == StateRedrawing {
		return "redrawing"
	}
	return "idle"
}

// Controller owns the chart state for one variant: the key navigator, the
// selected series, the primary mapper and the hover overlay. It is not
// safe for concurrent use; callers drive it from a single loop.
type Controller struct {
	v      Variant
	rows   []dataset.Row
	canvas Canvas
	nav    *series.Navigator

	mapper  scale.Mapper
	current []dataset.Row
	state   State
	lastErr error

	overlay  *Overlay
	hovering bool
	hoverIdx int
	hoverRow dataset.Row

	now func() time.Time
}

// New draws the variant's static parts onto c and renders the initial
// selection: v.Initial when it is a key, otherwise the first key.
func New(v Variant, rows []dataset.Row, c Canvas) (*Controller, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	ctl := &Controller{
		v:      v,
		rows:   rows,
		canvas: c,
		nav:    series.NewNavigator(series.Keys(rows, v.Mode.Key, v.SortKeys), v.Initial),
		now:    time.Now,
	}
	if v.Overlay != nil {
		ctl.overlay = newOverlay(v.Overlay.Panel)
	}
	drawLabels(c, v.Panel)
	if v.Domain == DomainAll {
		ctl.mapper = v.Mapper(v.X.Extent(rows), v.Y.Extent(rows))
		drawAxes(c, ctl.mapper, v.Panel)
	}
	log.Printf("chart %s: %d rows, %d %s keys", v.Name, len(rows), ctl.nav.Len(), v.Mode)
	ctl.redraw()
	return ctl, nil
}

// Variant returns the configuration being drawn.
func (c *Controller) Variant() Variant { return c.v }

// Keys lists the selectable keys in navigation order.
func (c *Controller) Keys() []string { return c.nav.Keys() }

// Current is the selected key.
func (c *Controller) Current() string { return c.nav.Current() }

// Index is the selected key's position, -1 when there are no keys.
func (c *Controller) Index() int { return c.nav.Index() }

// Series is the selected key's rows in source order.
func (c *Controller) Series() []dataset.Row { return c.current }

// Mapper is the primary projection.
func (c *Controller) Mapper() scale.Mapper { return c.mapper }

// Canvas is the primary surface.
func (c *Controller) Canvas() Canvas { return c.canvas }

// Overlay is the hover overlay, nil for variants without one.
func (c *Controller) Overlay() *Overlay { return c.overlay }

// State is Idle except while a redraw is in progress.
func (c *Controller) State() State { return c.state }

// LastErr is the non-fatal error of the last redraw, such as
// ErrEmptySelection.
func (c *Controller) LastErr() error { return c.lastErr }

// Select makes key current and redraws.
func (c *Controller) Select(key string) error {
	if !c.nav.Select(key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	c.redraw()
	return nil
}

// Prev selects the previous key. At the first key it does nothing and
// reports false.
func (c *Controller) Prev() bool {
	if !c.nav.Prev() {
		return false
	}
	c.redraw()
	return true
}

// Next selects the next key. At the last key it does nothing and reports
// false.
func (c *Controller) Next() bool {
	if !c.nav.Next() {
		return false
	}
	c.redraw()
	return true
}

func (c *Controller) redraw() {
	c.state = StateRedrawing
	defer func() { c.state = StateIdle }()

	c.canvas.RemoveByTag(TagLine)
	c.canvas.RemoveByTag(TagPoints)

	key := c.nav.Current()
	c.current = series.Filter(c.rows, c.v.Mode.Predicate(key))

	if c.v.Domain == DomainSeries {
		c.canvas.RemoveByTag(TagAxis)
		c.mapper = c.v.Mapper(c.v.X.Extent(c.current), c.v.Y.Extent(c.current))
		drawAxes(c.canvas, c.mapper, c.v.Panel)
	}

	c.lastErr = nil
	if len(c.current) == 0 {
		c.lastErr = fmt.Errorf("%w: %s %q", ErrEmptySelection, c.v.Mode, key)
		log.Printf("chart %s: %v", c.v.Name, c.lastErr)
	}
	plotMarks(c.canvas, c.current, c.mapper, c.v.Marks)

	if c.hovering {
		c.leave()
	}
	log.Printf("chart %s: selected %q (%d rows)", c.v.Name, key, len(c.current))
}

// Hovering reports whether the cursor is over a hover target.
func (c *Controller) Hovering() bool { return c.hovering }

// Hovered is the row under the cursor while hovering.
func (c *Controller) Hovered() (dataset.Row, bool) { return c.hoverRow, c.hovering }

// HoverAt handles a cursor position in primary surface pixels. tol is the
// hit distance in pixels. Entering a hover target rebuilds the overlay
// next to the cursor and fades it in; leaving fades it out. It reports
// whether the hover state changed.
func (c *Controller) HoverAt(p surface.Point, tol float64) bool {
	if c.overlay == nil || c.v.Marks.Hover == "" {
		return false
	}
	tag := TagLine
	if c.v.Marks.Hover == HoverPoints {
		tag = TagPoints
	}
	sh, ok := c.canvas.Hit(p, tol, tag)
	if !ok || len(sh.Style.Rows) == 0 {
		if !c.hovering {
			return false
		}
		c.leave()
		return true
	}

	idx := c.nearestRow(sh, p)
	if idx < 0 || idx >= len(c.current) {
		return false
	}
	// A path is one target: moving along it only updates the hovered row.
	if c.hovering && (sh.Kind == surface.KindPath || idx == c.hoverIdx) {
		changed := idx != c.hoverIdx
		c.hoverIdx, c.hoverRow = idx, c.current[idx]
		return changed
	}
	c.enter(idx, p)
	return true
}

func (c *Controller) enter(idx int, cursor surface.Point) {
	c.hovering = true
	c.hoverIdx, c.hoverRow = idx, c.current[idx]

	cfg := c.v.Overlay
	c.overlay.rebuild(cfg, c.secondaryRows(c.hoverRow))
	c.overlay.Origin = cfg.Placement.Place(cursor)
	c.overlay.FadeTo(cfg.ShowOpacity, cfg.FadeIn, c.now())
}

func (c *Controller) leave() {
	c.hovering = false
	c.overlay.FadeTo(0, c.v.Overlay.FadeOut, c.now())
}

func (c *Controller) secondaryRows(hovered dataset.Row) []dataset.Row {
	switch c.v.Overlay.Rows {
	case RowsLocation:
		return series.Filter(c.rows, series.ByLocation(hovered.Location))
	case RowsYear:
		key := strconv.Itoa(hovered.Time)
		if c.v.Mode == series.ModeYear {
			key = c.nav.Current()
		}
		return series.Filter(c.rows, series.ByYear(key))
	}
	return c.rows
}

// nearestRow picks the hovered row of a mark: the point's own row, or for
// a path the row whose x is closest to the cursor.
func (c *Controller) nearestRow(sh surface.Shape, p surface.Point) int {
	if sh.Kind != surface.KindPath {
		return sh.Style.Rows[0]
	}
	best, bestD := -1, math.Inf(1)
	for _, i := range sh.Style.Rows {
		if i < 0 || i >= len(c.current) {
			continue
		}
		if d := math.Abs(c.mapper.XMap(c.current[i]) - p.X); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Tick advances the overlay fade to now and reports whether it is still
// running.
func (c *Controller) Tick(now time.Time) bool {
	if c.overlay == nil {
		return false
	}
	return c.overlay.Tick(now)
}

// Tooltip describes the hovered row, one line per fact. It is empty when
// nothing is hovered.
func (c *Controller) Tooltip() []string {
	if !c.hovering {
		return nil
	}
	return tooltipLines(c.hoverRow)
}
