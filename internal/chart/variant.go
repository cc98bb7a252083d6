package chart

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"popchart/internal/dataset"
	"popchart/internal/scale"
	"popchart/internal/series"
	"popchart/internal/surface"
)

//go:embed presets.yaml
var presetsYAML []byte

// ErrUnknownVariant is returned when a variant name has no definition.
var ErrUnknownVariant = errors.New("unknown variant")

// Axis configures one axis of a panel.
type Axis struct {
	Field dataset.Field `yaml:"field"`
	Range [2]float64    `yaml:"range"`
	Label string        `yaml:"label"`
	// Pad widens the data extent: [below, above].
	Pad [2]float64 `yaml:"pad"`
	// Round rounds the extent to this many decimals when set.
	Round *int `yaml:"round"`
}

// PixelRange returns the axis range.
func (a Axis) PixelRange() scale.Range { return scale.Range{Min: a.Range[0], Max: a.Range[1]} }

// Extent reduces rows onto the axis field, then rounds and pads. A
// single-valued extent is widened around its value so marks land mid-axis.
func (a Axis) Extent(rows []dataset.Row) scale.Extent {
	e := scale.Of(a.Field.Values(rows))
	if a.Round != nil {
		e = e.Round(*a.Round)
	}
	e = e.Pad(a.Pad[0], a.Pad[1])
	if e.Valid() && e.Span() == 0 {
		w := math.Abs(e.Min) / 2
		if w == 0 {
			w = 1
		}
		e = e.Pad(w, w)
	}
	return e
}

// RadiusBy sizes point marks from a field.
type RadiusBy struct {
	Field dataset.Field `yaml:"field"`
	Range [2]float64    `yaml:"range"`
}

// Hover targets.
const (
	HoverLine   = "line"
	HoverPoints = "points"
)

// Marks selects what a panel draws for its rows.
type Marks struct {
	Line        bool          `yaml:"line"`
	Curve       surface.Curve `yaml:"curve"`
	Stroke      string        `yaml:"stroke"`
	StrokeWidth float64       `yaml:"stroke_width"`
	Points      bool          `yaml:"points"`
	Radius      float64       `yaml:"radius"`
	RadiusBy    *RadiusBy     `yaml:"radius_by"`
	Fill        string        `yaml:"fill"`
	// Hover names the mark that opens the overlay: "line", "points" or "".
	Hover string `yaml:"hover"`
}

// Panel is one chart: its size, axes and marks.
type Panel struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	X      Axis    `yaml:"x"`
	Y      Axis    `yaml:"y"`
	Marks  Marks   `yaml:"marks"`
}

// Mapper builds the projection for already padded extents.
func (p Panel) Mapper(xe, ye scale.Extent) scale.Mapper {
	return scale.NewMapper(p.X.Field, p.Y.Field, xe, ye, p.X.PixelRange(), p.Y.PixelRange())
}

// Placement positions the overlay relative to the cursor. The overlay's
// left edge sits OffsetX right of the cursor. Its top sits OffsetBelow under
// the cursor while the cursor is above FlipAbove, and OffsetAbove over it
// otherwise.
type Placement struct {
	OffsetX     float64 `yaml:"offset_x"`
	OffsetBelow float64 `yaml:"offset_below"`
	OffsetAbove float64 `yaml:"offset_above"`
	FlipAbove   float64 `yaml:"flip_above"`
}

// Place returns the overlay's top-left for a cursor position.
func (pl Placement) Place(cursor scale.Point) scale.Point {
	top := cursor.Y - pl.OffsetAbove
	if cursor.Y < pl.FlipAbove {
		top = cursor.Y + pl.OffsetBelow
	}
	return scale.Point{X: cursor.X + pl.OffsetX, Y: top}
}

// Overlay row sources.
const (
	RowsAll      = "all"
	RowsLocation = "location"
	RowsYear     = "year"
)

// OverlayConfig configures the secondary chart shown on hover.
type OverlayConfig struct {
	Panel       `yaml:",inline"`
	Rows        string        `yaml:"rows"`
	ShowOpacity float64       `yaml:"show_opacity"`
	FadeIn      time.Duration `yaml:"fade_in"`
	FadeOut     time.Duration `yaml:"fade_out"`
	Placement   Placement     `yaml:"placement"`
}

// Domain sources for the primary axes.
const (
	DomainAll    = "all"
	DomainSeries = "series"
)

// Variant is a complete chart configuration.
type Variant struct {
	Name     string      `yaml:"-"`
	Mode     series.Mode `yaml:"mode"`
	Initial  string      `yaml:"initial"`
	SortKeys bool        `yaml:"sort_keys"`
	// Domain is "all" to scale the axes over every row once, or "series"
	// to rescale on every selection.
	Domain  string       `yaml:"domain"`
	Panel   `yaml:",inline"`
	Overlay *OverlayConfig `yaml:"overlay"`
}

func (v Variant) clone() Variant {
	v.Panel = v.Panel.clone()
	if v.Overlay != nil {
		o := *v.Overlay
		o.Panel = o.Panel.clone()
		v.Overlay = &o
	}
	return v
}

func (p Panel) clone() Panel {
	for _, a := range []*Axis{&p.X, &p.Y} {
		if a.Round != nil {
			r := *a.Round
			a.Round = &r
		}
	}
	if p.Marks.RadiusBy != nil {
		rb := *p.Marks.RadiusBy
		p.Marks.RadiusBy = &rb
	}
	return p
}

// Validate checks a variant for settings the controller cannot draw.
func (v Variant) Validate() error {
	if !v.Mode.Valid() {
		return fmt.Errorf("variant %s: mode %q must be location or year", v.Name, v.Mode)
	}
	if v.Domain != DomainAll && v.Domain != DomainSeries {
		return fmt.Errorf("variant %s: domain %q must be all or series", v.Name, v.Domain)
	}
	if err := v.Panel.validate(); err != nil {
		return fmt.Errorf("variant %s: %w", v.Name, err)
	}
	if v.Marks.Hover != "" && v.Overlay == nil {
		return fmt.Errorf("variant %s: hover set without overlay", v.Name)
	}
	if o := v.Overlay; o != nil {
		switch o.Rows {
		case RowsAll, RowsLocation, RowsYear:
		default:
			return fmt.Errorf("variant %s: overlay rows %q must be all, location or year", v.Name, o.Rows)
		}
		if err := o.Panel.validate(); err != nil {
			return fmt.Errorf("variant %s overlay: %w", v.Name, err)
		}
	}
	return nil
}

func (p Panel) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("size %gx%g must be positive", p.Width, p.Height)
	}
	for name, a := range map[string]Axis{"x": p.X, "y": p.Y} {
		if _, ok := dataset.ParseField(string(a.Field)); !ok {
			return fmt.Errorf("%s axis: unknown field %q", name, a.Field)
		}
		if a.Range[0] == a.Range[1] {
			return fmt.Errorf("%s axis: empty pixel range", name)
		}
	}
	switch p.Marks.Hover {
	case "":
	case HoverLine:
		if !p.Marks.Line {
			return fmt.Errorf("hover target %q is not drawn", p.Marks.Hover)
		}
	case HoverPoints:
		if !p.Marks.Points {
			return fmt.Errorf("hover target %q is not drawn", p.Marks.Hover)
		}
	default:
		return fmt.Errorf("hover %q must be line or points", p.Marks.Hover)
	}
	if rb := p.Marks.RadiusBy; rb != nil {
		if _, ok := dataset.ParseField(string(rb.Field)); !ok {
			return fmt.Errorf("radius_by: unknown field %q", rb.Field)
		}
	}
	return nil
}

// Set is a collection of variants by name.
type Set map[string]Variant

// Presets returns the built-in variants.
func Presets() Set {
	set, err := decodeSet(presetsYAML, Set{})
	if err != nil {
		panic(fmt.Sprintf("chart: embedded presets: %v", err))
	}
	return set
}

// LoadSet reads a YAML file of variants over the presets. A variant that
// shares a preset's name starts from the preset.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := decodeSet(data, Presets())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

func decodeSet(data []byte, base Set) (Set, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	out := Set{}
	for name, v := range base {
		out[name] = v.clone()
	}
	for name, node := range nodes {
		v := out[name].clone()
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("variant %s: %w", name, err)
		}
		v.Name = name
		if v.Domain == "" {
			v.Domain = DomainAll
		}
		if err := v.Validate(); err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// Get returns the named variant.
func (s Set) Get(name string) (Variant, error) {
	v, ok := s[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, s.Names())
	}
	return v.clone(), nil
}

// Names lists the variants alphabetically.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
