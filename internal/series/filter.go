package series

import (
	"strconv"
	"strings"

	"popchart/internal/dataset"
)

// Predicate selects rows.
type Predicate func(dataset.Row) bool

// Filter returns the rows matching pred in their original order.
// The input slice is never modified and the result never aliases it.
func Filter(rows []dataset.Row, pred Predicate) []dataset.Row {
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByLocation matches rows whose location equals loc exactly.
func ByLocation(loc string) Predicate {
	return func(r dataset.Row) bool { return r.Location == loc }
}

// ByYear matches rows whose year equals key compared as numbers, so
// "2000" and "2000.0" both match 2000. A key that is not a number
// matches nothing.
func ByYear(key string) Predicate {
	want, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil {
		return func(dataset.Row) bool { return false }
	}
	return func(r dataset.Row) bool { return float64(r.Time) == want }
}

// Mode is what a selection key refers to.
type Mode string

const (
	ModeLocation Mode = "location"
	ModeYear     Mode = "year"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeLocation || m == ModeYear }

// Predicate returns the filter for a key in this mode.
func (m Mode) Predicate(key string) Predicate {
	if m == ModeYear {
		return ByYear(key)
	}
	return ByLocation(key)
}

// Key extracts the selection key of a row in this mode.
func (m Mode) Key(r dataset.Row) string {
	if m == ModeYear {
		return strconv.Itoa(r.Time)
	}
	return r.Location
}
