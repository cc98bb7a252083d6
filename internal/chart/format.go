package chart

import (
	"fmt"
	"math"
	"strconv"

	humanize "github.com/dustin/go-humanize"

	"popchart/internal/dataset"
)

// groupThousands formats n with comma separators: 19153000 -> "19,153,000".
func groupThousands(n int64) string { return humanize.Comma(n) }

// population renders millions as a whole head count.
func population(mlns float64) string {
	if math.IsNaN(mlns) || math.IsInf(mlns, 0) {
		return "n/a"
	}
	return groupThousands(int64(math.Round(mlns * 1e6)))
}

func number(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tooltipLines describes one row for the hover tooltip.
func tooltipLines(r dataset.Row) []string {
	loc := r.Location
	if name := dataset.DisplayName(r.Location); name != r.Location {
		loc = fmt.Sprintf("%s (%s)", name, r.Location)
	}
	return []string{
		loc,
		"population: " + population(r.PopMlns),
		"year: " + strconv.Itoa(r.Time),
		"life expectancy: " + number(r.LifeExpectancy),
		"fertility rate: " + number(r.FertilityRate),
	}
}
