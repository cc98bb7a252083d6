package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popchart/internal/dataset"
	"popchart/internal/scale"
)

func sampleRows() []dataset.Row {
	return []dataset.Row{
		{Location: "AUS", Time: 2000, PopMlns: 19.0, FertilityRate: 1.76, LifeExpectancy: 79.2},
		{Location: "AUS", Time: 2001, PopMlns: 19.4, FertilityRate: 1.73, LifeExpectancy: 79.6},
		{Location: "USA", Time: 2000, PopMlns: 282.1, FertilityRate: 2.05, LifeExpectancy: 76.8},
	}
}

func TestFilterByLocationScenario(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, ByLocation("AUS"))
	require.Len(t, got, 2)
	assert.Equal(t, rows[:2], got)

	xe := scale.Of(dataset.FieldTime.Values(got))
	assert.Equal(t, scale.Extent{Min: 2000, Max: 2001}, xe)
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	rows := sampleRows()
	before := append([]dataset.Row(nil), rows...)
	for _, pred := range []Predicate{ByLocation("AUS"), ByLocation("USA"), ByLocation("aus"), ByYear("2000"), ByYear("1999")} {
		got := Filter(rows, pred)
		assert.LessOrEqual(t, len(got), len(rows))
		// every output row appears in the input after the previous one
		j := 0
		for _, g := range got {
			for j < len(rows) && rows[j] != g {
				j++
			}
			require.Less(t, j, len(rows), "row %v not found in order", g)
			j++
		}
		assert.Equal(t, got, Filter(got, pred), "filtering twice must be idempotent")
	}
	assert.Equal(t, before, rows, "source must be untouched")
}

func TestFilterDoesNotAlias(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, ByLocation("AUS"))
	got[0].Location = "changed"
	assert.Equal(t, "AUS", rows[0].Location)
}

func TestByLocationExactOnly(t *testing.T) {
	rows := sampleRows()
	assert.Empty(t, Filter(rows, ByLocation("aus")))
	assert.Empty(t, Filter(rows, ByLocation("AU")))
	assert.Empty(t, Filter(nil, ByLocation("AUS")))
}

func TestByYearLooseEquality(t *testing.T) {
	rows := sampleRows()
	assert.Len(t, Filter(rows, ByYear("2000")), 2)
	assert.Len(t, Filter(rows, ByYear(" 2000.0 ")), 2)
	assert.Len(t, Filter(rows, ByYear("2001")), 1)
	assert.Empty(t, Filter(rows, ByYear("two thousand")))
	assert.Empty(t, Filter(rows, ByYear("200")))
}

func TestMode(t *testing.T) {
	r := sampleRows()[0]
	assert.Equal(t, "AUS", ModeLocation.Key(r))
	assert.Equal(t, "2000", ModeYear.Key(r))
	assert.True(t, ModeYear.Predicate("2000")(r))
	assert.True(t, ModeLocation.Predicate("AUS")(r))
	assert.False(t, Mode("region").Valid())
}
