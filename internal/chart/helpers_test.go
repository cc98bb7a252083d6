package chart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"popchart/internal/dataset"
)

func sampleRows() []dataset.Row {
	return []dataset.Row{
		{Location: "AUS", Time: 2000, PopMlns: 19.15, FertilityRate: 1.76, LifeExpectancy: 79.2},
		{Location: "AUS", Time: 2001, PopMlns: 19.4, FertilityRate: 1.74, LifeExpectancy: 79.6},
		{Location: "AUS", Time: 2002, PopMlns: 19.6, FertilityRate: 1.75, LifeExpectancy: 80.0},
		{Location: "NZL", Time: 2000, PopMlns: 3.86, FertilityRate: 1.98, LifeExpectancy: 78.6},
		{Location: "NZL", Time: 2001, PopMlns: 3.88, FertilityRate: 1.96, LifeExpectancy: 78.8},
		{Location: "BRA", Time: 2000, PopMlns: 174.5, FertilityRate: 2.36, LifeExpectancy: 70.1},
	}
}

func preset(t *testing.T, name string) Variant {
	t.Helper()
	v, err := Presets().Get(name)
	require.NoError(t, err)
	return v
}
