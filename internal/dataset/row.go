package dataset

import (
	"math"
	"strings"
)

// Row is one parsed record of the population dataset.
type Row struct {
	Location       string
	Time           int
	PopMlns        float64
	FertilityRate  float64
	LifeExpectancy float64
}

// Field names a numeric column of Row.
type Field string

const (
	FieldTime           Field = "time"
	FieldPopMlns        Field = "pop_mlns"
	FieldFertilityRate  Field = "fertility_rate"
	FieldLifeExpectancy Field = "life_expectancy"
)

// Fields lists the numeric columns in header order.
var Fields = []Field{FieldTime, FieldPopMlns, FieldFertilityRate, FieldLifeExpectancy}

// ParseField resolves a column name (case-insensitive).
func ParseField(s string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Value returns the field of r as a float. Unknown fields yield NaN.
func (f Field) Value(r Row) float64 {
	switch f {
	case FieldTime:
		return float64(r.Time)
	case FieldPopMlns:
		return r.PopMlns
	case FieldFertilityRate:
		return r.FertilityRate
	case FieldLifeExpectancy:
		return r.LifeExpectancy
	}
	return math.NaN()
}

// Values projects rows onto f, preserving order.
func (f Field) Values(rows []Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = f.Value(r)
	}
	return out
}
