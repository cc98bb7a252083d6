package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Policy decides what happens to a row whose float column does not parse.
type Policy int

const (
	// PolicyPoison keeps the row and stores NaN in the bad column.
	PolicyPoison Policy = iota
	// PolicySkip drops the row.
	PolicySkip
)

func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "poison"
}

// ParsePolicy accepts "poison" or "skip".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "poison":
		return PolicyPoison, nil
	case "skip":
		return PolicySkip, nil
	}
	return PolicyPoison, fmt.Errorf("unknown malformed-row policy %q", s)
}

// Table is the loaded dataset: the ordered rows plus every malformed record seen.
type Table struct {
	Path      string
	Rows      []Row
	Malformed []*RowError
}

// LoadCSV reads the dataset at path.
func LoadCSV(path string, policy Policy) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()
	t, err := ReadCSV(f, policy)
	if err != nil {
		return Table{}, err
	}
	t.Path = path
	return t, nil
}

// ReadCSV parses a dataset with columns location, time, pop_mlns,
// fertility_rate and life_expectancy in any order.
func ReadCSV(r io.Reader, policy Policy) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	if len(recs) == 0 {
		return Table{}, fmt.Errorf("%w: empty csv", ErrDataLoad)
	}
	idx, err := headerIndex(recs[0])
	if err != nil {
		return Table{}, err
	}

	var t Table
	for i, rec := range recs[1:] {
		line := i + 2
		row, rerrs, keep := parseRecord(rec, idx, line, policy)
		t.Malformed = append(t.Malformed, rerrs...)
		if keep {
			t.Rows = append(t.Rows, row)
		}
	}
	if len(t.Rows) == 0 {
		return t, fmt.Errorf("%w: no valid rows", ErrDataLoad)
	}
	return t, nil
}

const colLocation = "location"

type columns struct {
	location int
	fields   map[Field]int
}

func headerIndex(header []string) (columns, error) {
	c := columns{location: -1, fields: map[Field]int{}}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if name == colLocation {
			if c.location == -1 {
				c.location = i
			}
			continue
		}
		if f, ok := ParseField(name); ok {
			if _, dup := c.fields[f]; !dup {
				c.fields[f] = i
			}
		}
	}
	var missing []string
	if c.location == -1 {
		missing = append(missing, colLocation)
	}
	for _, f := range Fields {
		if _, ok := c.fields[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: missing columns: %s", ErrDataLoad, strings.Join(missing, ", "))
	}
	return c, nil
}

func parseRecord(rec []string, c columns, line int, policy Policy) (Row, []*RowError, bool) {
	cell := func(i int) (string, bool) {
		if i >= len(rec) {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}
	var row Row
	var errs []*RowError

	loc, ok := cell(c.location)
	if !ok {
		return Row{}, []*RowError{{Line: line, Column: colLocation, Err: errors.New("missing value")}}, false
	}
	row.Location = loc

	raw, ok := cell(c.fields[FieldTime])
	year, err := parseYear(raw)
	if !ok || err != nil {
		if err == nil {
			err = errors.New("missing value")
		}
		return Row{}, []*RowError{{Line: line, Column: string(FieldTime), Value: raw, Err: err}}, false
	}
	row.Time = year

	for _, f := range []Field{FieldPopMlns, FieldFertilityRate, FieldLifeExpectancy} {
		raw, ok := cell(c.fields[f])
		v, err := strconv.ParseFloat(raw, 64)
		if !ok || err != nil {
			if err == nil {
				err = errors.New("missing value")
			}
			errs = append(errs, &RowError{Line: line, Column: string(f), Value: raw, Err: err})
			v = math.NaN()
		}
		switch f {
		case FieldPopMlns:
			row.PopMlns = v
		case FieldFertilityRate:
			row.FertilityRate = v
		case FieldLifeExpectancy:
			row.LifeExpectancy = v
		}
	}
	if len(errs) > 0 && policy == PolicySkip {
		return Row{}, errs, false
	}
	return row, errs, true
}

var (
	errNotWholeYear = errors.New("not a whole year")
	errYearRange    = errors.New("year out of range")
)

// parseYear accepts integers and integral decimals such as "2000.0".
func parseYear(s string) (int, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errNotWholeYear
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errYearRange
	}
	return int(f), nil
}
