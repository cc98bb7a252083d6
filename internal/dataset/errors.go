package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad marks a dataset that could not be loaded at all.
	ErrDataLoad = errors.New("data load failed")
	// ErrMalformedRow marks a single record with an unparsable field.
	ErrMalformedRow = errors.New("malformed row")
)

// RowError describes one malformed record. Line is 1-based and counts the header.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return ErrMalformedRow }
