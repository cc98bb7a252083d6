package chart

import "errors"

var (
	// ErrEmptySelection marks a selected key whose series has no rows. The
	// chart still redraws (empty) and the error is kept in LastErr.
	ErrEmptySelection = errors.New("empty selection")
	// ErrUnknownKey is returned by Select for a key not in the key list.
	ErrUnknownKey = errors.New("unknown key")
)
