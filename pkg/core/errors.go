package core

import "errors"

// Common errors.
var (
	// ErrUnknownDataframe is returned when a registry lookup names a
	// dataframe that was never registered. Reconstructed code replayed
	// against a fresh registry fails this way; that is an inherent
	// limitation of name-based resolution.
	ErrUnknownDataframe = errors.New("dataframe not registered")

	// ErrUnknownChart is returned when the host requests code for a
	// chart identifier that is not tracked, e.g. a stale click after a
	// session restart.
	ErrUnknownChart = errors.New("chart not found")

	// ErrNoSource is returned when code reconstruction needs the
	// source text of a plot function that was registered without one.
	ErrNoSource = errors.New("plotter has no registered source")

	// ErrEmptySelector is returned when a column selector matches no
	// column of the dataframe it is applied to.
	ErrEmptySelector = errors.New("selector matches no columns")
)
