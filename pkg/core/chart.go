package core

import "io"

// Chart is a rendered chart object produced by a plot function.
// The core only needs it to be renderable as markup.
type Chart interface {
	// SVG writes the chart's vector rendering to w.
	SVG(w io.Writer) error
}

// PlotFunc renders a chart from a dataframe plus per-chart positional
// arguments and shared keyword arguments. It must be pure: same inputs,
// same chart.
type PlotFunc func(df Dataframe, args []any, kwargs map[string]any) (Chart, error)

// Plotter bundles a plot function with the provenance needed to
// reconstruct a call to it as source text. Go cannot introspect a live
// function's source, so the literal text is supplied at registration
// time (see plotlib, which extracts it from its own embedded source).
type Plotter struct {
	// Name is the function's exported name, e.g. "Histogram".
	Name string

	// ImportPath is the package a reconstructed snippet must import
	// for the invocation to resolve.
	ImportPath string

	// Source is the function's literal source text. Empty means the
	// source was not registered and code reconstruction will fail
	// with ErrNoSource.
	Source string

	// Func renders the chart.
	Func PlotFunc
}
