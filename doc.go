// Package quickchart is the composition root for the quickchart
// library.
//
// It connects the chart-building core (sections, provenance, code
// reconstruction) with the infrastructure adapters (dataset loaders,
// HTML rendering) behind a small facade.
//
// Philosophy:
//
// Quickchart turns a tabular dataset into grouped, auto-produced chart
// sections for an interactive notebook host, and keeps enough
// provenance on every chart that the host can ask, after the fact, for
// the exact source code that produced it and insert that code as a new
// runnable cell. Dataframes are registered by content fingerprint, so
// value-equal frames share one canonical name in reconstructed code.
//
// Features:
//
//   - **Content-addressed registry**: dataframes are named by a hash of
//     their raw values, idempotently, for stable references in code.
//   - **Charts with code**: every chart carries its plot function, call
//     arguments and dataframe name, and can rebuild its own source.
//   - **Section builders**: distributions, values, categorical
//     distributions, heatmaps, linked scatter and swarm plots, all
//     through one generic routine.
//   - **Host bridge**: a click on a displayed chart resolves, through
//     the session, to a structured code payload for cell insertion.
//   - **Adapters**: CSV/Excel ingestion, standalone HTML reports, and
//     a file watcher for live regeneration.
//
// Usage:
//
//	qc := quickchart.New(quickchart.WithLogger(logger))
//	sec, err := qc.Histograms(df, []string{"x", "y"})
//	// display sec, then later answer the host's click:
//	payload, err := qc.CodeForChart(chartID)
package quickchart
