package section

import (
	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/plotlib"
	"github.com/nbforge/quickchart/pkg/registry"
)

// Section titles, one per chart family.
const (
	TitleDistributions = "Distributions"
	TitleValues        = "Values"
	TitleCategorical   = "Categorical distributions"
	TitleHeatmaps      = "Heatmaps"
	TitleLinkedScatter = "2-d distributions"
	TitleSwarmPlots    = "Swarm plots"
)

// Build constructs one ChartWithCode per argument tuple, in the given
// order, and wraps them in a ChartSection carrying title. Duplicate
// argument tuples produce duplicate charts with distinct identifiers.
// A failure in any chart's render aborts the whole build; no partial
// section is returned.
func Build(df core.Dataframe, plotter *core.Plotter, argsPerChart []any, kwargs map[string]any, reg *registry.DataframeRegistry, title string) (*ChartSection, error) {
	charts := make([]*ChartWithCode, 0, len(argsPerChart))
	for _, args := range argsPerChart {
		c, err := NewChartWithCode(df, plotter, AtLeast1D(args), kwargs, reg)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return NewChartSection(title, charts), nil
}

// Histograms generates a "Distributions" section with one histogram per
// column name.
func Histograms(df core.Dataframe, colnames []string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	return Build(df, plotlib.HistogramPlotter(), colnameArgs(colnames), nil, reg, TitleDistributions)
}

// ValuePlots generates a "Values" section with one value-over-index
// plot per column name.
func ValuePlots(df core.Dataframe, colnames []string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	return Build(df, plotlib.ValuePlotPlotter(), colnameArgs(colnames), nil, reg, TitleValues)
}

// CategoricalHistograms generates a "Categorical distributions" section
// with one count plot per column name.
func CategoricalHistograms(df core.Dataframe, colnames []string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	return Build(df, plotlib.CategoricalHistogramPlotter(), colnameArgs(colnames), nil, reg, TitleCategorical)
}

// Heatmaps generates a "Heatmaps" section with one 2-d count grid per
// (x, y) column pair.
func Heatmaps(df core.Dataframe, colnamePairs [][2]string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	return Build(df, plotlib.HeatmapPlotter(), pairArgs(colnamePairs), nil, reg, TitleHeatmaps)
}

// LinkedScatter generates a "2-d distributions" section. Unlike the
// other builders it packages all column pairs as one combined argument,
// because the underlying plot renders every pair together in a single
// chart.
func LinkedScatter(df core.Dataframe, colnamePairs [][2]string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	// One chart whose single argument is the whole pair list.
	combined := []any{[]any{pairArgs(colnamePairs)}}
	return Build(df, plotlib.LinkedScatterPlotter(), combined, nil, reg, TitleLinkedScatter)
}

// SwarmPlots generates a "Swarm plots" section with one plot per
// (value, facet) column pair.
func SwarmPlots(df core.Dataframe, colnamePairs [][2]string, reg *registry.DataframeRegistry) (*ChartSection, error) {
	return Build(df, plotlib.SwarmPlotter(), pairArgs(colnamePairs), nil, reg, TitleSwarmPlots)
}

func colnameArgs(colnames []string) []any {
	out := make([]any, len(colnames))
	for i, name := range colnames {
		out[i] = name
	}
	return out
}

func pairArgs(pairs [][2]string) []any {
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = []any{p[0], p[1]}
	}
	return out
}
