// Package plotlib provides the built-in plotting primitives: pure
// functions mapping (dataframe, args, kwargs) to a renderable chart.
//
// Each primitive is also exposed as a *core.Plotter whose literal
// source text is extracted from this package's own embedded source at
// first use, so reconstructed snippets can carry the function body.
package plotlib

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/aclements/go-gg/gg"

	"github.com/nbforge/quickchart/pkg/codegen"
	"github.com/nbforge/quickchart/pkg/core"
)

// ImportPath is the namespace handle reconstructed snippets import.
const ImportPath = "github.com/nbforge/quickchart/pkg/plotlib"

// Default chart dimensions in pixels. Overridable per call with the
// "width" and "height" keyword arguments.
const (
	DefaultWidth  = 400
	DefaultHeight = 280
)

//go:embed plotters.go
var plottersSrc []byte

var (
	plottersOnce sync.Once
	plotters     map[string]*core.Plotter
)

func initPlotters() {
	funcs := map[string]core.PlotFunc{
		"Histogram":            Histogram,
		"ValuePlot":            ValuePlot,
		"CategoricalHistogram": CategoricalHistogram,
		"Heatmap":              Heatmap,
		"LinkedScatterPlots":   LinkedScatterPlots,
		"SwarmPlot":            SwarmPlot,
	}
	plotters = make(map[string]*core.Plotter, len(funcs))
	for name, fn := range funcs {
		// A failed extraction leaves Source empty; code
		// reconstruction for that plotter reports ErrNoSource.
		src, _ := codegen.ExtractFuncSource(plottersSrc, name)
		plotters[name] = &core.Plotter{
			Name:       name,
			ImportPath: ImportPath,
			Source:     src,
			Func:       fn,
		}
	}
}

func plotter(name string) *core.Plotter {
	plottersOnce.Do(initPlotters)
	return plotters[name]
}

// HistogramPlotter returns the Histogram primitive with provenance.
func HistogramPlotter() *core.Plotter { return plotter("Histogram") }

// ValuePlotPlotter returns the ValuePlot primitive with provenance.
func ValuePlotPlotter() *core.Plotter { return plotter("ValuePlot") }

// CategoricalHistogramPlotter returns the CategoricalHistogram
// primitive with provenance.
func CategoricalHistogramPlotter() *core.Plotter { return plotter("CategoricalHistogram") }

// HeatmapPlotter returns the Heatmap primitive with provenance.
func HeatmapPlotter() *core.Plotter { return plotter("Heatmap") }

// LinkedScatterPlotter returns the LinkedScatterPlots primitive with
// provenance.
func LinkedScatterPlotter() *core.Plotter { return plotter("LinkedScatterPlots") }

// SwarmPlotter returns the SwarmPlot primitive with provenance.
func SwarmPlotter() *core.Plotter { return plotter("SwarmPlot") }

// chart adapts a gg.Plot to core.Chart.
type chart struct {
	plot   *gg.Plot
	width  int
	height int
}

func (c *chart) SVG(w io.Writer) error {
	return c.plot.WriteSVG(w, c.width, c.height)
}

func newChart(plot *gg.Plot, kwargs map[string]any) core.Chart {
	return &chart{
		plot:   plot,
		width:  kwargInt(kwargs, "width", DefaultWidth),
		height: kwargInt(kwargs, "height", DefaultHeight),
	}
}

// --- argument helpers shared by the primitives ---

func argString(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: want column name string, got %T", i, args[i])
	}
	return s, nil
}

func kwargInt(kwargs map[string]any, key string, def int) int {
	v, ok := kwargs[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return def
}

func numberColumn(df core.Dataframe, name string) ([]float64, error) {
	col, ok := df.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if col.Kind != core.KindNumber {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return col.Floats, nil
}

// cells returns a column's values as display strings, for categorical
// axes that accept either column kind.
func cells(df core.Dataframe, name string) ([]string, error) {
	col, ok := df.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if col.Kind == core.KindString {
		return col.Strings, nil
	}
	out := make([]string, len(col.Floats))
	for i, v := range col.Floats {
		out[i] = fmt.Sprintf("%g", v)
	}
	return out, nil
}
