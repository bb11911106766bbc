package plotlib

import (
	"fmt"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/nbforge/quickchart/pkg/core"
)

// Histogram renders the distribution of a numeric column as binned
// counts. args: [colname]. kwargs: "bins" (default 10), "width",
// "height".
func Histogram(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	colname, err := argString(args, 0)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	vals, err := numberColumn(df, colname)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("histogram: column %q is empty", colname)
	}

	bins := kwargInt(kwargs, "bins", 10)
	if bins <= 0 {
		return nil, fmt.Errorf("histogram: bins must be positive, got %d", bins)
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	centers := make([]float64, bins)
	counts := make([]float64, bins)
	for i := range centers {
		centers[i] = lo + width*(float64(i)+0.5)
	}
	for _, v := range vals {
		idx := bins - 1
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	tab := table.NewBuilder(nil).Add(colname, centers).Add("count", counts).Done()
	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{X: colname, Upper: "count"})
	return newChart(plot, kwargs), nil
}

// ValuePlot renders a numeric column's values in row order.
// args: [colname].
func ValuePlot(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	colname, err := argString(args, 0)
	if err != nil {
		return nil, fmt.Errorf("value plot: %w", err)
	}
	vals, err := numberColumn(df, colname)
	if err != nil {
		return nil, fmt.Errorf("value plot: %w", err)
	}

	index := make([]float64, len(vals))
	for i := range index {
		index[i] = float64(i)
	}

	tab := table.NewBuilder(nil).Add("index", index).Add(colname, vals).Done()
	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerLines{X: "index", Y: colname})
	return newChart(plot, kwargs), nil
}

// CategoricalHistogram renders per-category counts for a column,
// categories in first-seen order. args: [colname].
func CategoricalHistogram(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	colname, err := argString(args, 0)
	if err != nil {
		return nil, fmt.Errorf("categorical histogram: %w", err)
	}
	values, err := cells(df, colname)
	if err != nil {
		return nil, fmt.Errorf("categorical histogram: %w", err)
	}

	var categories []string
	counts := make(map[string]float64)
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			categories = append(categories, v)
		}
		counts[v]++
	}
	tally := make([]float64, len(categories))
	for i, c := range categories {
		tally[i] = counts[c]
	}

	tab := table.NewBuilder(nil).Add(colname, categories).Add("count", tally).Done()
	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerPoints{X: colname, Y: "count"})
	return newChart(plot, kwargs), nil
}

// Heatmap renders joint counts of two columns as a 2-d grid.
// args: [xcol, ycol]. kwargs: "bins" per numeric axis (default 8).
func Heatmap(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	xcol, err := argString(args, 0)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	ycol, err := argString(args, 1)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}

	bins := kwargInt(kwargs, "bins", 8)
	if bins <= 0 {
		return nil, fmt.Errorf("heatmap: bins must be positive, got %d", bins)
	}
	xs, err := axisCells(df, xcol, bins)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	ys, err := axisCells(df, ycol, bins)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	n := min(len(xs), len(ys))

	type cell struct{ x, y string }
	counts := make(map[cell]float64)
	var order []cell
	for i := 0; i < n; i++ {
		c := cell{xs[i], ys[i]}
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	gridX := make([]string, len(order))
	gridY := make([]string, len(order))
	gridN := make([]float64, len(order))
	for i, c := range order {
		gridX[i] = c.x
		gridY[i] = c.y
		gridN[i] = counts[c]
	}

	tab := table.NewBuilder(nil).Add(xcol, gridX).Add(ycol, gridY).Add("count", gridN).Done()
	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerTiles{X: xcol, Y: ycol, Fill: "count"})
	return newChart(plot, kwargs), nil
}

// LinkedScatterPlots renders every (x, y) column pair as scatter panels
// of a single chart. args: [pairs] where pairs is a sequence of
// two-element column-name sequences.
func LinkedScatterPlots(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("linked scatter: missing pair list")
	}
	pairs, ok := args[0].([]any)
	if !ok {
		return nil, fmt.Errorf("linked scatter: want pair list, got %T", args[0])
	}

	var xs, ys []float64
	var labels []string
	for _, raw := range pairs {
		pair, ok := raw.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("linked scatter: malformed pair %v", raw)
		}
		xcol, ok1 := pair[0].(string)
		ycol, ok2 := pair[1].(string)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("linked scatter: pair %v is not column names", raw)
		}
		xv, err := numberColumn(df, xcol)
		if err != nil {
			return nil, fmt.Errorf("linked scatter: %w", err)
		}
		yv, err := numberColumn(df, ycol)
		if err != nil {
			return nil, fmt.Errorf("linked scatter: %w", err)
		}
		label := xcol + " vs " + ycol
		for i := 0; i < min(len(xv), len(yv)); i++ {
			xs = append(xs, xv[i])
			ys = append(ys, yv[i])
			labels = append(labels, label)
		}
	}

	tab := table.NewBuilder(nil).Add("x", xs).Add("y", ys).Add("pair", labels).Done()
	plot := gg.NewPlot(tab)
	plot.Add(gg.FacetX{Col: "pair"})
	plot.Add(gg.LayerPoints{X: "x", Y: "y"})
	return newChart(plot, kwargs), nil
}

// SwarmPlot renders a numeric column's values grouped by a facet
// column, with a mean marker per facet. args: [valueCol, facetCol].
func SwarmPlot(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
	valueCol, err := argString(args, 0)
	if err != nil {
		return nil, fmt.Errorf("swarm plot: %w", err)
	}
	facetCol, err := argString(args, 1)
	if err != nil {
		return nil, fmt.Errorf("swarm plot: %w", err)
	}
	vals, err := numberColumn(df, valueCol)
	if err != nil {
		return nil, fmt.Errorf("swarm plot: %w", err)
	}
	facets, err := cells(df, facetCol)
	if err != nil {
		return nil, fmt.Errorf("swarm plot: %w", err)
	}
	n := min(len(vals), len(facets))

	byFacet := make(map[string][]float64)
	for i := 0; i < n; i++ {
		byFacet[facets[i]] = append(byFacet[facets[i]], vals[i])
	}
	means := make([]float64, n)
	for i := 0; i < n; i++ {
		means[i] = stats.Mean(byFacet[facets[i]])
	}

	tab := table.NewBuilder(nil).Add(facetCol, facets[:n]).Add(valueCol, vals[:n]).Add("facet mean", means).Done()
	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerPoints{X: facetCol, Y: valueCol})
	plot.Add(gg.LayerPoints{X: facetCol, Y: "facet mean"})
	return newChart(plot, kwargs), nil
}

// axisCells discretizes a column for grid axes: string columns pass
// through, numeric columns collapse into bin labels.
func axisCells(df core.Dataframe, name string, bins int) ([]string, error) {
	col, ok := df.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if col.Kind == core.KindString {
		return col.Strings, nil
	}
	vals := col.Floats
	if len(vals) == 0 {
		return nil, nil
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	out := make([]string, len(vals))
	for i, v := range vals {
		idx := 0
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		out[i] = fmt.Sprintf("%g", lo+width*(float64(idx)+0.5))
	}
	return out, nil
}
