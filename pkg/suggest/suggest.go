// Package suggest examines a dataframe's structure and proposes which
// chart sections apply to which columns.
package suggest

import "github.com/nbforge/quickchart/pkg/core"

// Caps keep auto-generated sections readable for wide datasets.
const (
	// MaxCategories is the highest cardinality a column may have and
	// still count as categorical.
	MaxCategories = 20

	// MaxPairs bounds pair-wise sections.
	MaxPairs = 6
)

// Plan names the column selectors proposed for each section family.
type Plan struct {
	Numeric     []string
	Categorical []string

	ScatterPairs [][2]string // numeric x numeric
	HeatmapPairs [][2]string // categorical x categorical
	SwarmPairs   [][2]string // numeric value x categorical facet
}

// HasCharts reports whether the plan proposes anything at all.
func (p Plan) HasCharts() bool {
	return len(p.Numeric) > 0 || len(p.Categorical) > 0 ||
		len(p.ScatterPairs) > 0 || len(p.HeatmapPairs) > 0 || len(p.SwarmPairs) > 0
}

// Suggest classifies df's columns and derives selectors: numeric
// columns feed distributions and value plots, low-cardinality columns
// feed categorical sections, and cross products feed the pair-wise
// sections. Column order follows the dataframe.
func Suggest(df core.Dataframe) Plan {
	var plan Plan

	for _, name := range df.Columns() {
		col, _ := df.Column(name)
		switch col.Kind {
		case core.KindNumber:
			plan.Numeric = append(plan.Numeric, name)
		case core.KindString:
			if cardinality(col.Strings) <= MaxCategories {
				plan.Categorical = append(plan.Categorical, name)
			}
		}
	}

	plan.ScatterPairs = combinations(plan.Numeric)
	plan.HeatmapPairs = combinations(plan.Categorical)
	plan.SwarmPairs = crossPairs(plan.Numeric, plan.Categorical)
	return plan
}

func cardinality(vals []string) int {
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// combinations yields unordered pairs drawn from one column set,
// capped at MaxPairs.
func combinations(cols []string) [][2]string {
	var out [][2]string
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			out = append(out, [2]string{cols[i], cols[j]})
			if len(out) == MaxPairs {
				return out
			}
		}
	}
	return out
}

// crossPairs yields ordered (x, y) pairs across two column sets,
// capped at MaxPairs.
func crossPairs(xs, ys []string) [][2]string {
	var out [][2]string
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, [2]string{x, y})
			if len(out) == MaxPairs {
				return out
			}
		}
	}
	return out
}
