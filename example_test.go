package quickchart_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/nbforge/quickchart"
)

// Example_basic demonstrates building a chart section, then asking the
// session for the code behind one of its charts.
func Example_basic() {
	qc := quickchart.New()

	df := quickchart.NewDataframe(
		quickchart.NumberColumn("x", []float64{1, 2, 2, 3, 5, 8, 13}),
	)

	// Building a section registers the dataframe under a name derived
	// from its contents.
	sec, err := qc.Histograms(df, []string{"x"})
	if err != nil {
		log.Fatal(err)
	}

	chart := sec.Charts()[0]
	fmt.Printf("section: %s, charts: %d\n", sec.Title(), len(sec.Charts()))
	fmt.Printf("name has registry prefix: %v\n", strings.HasPrefix(chart.DataframeName(), "df_"))

	// The code payload carries everything needed to recreate the chart.
	payload, err := qc.CodeForChart(chart.ID())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("code calls plotter: %v\n", strings.Contains(payload.Code, "plotlib.Histogram("))
	// Output:
	// section: Distributions, charts: 1
	// name has registry prefix: true
	// code calls plotter: true
}

// Example_registry demonstrates deduplication: value-identical
// dataframes share one registration.
func Example_registry() {
	qc := quickchart.New()

	a := quickchart.NewDataframe(quickchart.NumberColumn("x", []float64{1, 2, 3}))
	b := quickchart.NewDataframe(quickchart.NumberColumn("x", []float64{1, 2, 3}))

	secA, err := qc.ValuePlots(a, []string{"x"})
	if err != nil {
		log.Fatal(err)
	}
	secB, err := qc.ValuePlots(b, []string{"x"})
	if err != nil {
		log.Fatal(err)
	}

	nameA := secA.Charts()[0].DataframeName()
	nameB := secB.Charts()[0].DataframeName()
	fmt.Printf("same name: %v\n", nameA == nameB)
	// Output:
	// same name: true
}
