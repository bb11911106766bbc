package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbforge/quickchart/pkg/adapters/dataset"
	"github.com/nbforge/quickchart/pkg/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <dataset>",
	Short: "Show which chart sections apply to a dataset's columns",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		df, err := dataset.Load(args[0])
		if err != nil {
			fatal("Error loading dataset", err)
		}

		plan := suggest.Suggest(df)
		if !plan.HasCharts() {
			fmt.Println("no plottable columns found")
			return
		}

		if len(plan.Numeric) > 0 {
			fmt.Printf("distributions, values: %v\n", plan.Numeric)
		}
		if len(plan.Categorical) > 0 {
			fmt.Printf("categorical distributions: %v\n", plan.Categorical)
		}
		if len(plan.HeatmapPairs) > 0 {
			fmt.Printf("heatmaps: %v\n", plan.HeatmapPairs)
		}
		if len(plan.ScatterPairs) > 0 {
			fmt.Printf("2-d distributions: %v\n", plan.ScatterPairs)
		}
		if len(plan.SwarmPairs) > 0 {
			fmt.Printf("swarm plots: %v\n", plan.SwarmPairs)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
