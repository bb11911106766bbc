package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbforge/quickchart"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quickchart",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quickchart version %s\n", quickchart.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
