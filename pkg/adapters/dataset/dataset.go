// Package dataset loads tabular files into dataframes. CSV and Excel
// workbooks are supported; column types are sniffed from the cell
// values (a column where every non-empty cell parses as a number
// becomes numeric, everything else stays string).
package dataset

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nbforge/quickchart/pkg/core"
)

// Load reads a dataset file, dispatching on its extension
// (.csv, .xlsx, .xlsm).
func Load(path string) (core.Dataframe, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadExcel(path, "")
	}
	return core.Dataframe{}, fmt.Errorf("unsupported dataset format: %s", path)
}

// buildFrame turns a header row plus data rows into a typed dataframe.
func buildFrame(header []string, rows [][]string) (core.Dataframe, error) {
	if len(header) == 0 {
		return core.Dataframe{}, fmt.Errorf("dataset has no header row")
	}

	cols := make([]core.Column, 0, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		raw := make([]string, len(rows))
		numeric := true
		for r, row := range rows {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			raw[r] = cell
			if numeric && cell != "" {
				if _, err := strconv.ParseFloat(cell, 64); err != nil {
					numeric = false
				}
			}
		}

		if numeric && len(raw) > 0 {
			vals := make([]float64, len(raw))
			for r, cell := range raw {
				if cell == "" {
					continue
				}
				vals[r], _ = strconv.ParseFloat(cell, 64)
			}
			cols = append(cols, core.NumberColumn(name, vals))
		} else {
			cols = append(cols, core.StringColumn(name, raw))
		}
	}

	return core.NewDataframe(cols...), nil
}
