package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nbforge/quickchart/pkg/core"
)

// LoadExcel reads one sheet of a workbook whose first row is the
// header. An empty sheet name selects the first sheet.
func LoadExcel(path, sheet string) (core.Dataframe, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return core.Dataframe{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return core.Dataframe{}, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return core.Dataframe{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return core.Dataframe{}, fmt.Errorf("sheet %q of %s is empty", sheet, path)
	}

	return buildFrame(rows[0], rows[1:])
}
