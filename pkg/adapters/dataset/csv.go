package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/nbforge/quickchart/pkg/core"
)

// LoadCSV reads a comma-separated file whose first row is the header.
func LoadCSV(path string) (core.Dataframe, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Dataframe{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return core.Dataframe{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return core.Dataframe{}, fmt.Errorf("dataset %s is empty", path)
	}

	return buildFrame(records[0], records[1:])
}
