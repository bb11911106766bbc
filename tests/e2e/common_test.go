package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildQuickchartBinary builds the quickchart binary in the specified
// directory and returns its path.
func buildQuickchartBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "quickchart.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/quickchart")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build quickchart: %v\n%s", err, string(out))
	}
	return bin
}

// writeDataset drops a small CSV with numeric and categorical columns
// into dir and returns its path.
func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "measurements.csv")
	csv := "height,weight,team\n" +
		"1.62,61,red\n" +
		"1.75,78,blue\n" +
		"1.81,84,red\n" +
		"1.69,70,blue\n" +
		"1.55,52,red\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	return path
}
