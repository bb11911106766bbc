package core

import "testing"

func sampleFrame() Dataframe {
	return NewDataframe(
		NumberColumn("x", []float64{1, 2, 3}),
		NumberColumn("y", []float64{4, 5, 6}),
	)
}

func TestFingerprint_ValueEquality(t *testing.T) {
	a := sampleFrame()
	// Distinct object, identical values.
	b := NewDataframe(
		NumberColumn("x", []float64{1, 2, 3}),
		NumberColumn("y", []float64{4, 5, 6}),
	)

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("value-equal frames produced different fingerprints")
	}
}

func TestFingerprint_Distinguishes(t *testing.T) {
	base := sampleFrame()
	tests := []struct {
		name  string
		other Dataframe
	}{
		{
			name: "different cell value",
			other: NewDataframe(
				NumberColumn("x", []float64{1, 2, 3}),
				NumberColumn("y", []float64{4, 5, 7}),
			),
		},
		{
			name: "different column name",
			other: NewDataframe(
				NumberColumn("x", []float64{1, 2, 3}),
				NumberColumn("z", []float64{4, 5, 6}),
			),
		},
		{
			name: "different column order",
			other: NewDataframe(
				NumberColumn("y", []float64{4, 5, 6}),
				NumberColumn("x", []float64{1, 2, 3}),
			),
		},
		{
			name: "different kind",
			other: NewDataframe(
				NumberColumn("x", []float64{1, 2, 3}),
				StringColumn("y", []string{"4", "5", "6"}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if base.Fingerprint() == tt.other.Fingerprint() {
				t.Errorf("expected distinct fingerprints")
			}
		})
	}
}

func TestFingerprint_Stable(t *testing.T) {
	df := sampleFrame()
	if df.Fingerprint() != df.Fingerprint() {
		t.Errorf("fingerprint not stable across calls")
	}
	if df.Fingerprint().Short() != df.Fingerprint().Short() {
		t.Errorf("short form not stable across calls")
	}
}

func TestDataframe_Shape(t *testing.T) {
	df := NewDataframe(
		NumberColumn("a", []float64{1, 2}),
		StringColumn("b", []string{"p", "q", "r"}),
	)

	if got := df.NumCols(); got != 2 {
		t.Errorf("NumCols = %d, want 2", got)
	}
	if got := df.NumRows(); got != 3 {
		t.Errorf("NumRows = %d, want 3", got)
	}
	cols := df.Columns()
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Errorf("Columns = %v, want [a b]", cols)
	}
	if _, ok := df.Column("missing"); ok {
		t.Errorf("Column(missing) should not resolve")
	}
}
