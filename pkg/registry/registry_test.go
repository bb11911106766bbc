package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/nbforge/quickchart/pkg/core"
)

func numFrame(vals ...float64) core.Dataframe {
	return core.NewDataframe(core.NumberColumn("x", vals))
}

func TestRegister_Idempotent(t *testing.T) {
	reg := New(nil)

	// Two distinct objects with identical underlying values.
	a := numFrame(1, 2, 3)
	b := numFrame(1, 2, 3)

	nameA := reg.Register(a)
	nameB := reg.Register(b)

	if nameA != nameB {
		t.Errorf("value-equal frames got different names: %q vs %q", nameA, nameB)
	}
	if !strings.HasPrefix(nameA, "df_") {
		t.Errorf("name %q should carry the df_ prefix", nameA)
	}
	if reg.Len() != 1 {
		t.Errorf("registry holds %d entries, want 1", reg.Len())
	}
}

func TestRegister_DistinctValues(t *testing.T) {
	reg := New(nil)

	nameA := reg.Register(numFrame(1, 2, 3))
	nameB := reg.Register(numFrame(1, 2, 4))

	if nameA == nameB {
		t.Errorf("frames with differing values share name %q", nameA)
	}
	if reg.Len() != 2 {
		t.Errorf("registry holds %d entries, want 2", reg.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	reg := New(nil)
	df := core.NewDataframe(
		core.NumberColumn("x", []float64{1, 2, 3}),
		core.StringColumn("s", []string{"a", "b", "c"}),
	)

	name := reg.Register(df)
	got, err := reg.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}
	if got.Fingerprint() != df.Fingerprint() {
		t.Errorf("resolved frame is not value-equal to the registered one")
	}
}

func TestResolve_Unknown(t *testing.T) {
	reg := New(nil)

	_, err := reg.Resolve("df_deadbeef")
	if err == nil {
		t.Fatal("Resolve on unknown name should fail")
	}
	if !errors.Is(err, core.ErrUnknownDataframe) {
		t.Errorf("error %v should wrap ErrUnknownDataframe", err)
	}
}

func TestState(t *testing.T) {
	reg := New(nil)
	reg.Register(numFrame(1))

	state, ok := reg.State().(RegistryState)
	if !ok {
		t.Fatalf("State() returned %T, want RegistryState", reg.State())
	}
	if state.Dataframes != 1 {
		t.Errorf("state reports %d dataframes, want 1", state.Dataframes)
	}
}
