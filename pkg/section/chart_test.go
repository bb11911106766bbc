package section

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/registry"
)

type stubChart struct {
	svg string
	err error
}

func (s stubChart) SVG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.svg)
	return err
}

func stubPlotter() *core.Plotter {
	return &core.Plotter{
		Name:       "StubPlot",
		ImportPath: "github.com/nbforge/quickchart/pkg/plotlib",
		Source:     "func StubPlot() {}",
		Func: func(df core.Dataframe, args []any, kwargs map[string]any) (core.Chart, error) {
			return stubChart{svg: "<svg/>"}, nil
		},
	}
}

func testFrame() core.Dataframe {
	return core.NewDataframe(
		core.NumberColumn("x", []float64{1, 2, 3}),
		core.NumberColumn("y", []float64{4, 5, 6}),
	)
}

func TestNewChartWithCode(t *testing.T) {
	reg := registry.New(nil)
	c, err := NewChartWithCode(testFrame(), stubPlotter(), []any{"x"}, nil, reg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	if !strings.HasPrefix(c.ID(), "chart-") {
		t.Errorf("identifier %q should carry the chart- prefix", c.ID())
	}
	if c.DataframeName() == "" {
		t.Error("dataframe was not registered")
	}
	if _, err := reg.Resolve(c.DataframeName()); err != nil {
		t.Errorf("registered name does not resolve: %v", err)
	}
	if got := c.Args(); len(got) != 1 || got[0] != "x" {
		t.Errorf("stored args = %v, want [x]", got)
	}
}

func TestNewChartWithCode_UniqueIDs(t *testing.T) {
	reg := registry.New(nil)

	// Identical arguments still get distinct identifiers.
	a, err := NewChartWithCode(testFrame(), stubPlotter(), []any{"x"}, nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewChartWithCode(testFrame(), stubPlotter(), []any{"x"}, nil, reg)
	if err != nil {
		t.Fatal(err)
	}

	if a.ID() == b.ID() {
		t.Errorf("two charts share identifier %q", a.ID())
	}
	if a.DataframeName() != b.DataframeName() {
		t.Errorf("same dataframe got two names: %q vs %q", a.DataframeName(), b.DataframeName())
	}
}

func TestNewChartWithCode_PlotFailure(t *testing.T) {
	reg := registry.New(nil)
	boom := errors.New("render exploded")
	p := stubPlotter()
	p.Func = func(core.Dataframe, []any, map[string]any) (core.Chart, error) {
		return nil, boom
	}

	if _, err := NewChartWithCode(testFrame(), p, []any{"x"}, nil, reg); !errors.Is(err, boom) {
		t.Errorf("plot failure should propagate, got %v", err)
	}
}

func TestCode(t *testing.T) {
	reg := registry.New(nil)
	c, err := NewChartWithCode(testFrame(), stubPlotter(), []any{"x"}, map[string]any{"bins": 5}, reg)
	if err != nil {
		t.Fatal(err)
	}

	code, err := c.Code()
	if err != nil {
		t.Fatalf("Code failed: %v", err)
	}

	for _, want := range []string{
		`"github.com/nbforge/quickchart"`,
		`"github.com/nbforge/quickchart/pkg/plotlib"`,
		fmt.Sprintf("%s := quickchart.MustRegisteredDataframe(%q)", c.DataframeName(), c.DataframeName()),
		"func StubPlot() {}",
		fmt.Sprintf(`chart, _ := plotlib.StubPlot(%s, []interface {}{"x"}, map[string]interface {}{"bins": 5})`, c.DataframeName()),
	} {
		if !strings.Contains(code, want) {
			t.Errorf("code missing %q:\n%s", want, code)
		}
	}

	// Stability: repeated calls yield identical text.
	again, err := c.Code()
	if err != nil {
		t.Fatal(err)
	}
	if code != again {
		t.Errorf("Code is not stable:\n%s\nvs\n%s", code, again)
	}

	// String mirrors Code.
	if c.String() != code {
		t.Errorf("String() differs from Code()")
	}
}

func TestCode_NoSource(t *testing.T) {
	reg := registry.New(nil)
	p := stubPlotter()
	p.Source = ""

	c, err := NewChartWithCode(testFrame(), p, []any{"x"}, nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Code(); !errors.Is(err, core.ErrNoSource) {
		t.Errorf("missing source should fail with ErrNoSource, got %v", err)
	}
}

func TestHTML(t *testing.T) {
	reg := registry.New(nil)
	c, err := NewChartWithCode(testFrame(), stubPlotter(), []any{"x"}, nil, reg)
	if err != nil {
		t.Fatal(err)
	}

	markup, err := c.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}

	for _, want := range []string{
		`id="` + c.ID() + `"`,
		"<svg/>",
		"getCodeForChart",
		"quickchart-chart-with-code",
		"addCell",
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestHTML_RenderFailure(t *testing.T) {
	reg := registry.New(nil)
	p := stubPlotter()
	p.Func = func(core.Dataframe, []any, map[string]any) (core.Chart, error) {
		return stubChart{err: errors.New("svg failed")}, nil
	}

	c, err := NewChartWithCode(testFrame(), p, []any{"x"}, nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.HTML(); err == nil {
		t.Error("SVG failure should surface from HTML")
	}
}
