package integration

import (
	"bytes"
	"os"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbforge/quickchart"
	"github.com/nbforge/quickchart/pkg/adapters/html"
	"github.com/nbforge/quickchart/pkg/core"
)

func testFrame() quickchart.Dataframe {
	return quickchart.NewDataframe(
		quickchart.NumberColumn("height", []float64{1.62, 1.75, 1.81, 1.69, 1.55}),
		quickchart.NumberColumn("weight", []float64{61, 78, 84, 70, 52}),
		quickchart.StringColumn("team", []string{"red", "blue", "red", "blue", "red"}),
	)
}

// TestReportFlow walks the full flow: register a dataframe by building
// sections, render them to HTML, then reconstruct code for one chart
// through the host bridge.
func TestReportFlow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	qc := quickchart.New(quickchart.WithLogger(logger))
	df := testFrame()

	// 1. Build sections for every chart family.
	dists, err := qc.Histograms(df, []string{"height", "weight"})
	require.NoError(t, err)
	require.Len(t, dists.Charts(), 2)

	values, err := qc.ValuePlots(df, []string{"height"})
	require.NoError(t, err)
	cats, err := qc.CategoricalHistograms(df, []string{"team"})
	require.NoError(t, err)
	heat, err := qc.Heatmaps(df, [][2]string{{"height", "weight"}})
	require.NoError(t, err)
	scatter, err := qc.LinkedScatter(df, [][2]string{{"height", "weight"}})
	require.NoError(t, err)
	swarm, err := qc.SwarmPlots(df, [][2]string{{"height", "team"}})
	require.NoError(t, err)

	assert.Equal(t, 7, qc.ChartCount())

	// 2. Every chart resolved the same dataframe registration.
	name := dists.Charts()[0].DataframeName()
	for _, sec := range []*quickchart.ChartSection{dists, values, cats, heat, scatter, swarm} {
		for _, c := range sec.Charts() {
			assert.Equal(t, name, c.DataframeName())
		}
	}

	// 3. The registered dataframe round-trips by name.
	got, err := qc.RegisteredDataframe(name)
	require.NoError(t, err)
	assert.Equal(t, df.Fingerprint(), got.Fingerprint())

	// 4. Render a page with all sections.
	page := html.NewPage("Integration report")
	for _, sec := range []*quickchart.ChartSection{dists, values, cats, heat, scatter, swarm} {
		page.Add(sec)
	}
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Integration report")
	assert.Contains(t, out, "Distributions")
	assert.Contains(t, out, dists.Charts()[0].ID())

	// 5. Reconstruct code through the host bridge.
	payload, err := qc.CodeForChart(dists.Charts()[0].ID())
	require.NoError(t, err)
	assert.Equal(t, dists.Charts()[0].ID(), payload.ChartID)
	assert.Contains(t, payload.Code, "quickchart.MustRegisteredDataframe(\""+name+"\")")
	assert.Contains(t, payload.Code, "func Histogram(")
	assert.Contains(t, payload.Code, "plotlib.Histogram(")

	// 6. Unknown chart ids surface the sentinel.
	_, err = qc.CodeForChart("chart-does-not-exist")
	assert.ErrorIs(t, err, core.ErrUnknownChart)
}

// TestSharedRegistry checks that two sessions handed the same registry
// agree on dataframe names, so code produced in one resolves in the
// other.
func TestSharedRegistry(t *testing.T) {
	a := quickchart.New()
	b := quickchart.New(quickchart.WithRegistry(a.Registry()))
	df := testFrame()

	secA, err := a.Histograms(df, []string{"height"})
	require.NoError(t, err)
	secB, err := b.ValuePlots(df, []string{"weight"})
	require.NoError(t, err)

	assert.Equal(t, secA.Charts()[0].DataframeName(), secB.Charts()[0].DataframeName())

	_, err = b.RegisteredDataframe(secA.Charts()[0].DataframeName())
	assert.NoError(t, err)
}

// TestDefaultSessionFacade exercises the package-level convenience
// entry points backed by the shared default session.
func TestDefaultSessionFacade(t *testing.T) {
	df := testFrame()
	sec, err := quickchart.Default().Histograms(df, []string{"height"})
	require.NoError(t, err)

	name := sec.Charts()[0].DataframeName()
	got := quickchart.MustRegisteredDataframe(name)
	assert.Equal(t, df.Fingerprint(), got.Fingerprint())

	payload, err := quickchart.GetCodeForChart(sec.Charts()[0].ID())
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Code)

	_, err = quickchart.RegisteredDataframe("df_nope")
	assert.ErrorIs(t, err, core.ErrUnknownDataframe)

	assert.Panics(t, func() {
		quickchart.MustRegisteredDataframe("df_nope")
	})
}

// TestCodeIsStable regenerates code for the same chart repeatedly and
// requires byte-identical output each time.
func TestCodeIsStable(t *testing.T) {
	qc := quickchart.New()
	sec, err := qc.Heatmaps(testFrame(), [][2]string{{"height", "weight"}})
	require.NoError(t, err)
	id := sec.Charts()[0].ID()

	first, err := qc.CodeForChart(id)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := qc.CodeForChart(id)
		require.NoError(t, err)
		assert.Equal(t, first.Code, again.Code)
	}
}

// TestDisplayPipeline renders sections through a Displayer the way a
// notebook frontend would consume them.
func TestDisplayPipeline(t *testing.T) {
	qc := quickchart.New()
	sec, err := qc.CategoricalHistograms(testFrame(), []string{"team"})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer := &html.Renderer{W: &buf}
	require.NoError(t, sec.Display(renderer))

	out := buf.String()
	assert.Contains(t, out, "Categorical distributions")
	assert.Contains(t, out, "quickchart-chart-with-code")
	assert.Contains(t, out, "<svg")
}

func TestSessionStateIntrospection(t *testing.T) {
	qc := quickchart.New()
	_, err := qc.Histograms(testFrame(), []string{"height", "weight"})
	require.NoError(t, err)

	state := qc.State()
	require.NotNil(t, state)
	assert.Equal(t, "session", qc.ComponentType())
}

// Guard against accidental signature drift on the host bridge.
var _ core.CodeBridge = (*quickchart.Session)(nil)
