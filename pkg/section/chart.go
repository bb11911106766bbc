package section

import (
	"bytes"
	"fmt"
	"html"
	"path"

	"github.com/google/uuid"

	"github.com/nbforge/quickchart/pkg/codegen"
	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/registry"
)

// Import paths baked into reconstructed snippets.
const (
	registryImportPath = "github.com/nbforge/quickchart"
	coreImportPath     = "github.com/nbforge/quickchart/pkg/core"
)

// ChartWithCode wraps one rendered chart together with the provenance
// needed to regenerate the source that created it: the plotter, the
// call arguments and the registered dataframe name. It is immutable
// after construction.
type ChartWithCode struct {
	df      core.Dataframe
	dfName  string
	plotter *core.Plotter
	args    []any
	kwargs  map[string]any

	id    string
	chart core.Chart
}

// NewChartWithCode registers df, generates a fresh chart identifier and
// eagerly invokes the plotter. A plot failure propagates as a
// construction failure; there is no partially-constructed chart.
func NewChartWithCode(df core.Dataframe, plotter *core.Plotter, args []any, kwargs map[string]any, reg *registry.DataframeRegistry) (*ChartWithCode, error) {
	if plotter == nil || plotter.Func == nil {
		return nil, fmt.Errorf("plotter is nil")
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	args = AtLeast1D(args)

	c := &ChartWithCode{
		df:      df,
		dfName:  reg.Register(df),
		plotter: plotter,
		args:    args,
		kwargs:  kwargs,
		id:      "chart-" + uuid.NewString(),
	}

	chart, err := plotter.Func(df, args, kwargs)
	if err != nil {
		return nil, fmt.Errorf("plot %s failed: %w", plotter.Name, err)
	}
	c.chart = chart
	return c, nil
}

// ID returns the chart's unique token. Identifiers are never reused and
// never derived from content; two structurally identical charts still
// get distinct identifiers.
func (c *ChartWithCode) ID() string {
	return c.id
}

// DataframeName returns the registered name of the source dataframe.
func (c *ChartWithCode) DataframeName() string {
	return c.dfName
}

// Chart returns the eagerly rendered chart object.
func (c *ChartWithCode) Chart() core.Chart {
	return c.chart
}

// Args returns the stored positional arguments.
func (c *ChartWithCode) Args() []any {
	out := make([]any, len(c.args))
	copy(out, c.args)
	return out
}

// Display emits the chart's renderable view to the host surface.
func (c *ChartWithCode) Display(d core.Displayer) error {
	return d.Display(c)
}

// Code reconstructs a self-contained snippet that reproduces the chart:
// imports, a registry lookup rehydrating the dataframe by name, the
// plot function's literal source, and a final invocation yielding the
// chart. Reconstruction is pure and stable.
func (c *ChartWithCode) Code() (string, error) {
	if c.plotter.Source == "" {
		return "", fmt.Errorf("%w: %s", core.ErrNoSource, c.plotter.Name)
	}

	imports := []string{registryImportPath, coreImportPath}
	funcName := c.plotter.Name
	if c.plotter.ImportPath != "" && c.plotter.ImportPath != coreImportPath {
		imports = append(imports, c.plotter.ImportPath)
		// Qualified call: the snippet resolves through its import,
		// the included source is the editable reference copy.
		funcName = path.Base(c.plotter.ImportPath) + "." + c.plotter.Name
	}

	return codegen.Build(codegen.Spec{
		Imports:       imports,
		DataframeName: c.dfName,
		FuncName:      funcName,
		FuncSource:    c.plotter.Source,
		Args:          c.args,
		Kwargs:        c.kwargs,
	}), nil
}

// HTML renders the chart wrapped in a container tagged with its
// identifier plus the client-side handler: a click asks the host bridge
// for this chart's code and inserts the payload as a new cell. The
// round trip is fire-and-forget; a failed request is a host concern.
func (c *ChartWithCode) HTML() (string, error) {
	var svg bytes.Buffer
	if err := c.chart.SVG(&svg); err != nil {
		return "", fmt.Errorf("failed to render chart %s: %w", c.id, err)
	}

	return fmt.Sprintf(chartMarkup, c.id, svg.String(), html.EscapeString(c.id)), nil
}

// String yields the same text as Code, so printing or logging a chart
// shows its reconstructable source.
func (c *ChartWithCode) String() string {
	code, err := c.Code()
	if err != nil {
		return fmt.Sprintf("ChartWithCode(%s): %v", c.id, err)
	}
	return code
}

const chartMarkup = `<div class="quickchart-chart-with-code" id="%s">
%s
</div>
<script type="text/javascript">
  (() => {
    const chartElement = document.getElementById("%s");
    async function getCodeForChartHandler(event) {
      const response = await quickchart.host.invokeFunction(
          'getCodeForChart', [chartElement.id], {});
      const payload = response.data['application/json'];
      await quickchart.host.addCell(payload.code, 'code');
    }
    chartElement.onclick = getCodeForChartHandler;
  })();
</script>
<style>
  .quickchart-chart-with-code {
      display: block;
      float: left;
      border: 1px solid transparent;
  }

  .quickchart-chart-with-code:hover {
      cursor: pointer;
      border: 1px solid #aaa;
  }
</style>`

var _ core.Displayable = (*ChartWithCode)(nil)
