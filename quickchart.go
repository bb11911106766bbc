package quickchart

import (
	"log/slog"
	"sync"

	"github.com/nbforge/quickchart/internal/platform"
	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/registry"
	"github.com/nbforge/quickchart/pkg/section"
	"github.com/nbforge/quickchart/pkg/session"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Dataframe is a public alias for the core dataframe type.
type Dataframe = core.Dataframe

// Column is a public alias for the core column type.
type Column = core.Column

// Chart is a public alias for the renderable chart contract.
type Chart = core.Chart

// Plotter is a public alias for a plot function with provenance.
type Plotter = core.Plotter

// CodePayload is a public alias for the host bridge response.
type CodePayload = core.CodePayload

// Session is a public alias for the session type.
type Session = session.Session

// ChartSection is a public alias for a titled chart group.
type ChartSection = section.ChartSection

// ChartWithCode is a public alias for a chart bundled with provenance.
type ChartWithCode = section.ChartWithCode

// NumberColumn builds a numeric column.
func NumberColumn(name string, vals []float64) Column {
	return core.NumberColumn(name, vals)
}

// StringColumn builds a string column.
func StringColumn(name string, vals []string) Column {
	return core.StringColumn(name, vals)
}

// NewDataframe builds a dataframe from columns, preserving order.
func NewDataframe(cols ...Column) Dataframe {
	return core.NewDataframe(cols...)
}

// --- Configuration ---

// Option defines a functional option for configuring a session.
type Option = platform.Option

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRegistry injects an existing dataframe registry.
func WithRegistry(reg *registry.DataframeRegistry) Option {
	return platform.WithRegistry(reg)
}

// WithChartsPerRow sets the row layout hint renderers read.
func WithChartsPerRow(n int) Option {
	return platform.WithChartsPerRow(n)
}

// --- Factory ---

// New creates a session with its own chart index and, unless one is
// injected, its own dataframe registry.
func New(opts ...Option) *Session {
	return platform.New(opts...)
}

// --- Process-wide session ---

// The default session is the stable handle reconstructed snippets
// resolve dataframes through. It is created once per process and lives
// until process end.
var (
	defaultOnce    sync.Once
	defaultSession *Session
)

// Default returns the process-wide session, creating it on first use.
func Default() *Session {
	defaultOnce.Do(func() {
		defaultSession = New()
	})
	return defaultSession
}

// RegisteredDataframe resolves a dataframe by registered name through
// the process-wide session. Reconstructed snippets call this at
// re-execution time; a name never registered in this process fails
// with core.ErrUnknownDataframe.
func RegisteredDataframe(name string) (Dataframe, error) {
	return Default().RegisteredDataframe(name)
}

// MustRegisteredDataframe is RegisteredDataframe for generated code,
// where a missing name means the snippet is being replayed against a
// session that never saw it. It panics instead of returning an error.
func MustRegisteredDataframe(name string) Dataframe {
	df, err := RegisteredDataframe(name)
	if err != nil {
		panic(err)
	}
	return df
}

// GetCodeForChart answers the host's click-to-code request against the
// process-wide session.
func GetCodeForChart(id string) (CodePayload, error) {
	return Default().CodeForChart(id)
}
