// Package session holds the process-scoped state that ties displayed
// charts back to their provenance: one dataframe registry plus an index
// of every chart built through it, keyed by chart identifier. The host
// environment answers click-to-code requests through this index.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/registry"
	"github.com/nbforge/quickchart/pkg/section"
)

// Session owns a dataframe registry and tracks charts across sections.
// Section building is single-threaded; the mutex exists because the
// host's code requests arrive asynchronously to the build flow.
type Session struct {
	mu           sync.RWMutex
	reg          *registry.DataframeRegistry
	charts       map[string]*section.ChartWithCode
	logger       *slog.Logger
	chartsPerRow int
}

// New creates a session around the given registry. A nil registry gets
// a fresh one; the logger may be nil. chartsPerRow is a layout hint for
// renderers; non-positive means renderer default.
func New(reg *registry.DataframeRegistry, logger *slog.Logger, chartsPerRow int) *Session {
	if reg == nil {
		reg = registry.New(logger)
	}
	return &Session{
		reg:          reg,
		charts:       make(map[string]*section.ChartWithCode),
		logger:       logger,
		chartsPerRow: chartsPerRow,
	}
}

// ChartsPerRow returns the session's row layout hint, 0 when unset.
func (s *Session) ChartsPerRow() int {
	return s.chartsPerRow
}

// Registry returns the session's dataframe registry.
func (s *Session) Registry() *registry.DataframeRegistry {
	return s.reg
}

// RegisteredDataframe resolves a dataframe by its registered name. It
// is the lookup endpoint reconstructed snippets call at re-execution
// time.
func (s *Session) RegisteredDataframe(name string) (core.Dataframe, error) {
	return s.reg.Resolve(name)
}

// CodeForChart answers the host's click-to-code request: it looks up
// the chart by identifier and returns its reconstructed code as a
// structured payload. A stale or unknown identifier fails with
// ErrUnknownChart.
func (s *Session) CodeForChart(id string) (core.CodePayload, error) {
	s.mu.RLock()
	c, ok := s.charts[id]
	s.mu.RUnlock()
	if !ok {
		return core.CodePayload{}, fmt.Errorf("%w: %s", core.ErrUnknownChart, id)
	}

	code, err := c.Code()
	if err != nil {
		return core.CodePayload{}, err
	}
	return core.CodePayload{ChartID: id, Code: code}, nil
}

// BuildSection builds a custom section through the generic builder and
// tracks its charts for later code requests.
func (s *Session) BuildSection(df core.Dataframe, plotter *core.Plotter, argsPerChart []any, kwargs map[string]any, title string) (*section.ChartSection, error) {
	return s.track(section.Build(df, plotter, argsPerChart, kwargs, s.reg, title))
}

// Histograms builds and tracks a "Distributions" section.
func (s *Session) Histograms(df core.Dataframe, colnames []string) (*section.ChartSection, error) {
	return s.track(section.Histograms(df, colnames, s.reg))
}

// ValuePlots builds and tracks a "Values" section.
func (s *Session) ValuePlots(df core.Dataframe, colnames []string) (*section.ChartSection, error) {
	return s.track(section.ValuePlots(df, colnames, s.reg))
}

// CategoricalHistograms builds and tracks a "Categorical
// distributions" section.
func (s *Session) CategoricalHistograms(df core.Dataframe, colnames []string) (*section.ChartSection, error) {
	return s.track(section.CategoricalHistograms(df, colnames, s.reg))
}

// Heatmaps builds and tracks a "Heatmaps" section.
func (s *Session) Heatmaps(df core.Dataframe, colnamePairs [][2]string) (*section.ChartSection, error) {
	return s.track(section.Heatmaps(df, colnamePairs, s.reg))
}

// LinkedScatter builds and tracks a "2-d distributions" section.
func (s *Session) LinkedScatter(df core.Dataframe, colnamePairs [][2]string) (*section.ChartSection, error) {
	return s.track(section.LinkedScatter(df, colnamePairs, s.reg))
}

// SwarmPlots builds and tracks a "Swarm plots" section.
func (s *Session) SwarmPlots(df core.Dataframe, colnamePairs [][2]string) (*section.ChartSection, error) {
	return s.track(section.SwarmPlots(df, colnamePairs, s.reg))
}

func (s *Session) track(sec *section.ChartSection, err error) (*section.ChartSection, error) {
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, c := range sec.Charts() {
		s.charts[c.ID()] = c
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("tracked section", "title", sec.Title(), "charts", len(sec.Charts()))
	}
	return sec, nil
}

// ChartCount returns the number of tracked charts.
func (s *Session) ChartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.charts)
}

// SessionState exposes internal state for observability.
type SessionState struct {
	Charts     int `json:"charts"`
	Dataframes int `json:"dataframes"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	return SessionState{
		Charts:     s.ChartCount(),
		Dataframes: s.reg.Len(),
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ core.CodeBridge = (*Session)(nil)
var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
