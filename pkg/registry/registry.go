// Package registry implements the content-addressed dataframe store.
//
// Dataframes are named by a fingerprint of their raw values rather than
// by object identity, so code generated for one chart can reference
// "the same" dataframe even if the caller re-derives an equal frame
// later, and charts sharing a dataframe resolve to one canonical name.
package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/nbforge/quickchart/pkg/core"
)

// DataframeRegistry maps content-derived names to dataframes and back.
// Entries live as long as the registry; there is no eviction.
type DataframeRegistry struct {
	mu     sync.RWMutex
	frames map[string]core.Dataframe
	logger *slog.Logger
}

// New creates an empty registry. The logger may be nil.
func New(logger *slog.Logger) *DataframeRegistry {
	return &DataframeRegistry{
		frames: make(map[string]core.Dataframe),
		logger: logger,
	}
}

// Register stores df under a name derived from its value fingerprint
// and returns that name. Value-equal frames map to the same name on
// repeated calls; re-registering an existing name overwrites it (last
// writer wins, a no-op in practice since the values are equal).
func (r *DataframeRegistry) Register(df core.Dataframe) string {
	name := fmt.Sprintf("df_%s", df.Fingerprint().Short())

	r.mu.Lock()
	_, existed := r.frames[name]
	r.frames[name] = df
	r.mu.Unlock()

	if r.logger != nil && !existed {
		r.logger.Debug("registered dataframe", "name", name, "rows", df.NumRows(), "cols", df.NumCols())
	}
	return name
}

// Resolve returns the dataframe previously registered under name.
func (r *DataframeRegistry) Resolve(name string) (core.Dataframe, error) {
	r.mu.RLock()
	df, ok := r.frames[name]
	r.mu.RUnlock()
	if !ok {
		return core.Dataframe{}, fmt.Errorf("%w: %s", core.ErrUnknownDataframe, name)
	}
	return df, nil
}

// Len returns the number of distinct registered dataframes.
func (r *DataframeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frames)
}

// RegistryState exposes internal state for observability.
type RegistryState struct {
	Dataframes int `json:"dataframes"`
}

// State implements introspection.Introspectable.
func (r *DataframeRegistry) State() any {
	return RegistryState{Dataframes: r.Len()}
}

// ComponentType implements introspection.Component.
func (r *DataframeRegistry) ComponentType() string {
	return "dataframe-registry"
}

var _ introspection.Introspectable = (*DataframeRegistry)(nil)
var _ introspection.Component = (*DataframeRegistry)(nil)
