package platform

import (
	"log/slog"

	"github.com/nbforge/quickchart/pkg/registry"
)

// options holds the internal configuration for a quickchart session.
type options struct {
	registry     *registry.DataframeRegistry
	logger       *slog.Logger
	chartsPerRow int
}

// Option defines a functional option for configuring a session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the session and its registry.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRegistry injects an existing dataframe registry, e.g. to share
// one registry across sessions or tests. If omitted, the session
// creates its own.
func WithRegistry(reg *registry.DataframeRegistry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithChartsPerRow sets the layout hint renderers read when laying
// charts out in rows. Non-positive values fall back to the renderer's
// default.
func WithChartsPerRow(n int) Option {
	return func(o *options) {
		o.chartsPerRow = n
	}
}
