package platform

import (
	"github.com/nbforge/quickchart/pkg/registry"
	"github.com/nbforge/quickchart/pkg/session"
)

// New wires a session from functional options.
func New(opts ...Option) *session.Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	reg := o.registry
	if reg == nil {
		reg = registry.New(o.logger)
	}
	return session.New(reg, o.logger, o.chartsPerRow)
}
