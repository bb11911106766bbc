// Package lifecycle bridges dataset change events into the generic
// lifecycle supervision model, so a host can supervise report rebuilds
// alongside its other event sources.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/nbforge/quickchart/pkg/adapters/dataset"
)

// The bridged event type must satisfy the lifecycle event contract.
var _ lifecycle.Event = dataset.Event{}

type datasetSource struct {
	events <-chan dataset.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits dataset change
// events, typically fed by a dataset.Watcher.
func NewSource(events <-chan dataset.Event) lifecycle.Source {
	return &datasetSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *datasetSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *datasetSource) Start(ctx context.Context) error {
	// lifecycle.Go tracks the bridge goroutine itself.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
