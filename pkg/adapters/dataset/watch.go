package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

// Event signals that a watched dataset file changed on disk.
type Event struct {
	Path      string
	Timestamp int64
}

func (e Event) String() string {
	return fmt.Sprintf("dataset %s changed at %d", e.Path, e.Timestamp)
}

// Watcher observes one dataset file and emits a debounced Event when it
// is rewritten. Editors and exporters often replace files rather than
// write in place, so the containing directory is watched and events are
// filtered by file name.
type Watcher struct {
	*worker.BaseWorker
	path     string
	events   chan<- Event
	debounce time.Duration
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher for path. The logger may be nil.
func NewWatcher(path string, events chan<- Event, logger *slog.Logger) *Watcher {
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("dataset-watcher"),
		path:       path,
		events:     events,
		debounce:   100 * time.Millisecond,
		logger:     logger,
	}
}

// Start begins watching. It is an error to start a watcher twice.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.watcher = watcher

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop terminates the watch loop.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State implements worker state reporting.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	defer w.watcher.Close()

	// The timer coalesces bursts of events (truncate + write + chmod)
	// into one emitted change.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if w.logger != nil {
					w.logger.Debug("dataset changed", "path", event.Name, "op", event.Op.String())
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", err)
			}

		case <-timer.C:
			select {
			case w.events <- Event{Path: w.path, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
