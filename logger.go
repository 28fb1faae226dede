package shapeplay

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// discard drops every record. Enabled returns false so callers skip
// message formatting entirely.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

var (
	current atomic.Pointer[slog.Logger]

	sinksMu sync.Mutex
	sinks   []func(*slog.Logger)
)

func init() {
	current.Store(silent)
}

// SetLogger configures the logger for shapeplay, its sub-packages and every
// registered log sink. By default nothing is logged. Pass nil to restore
// the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-batch spawn details, pipeline and buffer setup
//   - [slog.LevelInfo]: lifecycle events (backend selected, episode start/end)
//   - [slog.LevelWarn]: non-fatal issues (audio unavailable, backend fallback)
//
// Example:
//
//	shapeplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	sinksMu.Lock()
	defer sinksMu.Unlock()
	current.Store(l)
	for _, sink := range sinks {
		sink(l)
	}
}

// Logger returns the current logger. Sub-packages (game, backend/wgpu,
// integration/canvas) call this to share one configuration.
func Logger() *slog.Logger {
	return current.Load()
}

// RegisterLogSink forwards the current logger, and every later one set by
// SetLogger, to sink. Backends use it to route the logs of the libraries
// they wrap; the wgpu backend passes them to hal.SetLogger.
func RegisterLogSink(sink func(*slog.Logger)) {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	sinks = append(sinks, sink)
	sink(current.Load())
}
