package shapeplay

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDiscardHandler(t *testing.T) {
	h := discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discard); !ok {
		t.Error("WithAttrs() did not return a discard handler")
	}
	if _, ok := h.WithGroup("group").(discard); !ok {
		t.Error("WithGroup() did not return a discard handler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}
	Logger().Info("spawned batch", "count", 12)
	if !strings.Contains(buf.String(), "spawned batch") || !strings.Contains(buf.String(), "count=12") {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestRegisterLogSink(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		sinksMu.Lock()
		sinks = sinks[:len(sinks)-1]
		sinksMu.Unlock()
	})

	var got []*slog.Logger
	RegisterLogSink(func(l *slog.Logger) { got = append(got, l) })
	if len(got) != 1 || got[0] != orig {
		t.Fatalf("sink not called with the current logger on registration: %v", got)
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	SetLogger(nil)
	if len(got) != 3 {
		t.Fatalf("sink calls = %d, want 3", len(got))
	}
	if got[1] != custom {
		t.Error("sink did not receive the custom logger")
	}
	if got[2] != silent {
		t.Error("sink did not receive the silent logger after SetLogger(nil)")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if l := Logger(); l == nil {
				t.Error("Logger() returned nil during concurrent access")
			} else {
				l.Debug("concurrent read")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
