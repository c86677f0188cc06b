package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// rfc3339Micros is the timestamp layout used for the "timestamp" attribute.
const rfc3339Micros = "2006-01-02T15:04:05.000000Z07:00"

var baseLogger atomic.Pointer[slog.Logger]

// Options selects the minimum level ("debug", "info", "warn", "error") and the
// output format ("json" or "text") of the process-wide logger.
type Options struct {
	Level  string
	Format string
}

// severityHandler wraps a slog handler so records are stamped in UTC and
// level names are emitted as Cloud Logging severity strings.
type severityHandler struct {
	slog.Handler
}

func (h *severityHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Time = r.Time.UTC()
	return h.Handler.Handle(ctx, r)
}

func (h *severityHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &severityHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *severityHandler) WithGroup(name string) slog.Handler {
	return &severityHandler{Handler: h.Handler.WithGroup(name)}
}

var severityNames = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARNING",
	slog.LevelError: "ERROR",
	levelCritical:   "CRITICAL",
}

const levelCritical = slog.LevelError + 4

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		if a.Value.Kind() != slog.KindTime {
			return a
		}
		a.Key = "timestamp"
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(rfc3339Micros))
	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			if name, found := severityNames[level]; found {
				a.Value = slog.StringValue(name)
			}
		}
		a.Key = "severity"
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// ParseLevel converts a configured level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// New builds a logger writing to w according to opts.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	ho := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceAttr}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "json":
		h = slog.NewJSONHandler(w, ho)
	case "text":
		h = slog.NewTextHandler(w, ho)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	return slog.New(&severityHandler{Handler: h}), nil
}

// Setup replaces the process-wide logger with one built from opts and
// returns it.
func Setup(opts Options) (*slog.Logger, error) {
	l, err := New(os.Stdout, opts)
	if err != nil {
		return nil, err
	}
	baseLogger.Store(l)
	return l, nil
}

// Logger returns the process-wide slog.Logger instance. Until Setup is
// called it is an info-level JSON logger on stdout.
func Logger() *slog.Logger {
	if l := baseLogger.Load(); l != nil {
		return l
	}
	l, _ := New(os.Stdout, Options{})
	baseLogger.CompareAndSwap(nil, l)
	return baseLogger.Load()
}
