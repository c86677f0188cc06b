package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_ReturnsLogger(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}

	l2 := Logger()
	if l != l2 {
		t.Fatal("expected same logger instance until Setup is called")
	}
}

func TestSetup_ReplacesLogger(t *testing.T) {
	before := Logger()
	t.Cleanup(func() { baseLogger.Store(before) })

	l, err := Setup(Options{Level: "debug", Format: "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger() != l {
		t.Fatal("expected Logger to return the configured logger")
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestNew_SeverityMapping(t *testing.T) {
	tests := []struct {
		level    slog.Level
		severity string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARNING"},
		{slog.LevelError, "ERROR"},
		{levelCritical, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, Options{Level: "debug"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			logger.Log(context.TODO(), tt.level, "test message")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to unmarshal log: %v", err)
			}
			if entry["severity"] != tt.severity {
				t.Fatalf("expected severity %q, got %q", tt.severity, entry["severity"])
			}
			if entry["message"] != "test message" {
				t.Fatalf("expected message key, got %v", entry)
			}
			ts, _ := entry["timestamp"].(string)
			if !strings.HasSuffix(ts, "Z") {
				t.Fatalf("expected UTC timestamp, got %q", ts)
			}
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("expected warn to be written")
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	if !strings.Contains(buf.String(), "severity=INFO") {
		t.Fatalf("expected text output with severity, got %q", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSeverityHandler_WithAttrs(t *testing.T) {
	h := &severityHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil)}

	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "value")}).(*severityHandler); !ok {
		t.Fatal("expected *severityHandler from WithAttrs")
	}
	if _, ok := h.WithGroup("group").(*severityHandler); !ok {
		t.Fatal("expected *severityHandler from WithGroup")
	}
}
