package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/Arking-xx/College-Thesis/foundation/core/log"
	"github.com/Arking-xx/College-Thesis/pkg/core/config"
)

func newBuffered(level, format string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig("test")
	cfg.Level = level
	cfg.Format = format
	cfg.Output = &buf
	return Wrap(NewLogger(cfg), "test"), &buf
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("my-component")

	if cfg.Name != "my-component" {
		t.Errorf("Name = %v, want my-component", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig("cli", config.GeneralConfig{LogLevel: "debug"})
	if cfg.Level != "debug" || cfg.Format != "text" || cfg.Name != "cli" {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := DefaultLoggerConfig("test")
			cfg.Level = tt.input
			if got := NewLogger(cfg).GetLevel(); got != tt.expected {
				t.Errorf("GetLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogger_KeyValues(t *testing.T) {
	logger, buf := newBuffered("debug", "json")
	logger.Info("message", "key1", "value1", "key2", 42, "orphan")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	raw, _ := json.Marshal(entry)
	for _, want := range []string{`"key1":"value1"`, `"key2":42`, `"message"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("entry %s missing %s", raw, want)
		}
	}
	if strings.Contains(string(raw), "orphan") {
		t.Errorf("odd trailing key logged: %s", raw)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	logger, buf := newBuffered("warn", "text")
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", "stage", "parse")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn written: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "stage=parse") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	logger, buf := newBuffered("info", "text")
	child := logger.With("request", "abc")
	child.Info("first")
	logger.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "request=abc") {
		t.Errorf("child entry lacks field: %q", lines[0])
	}
	if strings.Contains(lines[1], "request=abc") {
		t.Errorf("parent entry gained child field: %q", lines[1])
	}
	if child.Name() != "test" {
		t.Errorf("Name() = %q", child.Name())
	}
}

func TestLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	cfg := DefaultLoggerConfig("test")
	cfg.Output = &primary
	cfg.AdditionalOutputs = []io.Writer{&extra}
	NewLogger(cfg).Error("boom")

	if primary.String() == "" || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestToFields(t *testing.T) {
	if fields := toFields(); fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields := toFields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" || fields["key2"] != 42 {
		t.Errorf("toFields() = %v", fields)
	}

	// Non-string key is skipped
	if fields := toFields(123, "value"); len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger, _ := newBuffered("info", "json")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
