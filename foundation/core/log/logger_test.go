// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, context derivation,
//              coded error logging and stage timers.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"WARNING", LevelWarn, false},
		{" error ", LevelError, false},
		{"", LevelInfo, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithRequestID("req-1").Info("translated", Fields{"from": "cpp"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	want := map[string]string{
		"level":      "info",
		"message":    "translated",
		"logger":     "test",
		"request_id": "req-1",
		"from":       "cpp",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("field %s = %v, want %v", k, data[k], v)
		}
	}
}

func TestTextFormatSortsFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("done", Fields{"b": 2, "a": 1})

	out := buf.String()
	if strings.Index(out, "a=1") > strings.Index(out, "b=2") {
		t.Errorf("fields not sorted: %q", out)
	}
	if !strings.Contains(out, "{test}") {
		t.Errorf("logger name missing: %q", out)
	}
}

func TestWithFieldDoesNotModifyReceiver(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	derived := logger.WithField("stage", "parse")

	logger.Info("root")
	if strings.Contains(buf.String(), "stage=") {
		t.Errorf("root logger picked up derived field: %q", buf.String())
	}

	buf.Reset()
	derived.Info("child")
	if !strings.Contains(buf.String(), "stage=parse") {
		t.Errorf("derived logger lost its field: %q", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "medium severity logs as warning",
			err:  mdwerror.New("augment failed").WithCode(mdwerror.CodeExternalServiceError),
			want: "[WRN]",
		},
		{
			name: "high severity logs as error",
			err:  mdwerror.New("bad token").WithCode(mdwerror.CodeLexError),
			want: "[ERR]",
		},
		{
			name: "plain error logs as error",
			err:  errors.New("boom"),
			want: "[ERR]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelDebug, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("LogError() output = %q, want level %s", buf.String(), tt.want)
			}
		})
	}
}

func TestTimerLogsOnce(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	timer := logger.StartTimer("tokenize")
	timer.Stop()
	timer.Stop()

	if n := strings.Count(buf.String(), "tokenize completed"); n != 1 {
		t.Errorf("timer logged %d times, want 1", n)
	}
	if !strings.Contains(buf.String(), "operation=tokenize") {
		t.Errorf("timer output missing operation field: %q", buf.String())
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.StartTimer("parse").StopWithError(errors.New("unexpected token"))

	out := buf.String()
	if !strings.Contains(out, "parse failed") || !strings.Contains(out, "unexpected token") {
		t.Errorf("StopWithError() output = %q", out)
	}
}
