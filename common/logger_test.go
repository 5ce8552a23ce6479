package common

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func newBufferLogger(level LogLevel) (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &AppLogger{
		level:  level,
		output: &buf,
		logger: log.New(&buf, "", 0),
	}, &buf
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Debug("hidden detail")
	logger.Info("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "visible message") {
		t.Error("info message should be logged at info level")
	}
}

func TestLoggerFormatsLevelTag(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.Warn("tunnel %s flapped %d times", "home", 3)

	out := buf.String()
	if !strings.Contains(out, "[WARN] tunnel home flapped 3 times") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)

	logger.Info("before")
	logger.SetLevel(LevelDebug)
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("info message should be filtered at error level")
	}
	if !strings.Contains(out, "after") {
		t.Error("debug message should pass after lowering the level")
	}
}
