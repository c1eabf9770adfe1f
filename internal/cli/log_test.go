package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("recompute") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("recompute") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("recompute") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Computed layout: 3 tiles in 2 columns")

	out := buf.String()
	if !strings.Contains(out, "Computed layout: 3 tiles in 2 columns (") {
		t.Errorf("progress output = %q, want message with duration", out)
	}
	if !strings.Contains(out, "ms)") && !strings.Contains(out, "0s)") {
		t.Errorf("progress output = %q, want a rounded duration", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext should fall back to a default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
}

func TestLayoutLogsProgress(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs, out bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"layout", "-n", "3", "--width", "500", "-f", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout error: %v", err)
	}

	if !strings.Contains(logs.String(), "Computed layout: 3 tiles in 2 columns") {
		t.Errorf("logs missing progress line:\n%s", logs.String())
	}
	if strings.Contains(out.String(), "Computed layout") {
		t.Error("progress should go to the logger, not stdout")
	}
}
