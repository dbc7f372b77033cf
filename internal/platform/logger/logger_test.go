// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault resets the process-wide default logger after a test.
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func parseEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line must be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestSetupWithWriter_LevelFiltering(t *testing.T) {
	testCases := []struct {
		level       string
		wantDebug   bool
		wantInfo    bool
		wantWarning bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarning: true},
		{level: "info", wantDebug: false, wantInfo: true, wantWarning: true},
		{level: "warn", wantDebug: false, wantInfo: false, wantWarning: true},
		{level: "ERROR", wantDebug: false, wantInfo: false, wantWarning: false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			restoreDefault(t)
			var buf bytes.Buffer

			l := logger.SetupWithWriter(config.ServerConfig{LogLevel: tc.level}, &buf)
			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.wantInfo, strings.Contains(out, "info message"))
			assert.Equal(t, tc.wantWarning, strings.Contains(out, "warn message"))
		})
	}
}

func TestSetupWithWriter_SetsDefaultJSONLogger(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)
	slog.Info("via default", "owner_id", "u1")

	entries := parseEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "via default", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "u1", entries[0]["owner_id"])
}

func TestParseLevel_InvalidFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("chatty"))
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("Debug"))
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	scoped := fallback.With("trace_id", "abc")

	t.Run("missing logger uses fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("stored logger wins", func(t *testing.T) {
		ctx := logger.WithContext(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, scoped, logger.FromContext(ctx))
	})

	t.Run("nil fallback resolves to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	})
}
