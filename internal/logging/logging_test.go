package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileLogger(t *testing.T, level string) (*Logger, string) {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), "test.log")
	logger, err := NewLogger(&LogConfig{
		Level:      level,
		File:       logFile,
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	return logger, logFile
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level      string
		suppressed []string
		emitted    []string
	}{
		{level: "debug", emitted: []string{"debug-msg", "info-msg", "warn-msg", "error-msg"}},
		{level: "info", suppressed: []string{"debug-msg"}, emitted: []string{"info-msg", "warn-msg", "error-msg"}},
		{level: "warn", suppressed: []string{"debug-msg", "info-msg"}, emitted: []string{"warn-msg", "error-msg"}},
		{level: "error", suppressed: []string{"debug-msg", "info-msg", "warn-msg"}, emitted: []string{"error-msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, logFile := newFileLogger(t, tt.level)

			logger.Debug("debug-msg")
			logger.Info("info-msg")
			logger.Warn("warn-msg")
			logger.Error("error-msg")

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)

			for _, msg := range tt.emitted {
				assert.Contains(t, string(content), msg)
			}
			for _, msg := range tt.suppressed {
				assert.NotContains(t, string(content), msg)
			}
		})
	}
}

func TestEmptyLevelDefaultsToInfo(t *testing.T) {
	logger, logFile := newFileLogger(t, "")

	logger.Debug("debug-msg")
	logger.Info("info-msg")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug-msg")
	assert.Contains(t, string(content), "info-msg")
}

func TestNewLoggerRejectsInvalidConfig(t *testing.T) {
	_, err := NewLogger(&LogConfig{
		Level:   "verbose",
		File:    filepath.Join(t.TempDir(), "test.log"),
		MaxSize: 10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = NewLogger(&LogConfig{
		File:    filepath.Join(t.TempDir(), "test.log"),
		MaxSize: 0,
	})
	assert.Error(t, err)
}
