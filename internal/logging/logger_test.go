package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	logger, err := New(config.LoggingConfig{Directory: dir, Level: "info", MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("assessment started", zap.String("session_id", "abc"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "assessment started", entry["message"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["session_id"])
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Directory: t.TempDir(), Level: "loud"})
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsole(&buf, "warn")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("unknown answer id", zap.String("id", "wiscar/made-up"))

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "wiscar/made-up")
}
