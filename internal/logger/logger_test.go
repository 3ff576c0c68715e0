package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultiLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.log")

	log, err := NewMultiLogger("info", path)
	require.NoError(t, err)

	log.Info("terrain ready")
	log.Debug("should be filtered")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "terrain ready")
	assert.Contains(t, string(data), "INFO")
	assert.NotContains(t, string(data), "should be filtered")
}

func TestSetLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")

	log, err := NewMultiLogger("warn", path)
	require.NoError(t, err)

	log.Info("quiet")
	log.SetLevel("debug")
	log.Debugf("count %d", 7)
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "count 7")
}
