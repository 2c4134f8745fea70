package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		_ = Close()
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "logs", "quoteboard.log")
	require.NoError(t, Init(Config{File: path, Level: "warn", MaxSizeMB: 1}))

	For(CompBoard).Info("hidden")
	For(CompDrag).Warn("move rolled back", "id", "QT-1")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "move rolled back")
	assert.Contains(t, string(data), "component=drag")
	assert.NotContains(t, string(data), "hidden")
}

func TestInitRequiresFile(t *testing.T) {
	assert.Error(t, Init(Config{}))
}
