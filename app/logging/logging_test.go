package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNewHandlerLevels(t *testing.T) {
	var buf bytes.Buffer

	handler := NewHandler(&buf, false)
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))

	handler = NewHandler(&buf, true)
	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug))

	slog.New(handler).Info("Feed refreshed", "feed", "example")
	assert.Contains(t, buf.String(), "feed=example")
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stderr, Output(""))

	path := filepath.Join(t.TempDir(), "podcast-rss.log")
	w := Output(path)
	rotating, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	defer rotating.Close()

	_, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
