package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(WarnLevel)
	assert.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	l, err = ParseLevel("")
	assert.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shuffle.log")
	l, err := New(Config{Level: InfoLevel, OutputPath: path, MaxSize: 1})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("track started", zap.String("track", "a.mp3"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"track started"`)
	assert.Contains(t, lines[0], `"track":"a.mp3"`)
}

func TestNewWithoutPathIsSilent(t *testing.T) {
	l, err := New(Config{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
