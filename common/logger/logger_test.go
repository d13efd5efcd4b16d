package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"Error", zapcore.ErrorLevel},
	} {
		lvl, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, lvl, tc.in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFileLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "navmesh.log")
	cfg := DefaultConfig()
	cfg.File = file
	cfg.Level = "debug"
	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("logger test", zap.Int("tris", 2))
	_ = l.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"logger test"`)
	assert.Contains(t, string(data), `"tris":2`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
