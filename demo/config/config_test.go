package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorustyt/gonavmesh/detour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	mode, err := cfg.QueryMode()
	require.NoError(t, err)
	assert.Equal(t, detour.Accuracy, mode)
	assert.Equal(t, float32(detour.DefaultExpansionFactor), cfg.Query.ExpansionFactor)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Len(t, cfg.MeshOptions(), 2)
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "navmesh.hjson")
	require.NoError(t, os.WriteFile(p, []byte(`
{
  # comments and unquoted strings are fine in hjson
  log: {
    level: debug
    file: navmesh.log
  }
  query: {
    mode: Performance
    expansionFactor: 1.5
  }
}
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "navmesh.log", cfg.Log.File)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, detour.DefaultMaxGridDim, cfg.Query.MaxGridDim)

	mode, err := cfg.QueryMode()
	require.NoError(t, err)
	assert.Equal(t, detour.Performance, mode)
	assert.Equal(t, float32(1.5), cfg.Query.ExpansionFactor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.hjson"))
	assert.Error(t, err)

	tests := map[string]string{
		"syntax":    "{\n query: {\n mode: accuracy\n",
		"mode":      "{\n query: {\n mode: fastest\n }\n}\n",
		"level":     "{\n log: {\n level: loud\n }\n}\n",
		"expansion": "{\n query: {\n expansionFactor: -1\n }\n}\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name+".hjson")
			require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
			_, err := Load(p)
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Query.Mode = "performance"
	data, err := cfg.Encode()
	require.NoError(t, err)

	decoded := Default()
	require.NoError(t, decoded.Decode(data))
	assert.Equal(t, cfg, decoded)
}
