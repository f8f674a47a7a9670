package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-store/internal/logging"
	"github.com/annel0/voxel-store/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	t.Setenv("VOXEL_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, vec.Size{Width: 32, Height: 32, Depth: 32}, cfg.World.ChunkSize())
	assert.Equal(t, int64(12345), cfg.Generator.Seed)
	assert.False(t, cfg.Metrics.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  chunk_width: 16
  chunk_height: 8
  chunk_depth: 4
generator:
  seed: 7
logging:
  level: debug
metrics:
  enabled: true
  port: 9100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, vec.Size{Width: 16, Height: 8, Depth: 4}, cfg.World.ChunkSize())
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, 48, cfg.Generator.Radius, "незаданные поля остаются по умолчанию")
	assert.Equal(t, ":9100", cfg.Metrics.Addr())

	lvl, err := cfg.Logging.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logging.DEBUG, lvl)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "generator:\n  seed: 42\n")
	t.Setenv("VOXEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
}

func TestLoad_RejectsZeroChunk(t *testing.T) {
	path := writeConfig(t, "world:\n  chunk_height: 0\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMetricsPortFallback(t *testing.T) {
	t.Setenv("VOXEL_METRICS_PORT", "9999")
	assert.Equal(t, 9999, MetricsConfig{}.GetPort())
	assert.Equal(t, 1234, MetricsConfig{Port: 1234}.GetPort())

	t.Setenv("VOXEL_METRICS_PORT", "bad")
	assert.Equal(t, 2112, MetricsConfig{}.GetPort())
}

func TestGeneratorRegion(t *testing.T) {
	g := GeneratorConfig{Radius: 2, MinY: -1, MaxY: 1}
	assert.Equal(t, vec.Selection{
		Src:  vec.Coords{X: -2, Y: -1, Z: -2},
		Dest: vec.Coords{X: 1, Y: 1, Z: 1},
	}, g.Region())
}
