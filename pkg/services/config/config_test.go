package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 640, cfg.Charts.PieWidth)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Empty(t, cfg.WorkDir)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := `
work_dir: /var/tmp/exhibit
charts:
  bar_width: 1000
server:
  addr: 0.0.0.0:9090
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/exhibit", cfg.WorkDir)
	assert.Equal(t, 1000, cfg.Charts.BarWidth)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	assert.Equal(t, 640, cfg.Charts.PieWidth, "unnamed keys keep their defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
