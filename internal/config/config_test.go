package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1000, cfg.ActivityCapacity)
	assert.Equal(t, "local-user", cfg.Actor)
	assert.Equal(t, 2*time.Second, cfg.SaveDelay())
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("actor: kay\nactivityCapacity: 50\nsaveDelaySeconds: 5\nnotify: false\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kay", cfg.Actor)
	assert.Equal(t, 50, cfg.ActivityCapacity)
	assert.Equal(t, 5*time.Second, cfg.SaveDelay())
	assert.False(t, cfg.Notify)
	// unset fields fall back to defaults
	assert.Equal(t, Default().SnapshotPath, cfg.SnapshotPath)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actor: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNormalizesNonsenseValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activityCapacity: -3\nsaveDelaySeconds: 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.ActivityCapacity)
	assert.Equal(t, 2*time.Second, cfg.SaveDelay())
}
