package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knot-chain/pkg/rope"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []int{2, 10}, cfg.Knots)
	assert.Equal(t, 2000, cfg.VisitedCapacity)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	require.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rope.yaml")

	cfg := DefaultConfig()
	cfg.Knots = []int{1, 2, 3}
	cfg.Input = "moves.txt"
	cfg.Checked = true
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("knots: [10]\nworkers: 0\n"), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, loaded.Knots)
	assert.Equal(t, 1, loaded.Workers, "workers are clamped to at least one")
	assert.Equal(t, "console", loaded.Logging.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero knots":  "knots: [2, 0]\n",
		"no knots":    "knots: []\n",
		"bad level":   "logging:\n  level: loud\n",
		"bad format":  "logging:\n  format: xml\n",
		"broken yaml": "knots: [2\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rope.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}

	cfg := DefaultConfig()
	cfg.Knots = []int{0}
	require.ErrorIs(t, cfg.Validate(), rope.ErrInvalidLength)
}

func TestValidateDoesNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	require.Error(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Workers)
}
