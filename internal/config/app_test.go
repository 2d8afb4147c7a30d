package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	os.Unsetenv("MINES_PARAMS")

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.False(t, config.Development())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("MINES_PARAMS", "width=5&height=5")

	path := writeConfig(t, `{
		"mode": "development",
		"params": "width=9&height=9",
		"tile_size": 24
	}`)
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Mode:     ModeDevelopment,
		Params:   "width=5&height=5",
		TileSize: 24,
		TPS:      DefaultTPS,
	}, config)
	assert.True(t, config.Development())
}

func TestLoadDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeDevelopment, config.Mode)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, `{"mode": `))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{"tile_size": -1}`))
	assert.Error(t, err)

	for _, mode := range []string{"prod", "dev", "Production", ""} {
		_, err = Load(writeConfig(t, `{"mode": "`+mode+`"}`))
		assert.ErrorContains(t, err, "mode must be", mode)
	}
	assert.False(t, Config{Mode: "prod"}.Development())
}
