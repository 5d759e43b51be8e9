package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nusfjord"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nusfjord", "config.toml"), []byte(contents), 0644))
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.DefaultPlayers)
		assert.False(t, cfg.RevealRounds)
	})

	t.Run("values are read from the file", func(t *testing.T) {
		writeConfig(t, "default_players = 4\nreveal_rounds = true\n")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.DefaultPlayers)
		assert.True(t, cfg.RevealRounds)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		writeConfig(t, "default_players = [nope\n")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("out of range default_players is an error", func(t *testing.T) {
		writeConfig(t, "default_players = 9\n")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "nusfjord", "config.toml"), GetConfigFilePath())
}
