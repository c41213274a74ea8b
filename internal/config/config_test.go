package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("RAWPACK_LOG_LEVEL", "debug")
	t.Setenv("RAWPACK_LOG_FORMAT", "json")
	t.Setenv("RAWPACK_LOG_FILE", "/var/log/rawpack.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/log/rawpack.log", cfg.Log.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rawpack.yaml"), []byte("log:\n  level: warn\n  file: run.log\n"), 0o644))
	t.Setenv("RAWPACK_LOG_FILE", "env.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "env.log", cfg.Log.File)
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rawpack.yaml"), []byte("log: [unterminated\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}
