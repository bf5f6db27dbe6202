package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VELOCITY_CONFIG", "")
	t.Setenv("HOME", t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WeekCount)
	assert.Contains(t, cfg.DBPath, "velocity.db")
	assert.False(t, cfg.NoColor)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("db_path: /tmp/custom.db\nweek_count: 8\n"), 0644))
	t.Setenv("VELOCITY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.WeekCount)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_count: 8\n"), 0644))
	t.Setenv("VELOCITY_CONFIG", path)
	t.Setenv("VELOCITY_WEEK_COUNT", "12")
	t.Setenv("VELOCITY_NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.WeekCount)
	assert.True(t, cfg.NoColor)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	t.Setenv("VELOCITY_CONFIG", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}
