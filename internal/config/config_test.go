package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDir, EnvLogLevel, EnvPrintPath, EnvScrollThreshold, EnvTheme} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".resumeform"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".resumeform", "resume.txt"), cfg.PrintPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.ScrollThreshold)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, filepath.Join(home, ".resumeform", "resumeform.log"), cfg.LogPath())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	content := `{"data_dir": "` + filepath.ToSlash(dir) + `", "log_level": "debug", "scroll_threshold": 5, "theme": "neon"}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir), cfg.DataDir)
	assert.Equal(t, filepath.Join(filepath.ToSlash(dir), "resume.txt"), cfg.PrintPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5, cfg.ScrollThreshold)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDir, "/tmp/rf")
	t.Setenv(EnvPrintPath, "/tmp/out.txt")
	t.Setenv(EnvScrollThreshold, "7")
	t.Setenv(EnvTheme, "mono")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rf", cfg.DataDir)
	assert.Equal(t, "/tmp/out.txt", cfg.PrintPath)
	assert.Equal(t, 7, cfg.ScrollThreshold)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(bad, []byte("{ invalid json }"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")

	t.Setenv(EnvScrollThreshold, "lots")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestLoad_ValidationFailures(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	t.Setenv(EnvLogLevel, "verbose")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvTheme, "rainbow")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Theme")
}

func TestLoadFile_EmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{DataDir: "/d", PrintPath: "/d/r.txt", LogLevel: "info", ScrollThreshold: 2, Theme: "classic"}
	c := Config{LogLevel: "error"}

	got := c.MergeWithDefaults(defaults)
	assert.Equal(t, "/d", got.DataDir)
	assert.Equal(t, "/d/r.txt", got.PrintPath)
	assert.Equal(t, "error", got.LogLevel)
	assert.Equal(t, 2, got.ScrollThreshold)
	assert.Equal(t, "", c.DataDir)
}

func TestEnsureDataDir(t *testing.T) {
	c := Config{DataDir: filepath.Join(t.TempDir(), "nested", "dir")}
	require.NoError(t, c.EnsureDataDir())
	info, err := os.Stat(c.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
