package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/hurryup/internal/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir: `+dataDir+`
storage:
  backend: sqlite
  quota_bytes: 1024
improve:
  url: http://proxy.internal
  timeout: 5s
editor:
  rich: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, int64(1024), cfg.Storage.QuotaBytes)
	assert.Equal(t, "http://proxy.internal", cfg.Improve.URL)
	assert.Equal(t, 5*time.Second, cfg.Improve.Timeout)
	assert.False(t, cfg.Editor.Rich)
	// untouched keys keep defaults
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Proxy.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: file\n")
	t.Setenv("HURRYUP_BACKEND", "diskv")
	t.Setenv("HURRYUP_QUOTA_BYTES", "2048")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("HURRYUP_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "diskv", cfg.Storage.Backend)
	assert.Equal(t, int64(2048), cfg.Storage.QuotaBytes)
	assert.Equal(t, "sk-test", cfg.Proxy.APIKey)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, int64(constants.DefaultQuotaBytes), cfg.Storage.QuotaBytes)
	assert.NotContains(t, cfg.DataDir, "~")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "s3" }, true},
		{"negative quota", func(c *Config) { c.Storage.QuotaBytes = -1 }, true},
		{"zero timeout is defaulted", func(c *Config) { c.Improve.Timeout = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, c.Improve.Timeout, time.Duration(0))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.config/hurryup")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/hurryup"), got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
