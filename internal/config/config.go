// Package config loads hurryup settings from a YAML file with environment
// overrides. Flags given on the command line win over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/hurryup/internal/constants"
)

type Config struct {
	DataDir string        `yaml:"data_dir"`
	Storage StorageConfig `yaml:"storage"`
	Improve ImproveConfig `yaml:"improve"`
	Proxy   ProxyConfig   `yaml:"proxy"`
	Editor  EditorConfig  `yaml:"editor"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"` // file, sqlite, diskv or memory
	QuotaBytes int64  `yaml:"quota_bytes"`
}

type ImproveConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ProxyConfig struct {
	Listen   string `yaml:"listen"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Upstream string `yaml:"upstream"`
}

type EditorConfig struct {
	Rich bool `yaml:"rich"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: constants.DefaultConfigDir,
		Storage: StorageConfig{Backend: "file", QuotaBytes: constants.DefaultQuotaBytes},
		Improve: ImproveConfig{URL: "http://127.0.0.1:8787", Timeout: constants.DefaultImproveTimeout},
		Proxy: ProxyConfig{
			Listen:   "127.0.0.1:8787",
			Model:    "claude-sonnet-4-20250514",
			Upstream: "https://api.anthropic.com/v1/messages",
		},
		Editor: EditorConfig{Rich: true},
	}
}

// Load reads path (or the default location when empty), applies environment
// overrides and expands the data directory. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(constants.DefaultConfigDir, constants.DefaultConfigFile)
	}
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, fmt.Errorf("config file not found: %s", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	envOverride(&c.DataDir, "HURRYUP_DATA_DIR")
	envOverride(&c.Storage.Backend, "HURRYUP_BACKEND")
	envOverrideInt64(&c.Storage.QuotaBytes, "HURRYUP_QUOTA_BYTES")
	envOverride(&c.Improve.URL, "HURRYUP_PROXY_URL")
	envOverride(&c.Proxy.Listen, "HURRYUP_LISTEN")
	envOverride(&c.Proxy.APIKey, "ANTHROPIC_API_KEY")
	envOverrideBool(&c.Log.Debug, "HURRYUP_DEBUG")

	if c.DataDir, err = ExpandHome(c.DataDir); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail much later.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "diskv", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q (want file, sqlite, diskv or memory)", c.Storage.Backend)
	}
	if c.Storage.QuotaBytes < 0 {
		return fmt.Errorf("storage.quota_bytes must not be negative")
	}
	if c.Improve.Timeout <= 0 {
		c.Improve.Timeout = constants.DefaultImproveTimeout
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
