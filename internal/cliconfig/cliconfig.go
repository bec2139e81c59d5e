// Package cliconfig loads the feedbackkit CLI configuration from a yaml
// file with environment-variable overrides.
package cliconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	feedbackkit "github.com/swiftlydeveloped/feedbackkit-go"
)

// Config is the on-disk CLI configuration.
type Config struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	Environment string `yaml:"environment"` // production, staging, local
	TimeoutMs   int    `yaml:"timeout_ms"`
	Debug       bool   `yaml:"debug"`
	StoragePath string `yaml:"storage_path"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "feedbackkit.yaml"
	}
	return filepath.Join(home, ".config", "feedbackkit", "config.yaml")
}

// DefaultStoragePath returns the default identity store location.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "feedbackkit-identity.db"
	}
	return filepath.Join(home, ".local", "share", "feedbackkit", "identity.db")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Environment: "production",
		TimeoutMs:   30000,
		StoragePath: DefaultStoragePath(),
	}
}

// Load reads the config file at path (DefaultPath when empty), applies
// defaults for anything unset, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		mergeConfig(cfg, &fileCfg)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.overrideFromEnv()
	return cfg, nil
}

func mergeConfig(dst, src *Config) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Environment != "" {
		dst.Environment = src.Environment
	}
	if src.TimeoutMs > 0 {
		dst.TimeoutMs = src.TimeoutMs
	}
	if src.Debug {
		dst.Debug = true
	}
	if src.StoragePath != "" {
		dst.StoragePath = src.StoragePath
	}
}

func (c *Config) overrideFromEnv() {
	if key := os.Getenv("FEEDBACKKIT_API_KEY"); key != "" {
		c.APIKey = key
	}
	if base := os.Getenv("FEEDBACKKIT_BASE_URL"); base != "" {
		c.BaseURL = base
	}
	if env := os.Getenv("FEEDBACKKIT_ENV"); env != "" {
		c.Environment = env
	}
	if ms := os.Getenv("FEEDBACKKIT_TIMEOUT_MS"); ms != "" {
		if parsed, err := strconv.Atoi(ms); err == nil && parsed > 0 {
			c.TimeoutMs = parsed
		}
	}
	if debug := os.Getenv("FEEDBACKKIT_DEBUG"); debug != "" {
		c.Debug = debug == "1" || debug == "true"
	}
	if path := os.Getenv("FEEDBACKKIT_STORAGE_PATH"); path != "" {
		c.StoragePath = path
	}
}

// ClientConfig converts the CLI configuration into an SDK configuration.
// An explicit base URL wins over the environment preset.
func (c *Config) ClientConfig() feedbackkit.Config {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = feedbackkit.Environment(c.Environment).BaseURL()
	}
	return feedbackkit.Config{
		APIKey:      c.APIKey,
		BaseURL:     baseURL,
		Timeout:     time.Duration(c.TimeoutMs) * time.Millisecond,
		Debug:       c.Debug,
		StoragePath: c.StoragePath,
	}
}
