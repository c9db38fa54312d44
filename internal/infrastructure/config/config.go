// Package config loads and persists clausectl's client settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clauseguard/clausectl/pkg/domain/search"
)

const (
	configDirName  = "clausectl"
	configFileName = "config.yaml"

	// EnvServerURL overrides the configured server URL.
	EnvServerURL = "CLAUSEGUARD_URL"

	defaultServerURL = "http://localhost:8000"
)

// Config stores client preferences. The theme is owned here as well; the
// rest of the application treats it as an opaque get/set preference.
type Config struct {
	ServerURL   string `yaml:"server_url"`
	Theme       string `yaml:"theme"`
	WatchDir    string `yaml:"watch_dir"`
	DefaultTopK int    `yaml:"default_top_k"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ServerURL:   defaultServerURL,
		Theme:       "dark",
		DefaultTopK: search.DefaultTopK,
	}
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the config file, returning defaults when it does not exist.
// The server URL environment override is applied last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if url := os.Getenv(EnvServerURL); url != "" {
		cfg.ServerURL = url
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.DefaultTopK == 0 {
		cfg.DefaultTopK = search.DefaultTopK
	}
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
