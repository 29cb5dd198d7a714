package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfig tunes the matching engine and its embedding model.
type EngineConfig struct {
	Variant    string  `yaml:"variant"`
	VectorDim  int     `yaml:"vector_dim"`
	WindowSize int     `yaml:"window_size"`
	MinCount   int     `yaml:"min_count"`
	Epochs     int     `yaml:"epochs"`
	Threshold  float64 `yaml:"threshold"`
	Seed       int64   `yaml:"seed"`
	Fallback   string  `yaml:"fallback,omitempty"`
}

// CatalogConfig points at the FAQ catalog file.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Engine    EngineConfig  `yaml:"engine"`
	Catalog   CatalogConfig `yaml:"catalog"`
	Stopwords []string      `yaml:"stopwords,omitempty"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/faqbot/config.yaml.
// If neither exists, it writes defaults to ~/.config/faqbot/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "faqbot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Catalog: CatalogConfig{Path: "faq_data.json"},
	}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Engine.Variant == "" {
		cfg.Engine.Variant = "whole-token"
	}
	if cfg.Engine.VectorDim == 0 {
		cfg.Engine.VectorDim = 100
	}
	if cfg.Engine.WindowSize == 0 {
		cfg.Engine.WindowSize = 5
	}
	if cfg.Engine.MinCount == 0 {
		cfg.Engine.MinCount = 1
	}
	if cfg.Engine.Epochs == 0 {
		cfg.Engine.Epochs = 15
	}
	if cfg.Engine.Threshold == 0 {
		cfg.Engine.Threshold = 0.3
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = 1
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "faq_data.json"
	}
}
