// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HistoryCap    int    `toml:"history_cap"`
	WindowWidth   int    `toml:"window_width"`
	WindowHeight  int    `toml:"window_height"`
	ThumbnailSize int    `toml:"thumbnail_size"`
	LogLevel      string `toml:"log_level"`
}

func Default() Config {
	return Config{
		HistoryCap:    50,
		WindowWidth:   1200,
		WindowHeight:  800,
		ThumbnailSize: 100,
		LogLevel:      "info",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "flipbook-creator", "config.toml"), nil
}

// Load reads the config at path, filling unset fields with defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.HistoryCap < 1 {
		cfg.HistoryCap = Default().HistoryCap
	}
	if cfg.WindowWidth < 400 || cfg.WindowHeight < 300 {
		cfg.WindowWidth = Default().WindowWidth
		cfg.WindowHeight = Default().WindowHeight
	}
	if cfg.ThumbnailSize < 64 || cfg.ThumbnailSize > 256 {
		cfg.ThumbnailSize = Default().ThumbnailSize
	}
	return cfg, nil
}
