package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName             = "hdim"
	defaultInputDelayMS = 50
)

type Config struct {
	Debug bool `koanf:"debug"` // write a debug log to the XDG state directory

	// Viewer behavior
	Viewer ViewerConfig `koanf:"viewer"`
}

// ViewerConfig holds zoom, scroll and input settings.
type ViewerConfig struct {
	InitialZoom      float64 `koanf:"initial_zoom"`      // source pixels per cell; 0 fits the image (default: 0)
	ZoomStep         float64 `koanf:"zoom_step"`         // zoom out multiplier, zoom in uses 1/step (default: 1.25)
	ScrollStep       int     `koanf:"scroll_step"`       // cells per scroll key (default: 1)
	PageStep         int     `koanf:"page_step"`         // cells per page scroll key (default: 10)
	InputDelayMS     *int    `koanf:"input_delay_ms"`    // minimum time between processed keys, 0 disables (default: 50)
	MaxDimension     int     `koanf:"max_dimension"`     // downscale larger images at load, 0 disables (default: 0)
	RememberViewport *bool   `koanf:"remember_viewport"` // restore zoom and position per image (default: true)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads config files in order (last wins). Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/hdim/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// GetViewerConfig returns the viewer configuration with defaults applied.
func (c *Config) GetViewerConfig() ViewerConfig {
	cfg := c.Viewer

	// Apply defaults
	if cfg.InitialZoom < 0 {
		cfg.InitialZoom = 0
	}
	if cfg.ZoomStep <= 1 {
		cfg.ZoomStep = 1.25
	}
	if cfg.ScrollStep <= 0 {
		cfg.ScrollStep = 1
	}
	if cfg.PageStep <= 0 {
		cfg.PageStep = 10
	}
	if cfg.InputDelayMS == nil || *cfg.InputDelayMS < 0 {
		delay := defaultInputDelayMS
		cfg.InputDelayMS = &delay
	}
	if cfg.MaxDimension < 0 {
		cfg.MaxDimension = 0
	}
	if cfg.RememberViewport == nil {
		remember := true
		cfg.RememberViewport = &remember
	}

	return cfg
}

// InputDelay returns the minimum time between processed key presses.
func (v ViewerConfig) InputDelay() time.Duration {
	ms := defaultInputDelayMS
	if v.InputDelayMS != nil && *v.InputDelayMS >= 0 {
		ms = *v.InputDelayMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Remember reports whether viewport state should be persisted per image.
func (v ViewerConfig) Remember() bool {
	return v.RememberViewport == nil || *v.RememberViewport
}
