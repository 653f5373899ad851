// Package config handles configuration for highlight-gallery.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/highlight-gallery/pkg/core"
	"github.com/devicelab-dev/highlight-gallery/pkg/gallery"
)

// Config represents the optional tree layout overrides (gallery.yaml).
// Absent fields keep the default layout, so the zero Config is valid.
type Config struct {
	Marker     string `yaml:"model_marker"` // substring identifying the model segment
	SceneIndex *int   `yaml:"scene_index"`  // segment index of the scene
	TaskOffset *int   `yaml:"task_offset"`  // task position relative to the model segment
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, core.ErrConfigParse.WithCause(err)
	}

	if cfg.SceneIndex != nil && *cfg.SceneIndex < 0 {
		return nil, core.ErrConfigValue.WithDetails(map[string]interface{}{
			"scene_index": *cfg.SceneIndex,
		})
	}

	// A zero offset would make the task segment the model segment itself.
	if cfg.TaskOffset != nil && *cfg.TaskOffset == 0 {
		return nil, core.ErrConfigValue.WithDetails(map[string]interface{}{
			"task_offset": *cfg.TaskOffset,
		})
	}

	return &cfg, nil
}

// LoadFromDir looks for gallery.yaml or gallery.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try gallery.yaml first
	configPath := filepath.Join(dir, "gallery.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try gallery.yml
	configPath = filepath.Join(dir, "gallery.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// Layout resolves the configured overrides against the default tree layout.
func (c *Config) Layout() gallery.Layout {
	layout := gallery.DefaultLayout()
	if c.Marker != "" {
		layout.Marker = c.Marker
	}
	if c.SceneIndex != nil {
		layout.SceneIndex = *c.SceneIndex
	}
	if c.TaskOffset != nil {
		layout.TaskOffset = *c.TaskOffset
	}
	return layout
}
