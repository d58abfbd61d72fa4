// Package config holds the persisted application configuration: config.json
// with the last opened dataset folder, and UI preferences stored through Fyne.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ytget/image-labeler/internal/platform"
)

// DefaultConfigFile is the config file name, resolved against the working directory
const DefaultConfigFile = "config.json"

// ErrConfigParse is returned when config.json exists but is not valid JSON
var ErrConfigParse = errors.New("malformed config file")

// Config is the content of config.json
type Config struct {
	DefaultDataPath string `json:"default_data_path"`

	path string
}

// Load reads the config file at path. On first run the file does not exist; it
// is created with an empty default_data_path.
func Load(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

// Path returns the file the config is persisted to
func (c *Config) Path() string {
	return c.path
}

// Save writes the config file
func (c *Config) Save() error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := platform.AtomicWriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// SetDefaultDataPath records the dataset folder and persists the config
func (c *Config) SetDefaultDataPath(dir string) error {
	c.DefaultDataPath = dir
	return c.Save()
}
