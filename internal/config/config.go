// Application configuration loaded from an optional YAML file
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable application settings.
type Config struct {
	// PreviewDelayMS is the debounce delay between a history change and
	// the replay it triggers.
	PreviewDelayMS int `yaml:"preview_delay_ms"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Window Window `yaml:"window"`
}

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		PreviewDelayMS: 200,
		LogLevel:       "info",
		Window:         Window{Width: 1600, Height: 1000},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults; a malformed or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PreviewDelayMS < 0 {
		return fmt.Errorf("preview_delay_ms must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level: %q", c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive")
	}
	return nil
}

// PreviewDelay returns the debounce delay as a duration.
func (c Config) PreviewDelay() time.Duration {
	return time.Duration(c.PreviewDelayMS) * time.Millisecond
}
