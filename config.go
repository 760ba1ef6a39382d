package lumen

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Designer bool          `yaml:"designer"` // build debug glyphs for lights
	Logging  LoggingConfig `yaml:"logging"`
	Scene    string        `yaml:"scene"` // optional scene file loaded at startup
	Ticks    int           `yaml:"ticks"`
	Step     time.Duration `yaml:"step"` // fixed frame step, e.g. "16ms"; zero follows the wall clock
}

type LoggingConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Prefix: "lumen"},
		Ticks:   1,
	}
}

// ParseConfig reads a YAML document over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Ticks < 0 {
		return Config{}, fmt.Errorf("parse config: ticks must not be negative, got %d", cfg.Ticks)
	}
	if cfg.Step < 0 {
		return Config{}, fmt.Errorf("parse config: step must not be negative, got %s", cfg.Step)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
