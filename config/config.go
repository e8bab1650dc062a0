package config

import (
	"fmt"
	"os"

	"chapterize/detect"
	"chapterize/segment"

	"gopkg.in/yaml.v3"
)

// Config aggregates the engine tunables. Zero-valued fields fall back to
// the package defaults inside each component, so a partial yaml file only
// overrides what it names.
type Config struct {
	Detect  detect.Config  `yaml:"detect"`
	Segment segment.Config `yaml:"segment"`
}

func Default() *Config {
	return &Config{
		Detect:  detect.DefaultConfig(),
		Segment: segment.DefaultConfig(),
	}
}

// Load reads a yaml file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
