package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	path string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(path string) *YAMLProvider {
	return &YAMLProvider{path: path}
}

// Load reads and validates the configuration file
func (p *YAMLProvider) Load() (*Config, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML config %s: %w", p.path, err)
	}
	if err := cfg.Site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config in %s: %w", p.path, err)
	}
	return &cfg, nil
}
