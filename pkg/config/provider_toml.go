package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLProvider implements Provider for TOML configuration files
type TOMLProvider struct {
	path string
}

// NewTOMLProvider creates a new TOML configuration provider
func NewTOMLProvider(path string) *TOMLProvider {
	return &TOMLProvider{path: path}
}

// Load reads and validates the configuration file
func (p *TOMLProvider) Load() (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(p.path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing TOML config %s: %w", p.path, err)
	}
	if err := cfg.Site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config in %s: %w", p.path, err)
	}
	return &cfg, nil
}
