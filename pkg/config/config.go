// Package config loads site and instrument configuration for WBGT
// batch runs from YAML or TOML files.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	Load() (*Config, error)
}

// Config is the complete configuration structure
type Config struct {
	Site Site `yaml:"site" toml:"site"`
}

// Site describes the observation site and instrument setup shared by
// every record in a run.
type Site struct {
	Latitude  float64 `yaml:"latitude" toml:"latitude"`
	Longitude float64 `yaml:"longitude" toml:"longitude"`
	GMTOffset int     `yaml:"gmt_offset" toml:"gmt_offset"`
	AvgPeriod int     `yaml:"avg_period" toml:"avg_period"`

	WindHeight    float64 `yaml:"wind_height" toml:"wind_height"`
	Urban         bool    `yaml:"urban" toml:"urban"`
	MinWindSpeed  float64 `yaml:"min_wind_speed" toml:"min_wind_speed"`
	GlobeDiameter float64 `yaml:"globe_diameter" toml:"globe_diameter"`

	// SolarModel selects the solar position model: "almanac" (default)
	// or "meeus".
	SolarModel string `yaml:"solar_model" toml:"solar_model"`
}

// Validate checks the site coordinates and instrument geometry.
func (s *Site) Validate() error {
	if s.Latitude < -90.0 || s.Latitude > 90.0 {
		return fmt.Errorf("latitude %v out of range [-90,90]", s.Latitude)
	}
	if s.Longitude < -180.0 || s.Longitude > 180.0 {
		return fmt.Errorf("longitude %v out of range [-180,180]", s.Longitude)
	}
	if s.WindHeight < 0.0 {
		return fmt.Errorf("wind measurement height %v must not be negative", s.WindHeight)
	}
	if s.GlobeDiameter < 0.0 {
		return fmt.Errorf("globe diameter %v must not be negative", s.GlobeDiameter)
	}
	switch s.SolarModel {
	case "", "almanac", "meeus":
	default:
		return fmt.Errorf("unknown solar model %q", s.SolarModel)
	}
	return nil
}

// NewProvider returns a Provider for the file, selected by extension:
// .yaml/.yml or .toml.
func NewProvider(path string) (Provider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLProvider(path), nil
	case ".toml":
		return NewTOMLProvider(path), nil
	default:
		return nil, fmt.Errorf("unsupported config file type %q: use .yaml, .yml, or .toml", path)
	}
}
