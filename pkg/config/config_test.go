package config

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlConfig = `site:
  latitude: 35.0
  longitude: -98.0
  gmt_offset: -6
  avg_period: 5
  wind_height: 10.0
  urban: false
  min_wind_speed: 0.5
  solar_model: meeus
`

const tomlConfig = `[site]
latitude = 35.0
longitude = -98.0
gmt_offset = -6
avg_period = 5
wind_height = 10.0
urban = false
min_wind_speed = 0.5
solar_model = "meeus"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestProvidersAgree(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "site.yaml", yamlConfig},
		{"toml", "site.toml", tomlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(writeTemp(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			cfg, err := provider.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			site := cfg.Site
			if site.Latitude != 35.0 || site.Longitude != -98.0 {
				t.Errorf("coordinates = %v, %v", site.Latitude, site.Longitude)
			}
			if site.GMTOffset != -6 || site.AvgPeriod != 5 {
				t.Errorf("time config = %d, %d", site.GMTOffset, site.AvgPeriod)
			}
			if site.WindHeight != 10.0 || site.Urban || site.MinWindSpeed != 0.5 {
				t.Errorf("wind config = %+v", site)
			}
			if site.SolarModel != "meeus" {
				t.Errorf("solar model = %q", site.SolarModel)
			}
		})
	}
}

func TestNewProviderRejectsUnknownExtension(t *testing.T) {
	if _, err := NewProvider("site.json"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadRejectsBadSite(t *testing.T) {
	bad := `site:
  latitude: 95.0
  longitude: 0.0
`
	provider := NewYAMLProvider(writeTemp(t, "bad.yaml", bad))
	if _, err := provider.Load(); err == nil {
		t.Error("expected validation error for latitude 95")
	}
}

func TestSiteValidate(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		wantErr bool
	}{
		{"valid", Site{Latitude: 35, Longitude: -98, WindHeight: 2}, false},
		{"bad longitude", Site{Latitude: 35, Longitude: 181}, true},
		{"negative wind height", Site{Latitude: 35, Longitude: -98, WindHeight: -1}, true},
		{"negative globe diameter", Site{Latitude: 35, Longitude: -98, GlobeDiameter: -0.05}, true},
		{"unknown solar model", Site{Latitude: 35, Longitude: -98, SolarModel: "spa"}, true},
		{"meeus solar model", Site{Latitude: 35, Longitude: -98, SolarModel: "meeus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
