package wbgt

import (
	"math"
	"testing"
)

func TestPartitionIrradianceSunBelowHorizon(t *testing.T) {
	tests := []struct {
		name string
		cza  float64
	}{
		{"just below threshold", 0.008},
		{"zero", 0.0},
		{"negative", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adjusted, fdir := PartitionIrradiance(tt.cza, 1.0, 500.0)
			if adjusted != 0.0 || fdir != 0.0 {
				t.Errorf("cza=%v: got adjusted=%v fdir=%v, want 0, 0", tt.cza, adjusted, fdir)
			}
		})
	}
}

func TestPartitionIrradianceCapsMiscalibratedSensor(t *testing.T) {
	// A reading far above the top-of-atmosphere bound is rescaled to
	// NormSolarMax of TOA, and the direct fraction clamps at 0.9.
	const cza, dist = 0.8, 1.0
	toa := SolarConstant * cza / (dist * dist)

	adjusted, fdir := PartitionIrradiance(cza, dist, 5000.0)
	if math.Abs(adjusted-NormSolarMax*toa) > 1e-9 {
		t.Errorf("adjusted = %v, want %v", adjusted, NormSolarMax*toa)
	}
	if fdir != 0.9 {
		t.Errorf("fdir = %v, want clamp at 0.9", fdir)
	}
}

func TestPartitionIrradianceTypicalDay(t *testing.T) {
	// 800 W/m² under a high sun is within bounds: the measured value
	// passes through unchanged and roughly 80% arrives as direct beam.
	adjusted, fdir := PartitionIrradiance(0.8, 1.0, 800.0)
	if math.Abs(adjusted-800.0) > 1e-9 {
		t.Errorf("adjusted = %v, want 800 unchanged", adjusted)
	}
	if math.Abs(fdir-0.790) > 0.005 {
		t.Errorf("fdir = %v, want ~0.790", fdir)
	}
}

func TestPartitionIrradianceDirectFractionBounds(t *testing.T) {
	// fdir stays in [0, 0.9] across the full range of sky conditions
	// and Earth-Sun distances.
	for cza := -1.0; cza <= 1.0; cza += 0.05 {
		for _, measured := range []float64{0.0, 50.0, 200.0, 600.0, 1000.0, 1500.0} {
			for _, dist := range []float64{0.983, 1.0, 1.017} {
				_, fdir := PartitionIrradiance(cza, dist, measured)
				if fdir < 0.0 || fdir > 0.9 {
					t.Fatalf("fdir=%v out of [0,0.9] for cza=%v measured=%v dist=%v",
						fdir, cza, measured, dist)
				}
			}
		}
	}
}
