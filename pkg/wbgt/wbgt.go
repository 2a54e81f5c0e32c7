// Package wbgt computes the outdoor wet bulb globe temperature from
// standard meteorological measurements, following Liljegren, Carhart,
// Lawday, Tschopp, and Sharp: Modeling the Wet Bulb Globe Temperature
// Using Standard Meteorological Measurements (JOEH 5:10, 2008). The
// globe and natural wet bulb temperatures are predicted from coupled
// heat-balance equations and combined with the dry bulb as
// Twbg = 0.1*Tair + 0.2*Tg + 0.7*Tnwb. Every calculation is a pure
// function of its inputs: there is no shared state, and batches of
// records may be evaluated concurrently.
package wbgt

import (
	"fmt"
	"math"

	"github.com/chrissnell/wbgt/pkg/solarpos"
)

// Input is one meteorological record. Date and time are in local
// standard time; GMTOffset is the LST-GMT difference in hours
// (negative in the USA). AvgPeriod is the averaging time of the
// measurements in minutes; the observation is centered on it when the
// solar geometry is computed.
type Input struct {
	Year   int // four-digit year
	Month  int // 1-12, or 0 if Day holds a day of year
	Day    int // day of month, or day of year when Month == 0
	Hour   int // local standard time
	Minute int
	Second int

	GMTOffset int // LST-GMT difference, hours
	AvgPeriod int // averaging time of the met inputs, minutes

	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive

	Solar      float64 // measured solar irradiance (W/m²)
	Pressure   float64 // barometric pressure (mb)
	AirTemp    float64 // dry bulb temperature (degC)
	RelHum     float64 // relative humidity (%)
	WindSpeed  float64 // wind speed (m/s)
	WindHeight float64 // height of the wind measurement (m)
	DeltaT     float64 // vertical temperature difference, upper minus lower (degC)

	Urban         bool    // urban (true) or rural wind profile exponents
	MinWindSpeed  float64 // floor on wind speed (m/s); raised to MinWindSpeed if lower
	GlobeDiameter float64 // globe diameter (m); 0 selects DefaultGlobeDiameter

	// Positioner selects the solar position model; nil selects the
	// built-in low-precision almanac model.
	Positioner solarpos.Positioner
}

// Result holds the computed temperatures and diagnostics for one
// record. When Converged is false the composite WBGT is FailedTemp and
// at least one of the globe or natural wet bulb solves failed; the
// record should be skipped or logged, never trusted.
type Result struct {
	EstimatedSpeed float64 // wind speed at the 2 m reference height (m/s)
	AdjustedSolar  float64 // solar irradiance after partitioning (W/m²)
	GlobeTemp      float64 // globe temperature (degC)
	NaturalWetBulb float64 // natural wet bulb temperature (degC)
	PsychroWetBulb float64 // psychrometric wet bulb temperature (degC)
	WBGT           float64 // composite wet bulb globe temperature (degC)
	Converged      bool
}

// Calculate computes the WBGT and its constituent temperatures for a
// single record. Errors are returned for invalid inputs (bad
// coordinates or dates, undefined stability regimes); solver
// non-convergence is reported through Result.Converged so one bad
// record cannot abort a batch.
func Calculate(in Input) (Result, error) {
	minSpeed := math.Max(in.MinWindSpeed, MinWindSpeed)

	pos := in.Positioner
	if pos == nil {
		pos = solarpos.Almanac{}
	}

	// shift local time to GMT and center it on the averaging period
	hourGMT := float64(in.Hour-in.GMTOffset) +
		(float64(in.Minute)-0.5*float64(in.AvgPeriod)+float64(in.Second)/60.0)/60.0
	day := float64(in.Day) + hourGMT/24.0

	sp, err := solarParameters(pos, in.Year, in.Month, day, in.Latitude, in.Longitude, in.Solar)
	if err != nil {
		return Result{}, fmt.Errorf("solar geometry: %w", err)
	}

	var estSpeed float64
	if in.WindHeight != ReferenceHeight {
		class, err := StabilityClass(sp.CosZenith > 0.0, in.WindSpeed, sp.Irradiance, in.DeltaT)
		if err != nil {
			return Result{}, fmt.Errorf("stability class: %w", err)
		}
		estSpeed, err = EstimateWindSpeed(in.WindSpeed, in.WindHeight, class, in.Urban, minSpeed)
		if err != nil {
			return Result{}, fmt.Errorf("wind extrapolation: %w", err)
		}
	} else {
		estSpeed = math.Max(in.WindSpeed, minSpeed)
	}

	diameter := in.GlobeDiameter
	if diameter == 0.0 {
		diameter = DefaultGlobeDiameter
	}

	tk := in.AirTemp + 273.15
	rh := 0.01 * in.RelHum

	tg, okGlobe := GlobeTemperature(tk, rh, in.Pressure, estSpeed, sp.Irradiance, sp.DirectFraction, sp.CosZenith, diameter)
	tnwb, okNwb := WetBulbTemperature(tk, rh, in.Pressure, estSpeed, sp.Irradiance, sp.DirectFraction, sp.CosZenith, true)
	tpsy, _ := WetBulbTemperature(tk, rh, in.Pressure, estSpeed, sp.Irradiance, sp.DirectFraction, sp.CosZenith, false)

	res := Result{
		EstimatedSpeed: estSpeed,
		AdjustedSolar:  sp.Irradiance,
		GlobeTemp:      tg,
		NaturalWetBulb: tnwb,
		PsychroWetBulb: tpsy,
		WBGT:           0.1*in.AirTemp + 0.2*tg + 0.7*tnwb,
		Converged:      okGlobe && okNwb,
	}
	if !res.Converged {
		res.WBGT = FailedTemp
	}
	return res, nil
}
