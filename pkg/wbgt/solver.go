package wbgt

import (
	"math"

	"github.com/chrissnell/wbgt/pkg/psychro"
)

// solverPhase tracks a fixed-point solve through its lifecycle.
type solverPhase int

const (
	phaseInitializing solverPhase = iota
	phaseIterating
	phaseConverged
	phaseFailed
)

// iteration holds the transient state of one damped fixed-point solve.
// It is created, driven, and discarded entirely within a single solver
// call; nothing is shared between calls.
type iteration struct {
	phase    solverPhase
	estimate float64 // damped temperature estimate fed into the next step (K)
	result   float64 // last raw (undamped) estimate (K)
	steps    int
}

func newIteration(seed float64) *iteration {
	return &iteration{phase: phaseInitializing, estimate: seed}
}

func (it *iteration) running() bool {
	return it.phase == phaseInitializing || it.phase == phaseIterating
}

// step feeds the next raw estimate into the iteration. Convergence is
// tested against the undamped estimate before damping is applied, and
// the converged value is the raw estimate, matching the reference
// implementation bit for bit in iteration behavior.
func (it *iteration) step(next float64) {
	it.phase = phaseIterating
	it.steps++
	it.result = next

	converged := math.Abs(next-it.estimate) < convergenceTol
	it.estimate = dampingOld*it.estimate + dampingNew*next

	switch {
	case converged:
		it.phase = phaseConverged
	case it.steps >= maxIterations:
		it.phase = phaseFailed
	}
}

// sphereConvection returns the convective heat transfer coefficient in
// W/(m²·K) for flow around a sphere (Bird, Stewart, and Lightfoot,
// p. 409).
func sphereConvection(diameter, tk, pres, speed float64) float64 {
	density := pres * 100.0 / (psychro.RAir * tk)
	re := speed * density * diameter / psychro.Viscosity(tk)
	nu := 2.0 + 0.6*math.Sqrt(re)*math.Pow(psychro.Prandtl, 1.0/3.0)
	return nu * psychro.ThermalConductivity(tk) / diameter
}

// cylinderConvection returns the convective heat transfer coefficient
// in W/(m²·K) for a long cylinder in cross flow (Bedingfield and
// Drew, eqn 32).
func cylinderConvection(diameter, tk, pres, speed float64) float64 {
	const (
		a = 0.56
		b = 0.281
		c = 0.4
	)
	density := pres * 100.0 / (psychro.RAir * tk)
	re := speed * density * diameter / psychro.Viscosity(tk)
	nu := b * math.Pow(re, 1.0-c) * math.Pow(psychro.Prandtl, 1.0-a)
	return nu * psychro.ThermalConductivity(tk) / diameter
}

// GlobeTemperature solves the radiative-convective energy balance of a
// black globe thermometer by damped fixed-point iteration, seeded with
// the air temperature. Inputs are air temperature tk (K), relative
// humidity rh (fraction), pressure (mb), wind speed (m/s), adjusted
// solar irradiance (W/m²), direct-beam fraction, and cosine zenith
// angle. A zero diameter selects DefaultGlobeDiameter. Returns the
// globe temperature in degC, or (FailedTemp, false) if the iteration
// does not converge within the cap.
func GlobeTemperature(tk, rh, pres, speed, solar, fdir, cza, diameter float64) (float64, bool) {
	if diameter == 0.0 {
		diameter = DefaultGlobeDiameter
	}

	tsfc := tk
	skyTerm := 0.5 * (psychro.AtmosphericEmissivity(tk, rh)*pow4(tk) + surfaceEmissivity*pow4(tsfc))
	solarTerm := solar / (2.0 * stefanBoltzmann * globeEmissivity) * (1.0 - globeAlbedo) *
		(fdir*(1.0/(2.0*cza)-1.0) + 1.0 + surfaceAlbedo)

	it := newIteration(tk)
	for it.running() {
		tref := 0.5 * (it.estimate + tk)
		h := sphereConvection(diameter, tref, pres, speed)
		next := math.Pow(
			skyTerm-h/(stefanBoltzmann*globeEmissivity)*(it.estimate-tk)+solarTerm,
			0.25)
		it.step(next)
	}

	if it.phase != phaseConverged {
		return FailedTemp, false
	}
	return it.result - 273.15, true
}

// WetBulbTemperature solves the evaporative energy balance of a wetted
// wick by damped fixed-point iteration, seeded with the dew point.
// With radiative true the wick absorbs atmospheric, surface, and solar
// radiation (natural wet bulb); with radiative false the balance is
// purely evaporative-convective (psychrometric wet bulb). Inputs are
// as for GlobeTemperature. Returns the wet bulb temperature in degC,
// or (FailedTemp, false) on non-convergence.
func WetBulbTemperature(tk, rh, pres, speed, solar, fdir, cza float64, radiative bool) (float64, bool) {
	// mass transfer exponent, from Bedingfield and Drew
	const a = 0.56

	tsfc := tk
	sza := math.Acos(cza)
	eair := rh * psychro.SaturationVaporPressure(tk, false)
	tdew := psychro.DewPoint(eair, false)

	it := newIteration(tdew)
	for it.running() {
		tref := 0.5 * (it.estimate + tk)

		heat := 0.0
		if radiative {
			fatm := stefanBoltzmann*wickEmissivity*
				(0.5*(psychro.AtmosphericEmissivity(tk, rh)*pow4(tk)+surfaceEmissivity*pow4(tsfc))-pow4(it.estimate)) +
				(1.0-wickAlbedo)*solar*
					((1.0-fdir)*(1.0+0.25*wickDiameter/wickLength)+
						fdir*(math.Tan(sza)/math.Pi+0.25*wickDiameter/wickLength)+
						surfaceAlbedo)
			heat = fatm / cylinderConvection(wickDiameter, tref, pres, speed)
		}

		ewick := psychro.SaturationVaporPressure(it.estimate, false)
		density := pres * 100.0 / (psychro.RAir * tref)
		sc := psychro.Viscosity(tref) / (density * psychro.Diffusivity(tref, pres))

		next := tk -
			psychro.LatentHeat(tref)/psychro.CpRatio*
				(ewick-eair)/(pres-ewick)*
				math.Pow(psychro.Prandtl/sc, a) +
			heat
		it.step(next)
	}

	if it.phase != phaseConverged {
		return FailedTemp, false
	}
	return it.result - 273.15, true
}

func pow4(x float64) float64 {
	x2 := x * x
	return x2 * x2
}
