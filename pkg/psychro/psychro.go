// Package psychro provides closed-form psychrometric and transport
// property correlations for moist air. Temperatures are in kelvin and
// pressures in millibars unless noted otherwise. The correlations do
// not validate their input range: outside the published fit ranges
// they extrapolate smoothly but without physical validation.
package psychro

import "math"

// Physical constants for dry air and water vapor
const (
	Cp      = 1003.5                  // specific heat of dry air at constant pressure (J/(kg·K))
	MAir    = 28.97                   // molar mass of dry air (g/mol)
	MH2O    = 18.015                  // molar mass of water (g/mol)
	RGas    = 8314.34                 // universal gas constant (J/(kmol·K))
	RAir    = RGas / MAir             // gas constant of dry air (J/(kg·K))
	CpRatio = Cp * MAir / MH2O        // converts vapor pressure deficit to temperature (J/(kg·K))
	Prandtl = Cp / (Cp + 1.25*RAir)   // Prandtl number of air, ~0.737
)

// SaturationVaporPressure returns the saturation vapor pressure in mb
// over liquid water (ice=false) or over ice (ice=true), using Buck's
// (1981) approximation of Wexler's formulae. Includes the 1.004
// moist-air enhancement factor appropriate for pressures above 800 mb.
func SaturationVaporPressure(tk float64, ice bool) float64 {
	var es float64
	if ice {
		y := (tk - 273.15) / (tk - 0.6)
		es = 6.1115 * math.Exp(22.452*y)
	} else {
		y := (tk - 273.15) / (tk - 32.18)
		es = 6.1121 * math.Exp(17.502*y)
	}
	return 1.004 * es
}

// DewPoint returns the dew point (frost=false) or frost point
// (frost=true) temperature in K for a vapor pressure e in mb. It is
// the exact inverse of SaturationVaporPressure.
func DewPoint(e float64, frost bool) float64 {
	if frost {
		z := math.Log(e / (6.1115 * 1.004))
		return 273.15 + 272.55*z/(22.452-z)
	}
	z := math.Log(e / (6.1121 * 1.004))
	return 273.15 + 240.97*z/(17.502-z)
}

// Viscosity returns the dynamic viscosity of air in kg/(m·s) from the
// Chapman-Enskog kinetic theory correlation (Bird, Stewart, and
// Lightfoot, p. 23).
func Viscosity(tk float64) float64 {
	const (
		sigma    = 3.617 // collision diameter (Å)
		epsKappa = 97.0  // Lennard-Jones energy parameter (K)
	)
	tr := tk / epsKappa
	omega := (tr-2.9)/0.4*(-0.034) + 1.048
	return 2.6693e-6 * math.Sqrt(MAir*tk) / (sigma * sigma * omega)
}

// ThermalConductivity returns the thermal conductivity of air in
// W/(m·K) via the modified Eucken relation (BSL, p. 257).
func ThermalConductivity(tk float64) float64 {
	return (Cp + 1.25*RAir) * Viscosity(tk)
}

// Diffusivity returns the diffusivity of water vapor in air in m²/s
// for air temperature tk (K) and pressure p (mb), from the
// Slattery-Bird low-pressure correlation (BSL, p. 505).
func Diffusivity(tk, p float64) float64 {
	const (
		pcritAir = 36.4
		pcritH2O = 218.0
		tcritAir = 132.0
		tcritH2O = 647.3
		a        = 3.640e-4
		b        = 2.334
	)
	pcrit13 := math.Pow(pcritAir*pcritH2O, 1.0/3.0)
	tcrit512 := math.Pow(tcritAir*tcritH2O, 5.0/12.0)
	tcrit12 := math.Sqrt(tcritAir * tcritH2O)
	mmix := math.Sqrt(1.0/MAir + 1.0/MH2O)
	patm := p / 1013.25

	return a * math.Pow(tk/tcrit12, b) * pcrit13 * tcrit512 * mmix / patm * 1e-4
}

// LatentHeat returns the heat of evaporation of water in J/kg. The
// linear fit is valid for 283-313 K (Van Wylen and Sonntag,
// Table A.1.1).
func LatentHeat(tk float64) float64 {
	return (313.15-tk)/30.0*(-71100.0) + 2.4073e6
}

// AtmosphericEmissivity returns the clear-sky atmospheric emissivity
// as a function of air temperature tk (K) and relative humidity rh
// (fraction, 0-1), following Oke (2nd edition, p. 373).
func AtmosphericEmissivity(tk, rh float64) float64 {
	e := rh * SaturationVaporPressure(tk, false)
	return 0.575 * math.Pow(e, 0.143)
}
