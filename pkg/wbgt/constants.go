package wbgt

// Physical constants
const (
	SolarConstant   = 1367.0   // top-of-atmosphere solar irradiance at 1 AU (W/m²)
	stefanBoltzmann = 5.6696e-8 // Stefan-Boltzmann constant (W/(m²·K⁴))
)

// Wet wick geometry and radiative properties (Liljegren et al. 2008)
const (
	wickEmissivity = 0.95
	wickAlbedo     = 0.4
	wickDiameter   = 0.007  // m
	wickLength     = 0.0254 // m
)

// Black globe properties. DefaultGlobeDiameter matches the standard
// 6-inch globe thermometer.
const (
	globeEmissivity      = 0.95
	globeAlbedo          = 0.05
	DefaultGlobeDiameter = 0.0508 // m
)

// Ground surface properties
const (
	surfaceEmissivity = 0.999
	surfaceAlbedo     = 0.45
)

// Computational and physical limits
const (
	// CosZenithMin is the cosine zenith angle below which the sun is
	// treated as below the horizon for irradiance purposes.
	CosZenithMin = 0.00873

	// NormSolarMax caps the ratio of measured to top-of-atmosphere
	// irradiance, absorbing solar sensor calibration error.
	NormSolarMax = 0.85

	// ReferenceHeight is the height the wind speed is extrapolated to (m).
	ReferenceHeight = 2.0

	// MinWindSpeed is the hard floor on wind speed (m/s); the transfer
	// correlations are not valid in still air.
	MinWindSpeed = 0.13

	// Solver parameters: each fixed-point step blends the previous
	// estimate with the new one (damping) to keep the iteration from
	// oscillating, and the iteration converges when successive raw
	// estimates differ by less than the tolerance.
	convergenceTol = 0.02 // K
	maxIterations  = 50
	dampingOld     = 0.9
	dampingNew     = 0.1

	// FailedTemp is the sentinel reported when a solver fails to
	// converge within the iteration cap.
	FailedTemp = -9999.0
)
