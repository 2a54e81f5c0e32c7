package wbgt

import (
	"math"

	"github.com/chrissnell/wbgt/pkg/solarpos"
)

// SolarParameters describes the solar loading used by the heat-balance
// solvers: the cosine of the solar zenith angle, the measured
// irradiance adjusted for sensor miscalibration, and the fraction of
// that irradiance arriving as direct beam.
type SolarParameters struct {
	CosZenith      float64 // cosine of solar zenith angle, [-1,1]
	Irradiance     float64 // adjusted solar irradiance (W/m²)
	DirectFraction float64 // direct-beam fraction, [0,0.9]
	Distance       float64 // Earth-Sun distance (AU)
}

// PartitionIrradiance normalizes a measured solar irradiance against
// the top-of-atmosphere value for the given solar geometry and
// estimates the direct-beam fraction. When the sun is effectively
// below the horizon (cza < CosZenithMin) both the adjusted irradiance
// and the direct fraction are zero. The normalized irradiance is
// capped at NormSolarMax and the measured value rescaled to be
// consistent with the cap.
func PartitionIrradiance(cza, distance, measured float64) (adjusted, fdir float64) {
	toa := SolarConstant * math.Max(0.0, cza) / (distance * distance)
	if cza < CosZenithMin {
		toa = 0.0
	}
	if toa <= 0.0 {
		return 0.0, 0.0
	}

	norm := math.Min(measured/toa, NormSolarMax)
	adjusted = norm * toa

	if norm > 0.0 {
		fdir = math.Exp(3.0 - 1.34*norm - 1.65/norm)
		fdir = math.Max(math.Min(fdir, 0.9), 0.0)
	}
	return adjusted, fdir
}

// solarParameters runs the configured position model for the instant
// and site, then partitions the measured irradiance.
func solarParameters(pos solarpos.Positioner, year, month int, day, lat, lon, measured float64) (SolarParameters, error) {
	p, err := pos.Position(solarpos.Request{
		Year:      year,
		Month:     month,
		Day:       day,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return SolarParameters{}, err
	}

	cza := math.Cos((90.0 - p.Altitude) * math.Pi / 180.0)
	adjusted, fdir := PartitionIrradiance(cza, p.Distance, measured)

	return SolarParameters{
		CosZenith:      cza,
		Irradiance:     adjusted,
		DirectFraction: fdir,
		Distance:       p.Distance,
	}, nil
}
