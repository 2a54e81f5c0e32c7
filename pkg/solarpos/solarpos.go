// Package solarpos computes the apparent position of the Sun for a
// given instant and observation site. Two models are provided behind
// the Positioner interface: Almanac, a low-precision ephemeris from the
// 1990 Astronomical Almanac accurate to about 0.01 degree between 1950
// and 2049, and Meeus, a higher-precision model built on the soniakeys
// implementation of Meeus' solar theory. Callers that only need the
// zenith angle and Earth-Sun distance can treat the two models
// interchangeably.
package solarpos

import (
	"fmt"
	"math"
)

// Request identifies the instant and site for a position calculation.
// The date may be given three ways: year/month/day.fraction,
// year/day-of-year.fraction (Month == 0), or days elapsed since
// 1900 January 0 (Year == 0). Day fractions carry the UT time of day.
type Request struct {
	Year     int     // four-digit Gregorian year, 1950-2049; 0 if using Days1900
	Month    int     // 1-12; 0 if Day holds a day of year
	Day      float64 // day of month or day of year, with UT fraction
	Days1900 float64 // days since 1900 Jan 0 00:00 UT, 18262-54788; used when Year == 0

	Latitude  float64 // geographic latitude, degrees north positive
	Longitude float64 // geographic longitude, degrees east positive
}

// Position is the computed apparent solar position.
type Position struct {
	RightAscension float64 // apparent right ascension, hours [0,24)
	Declination    float64 // apparent declination, degrees
	Altitude       float64 // altitude above horizon, degrees, refraction applied
	Refraction     float64 // refraction correction included in Altitude, degrees
	Azimuth        float64 // azimuth, degrees [0,360), east of north
	Distance       float64 // Earth-Sun distance, AU
}

// Positioner computes solar positions. Implementations must be
// stateless and safe for concurrent use.
type Positioner interface {
	Position(req Request) (Position, error)
}

// New returns the Positioner named by model: "almanac" for the
// low-precision built-in ephemeris or "meeus" for the high-precision
// model.
func New(model string) (Positioner, error) {
	switch model {
	case "", "almanac":
		return Almanac{}, nil
	case "meeus":
		return Meeus{}, nil
	default:
		return nil, fmt.Errorf("unknown solar position model %q", model)
	}
}

// validate checks the request against the supported coordinate and
// date ranges. Site coordinates are checked before any date
// arithmetic.
func validate(req Request) error {
	if req.Latitude < -90.0 || req.Latitude > 90.0 {
		return fmt.Errorf("latitude %v out of range [-90,90]", req.Latitude)
	}
	if req.Longitude < -180.0 || req.Longitude > 180.0 {
		return fmt.Errorf("longitude %v out of range [-180,180]", req.Longitude)
	}

	if req.Year != 0 {
		if req.Year < 1950 || req.Year > 2049 {
			return fmt.Errorf("year %d out of range [1950,2049]", req.Year)
		}
		if req.Month != 0 {
			if req.Month < 1 || req.Month > 12 {
				return fmt.Errorf("month %d out of range [1,12]", req.Month)
			}
			if req.Day < 0.0 || req.Day > 33.0 {
				return fmt.Errorf("day of month %v out of range [0,33]", req.Day)
			}
		} else if req.Day < 0.0 || req.Day > 368.0 {
			return fmt.Errorf("day of year %v out of range [0,368]", req.Day)
		}
		return nil
	}

	if req.Days1900 < 18262.0 || req.Days1900 > 54788.0 {
		return fmt.Errorf("days since 1900 %v out of range [18262,54788]", req.Days1900)
	}
	return nil
}

// dayNumber returns the sequential day of year for a Gregorian
// calendar date, with Jan 1 = 1.
func dayNumber(year, month, day int) int {
	begMonth := [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	leap := (year%4 == 0 && year%100 != 0) || year%400 == 0
	n := begMonth[month] + day
	if leap && month > 2 {
		n++
	}
	return n
}

// refractionCorrection returns the atmospheric refraction correction
// in degrees to be added to the true altitude (degrees), assuming
// standard sea-level pressure and temperature. The rational-polynomial
// and inverse-tangent branches cross over smoothly at 19.225 degrees;
// below -1 degree the correction is zero.
func refractionCorrection(altitude, tanAlt float64) float64 {
	const (
		pressure = 1013.25 // mean sea-level pressure (mb)
		temp     = 15.0    // mean sea-level temperature (degC)
	)

	if altitude < -1.0 || tanAlt == tanAltMax {
		return 0.0
	}
	if altitude < 19.225 {
		r := (0.1594 + altitude*(0.0196+0.00002*altitude)) * pressure
		return r / ((1.0 + altitude*(0.505+0.0845*altitude)) * (273.0 + temp))
	}
	return 0.00452 * (pressure / (273.0 + temp)) / tanAlt
}

// tanAltMax stands in for the tangent at altitudes within 0.00001
// degree of +-90, where tan overflows.
const tanAltMax = 6.0e6

// horizontal converts apparent equatorial coordinates to local
// altitude and azimuth. ra is in hours, dec and latitude in degrees,
// lmst in hours. The returned altitude has the refraction correction
// applied; refraction is also returned separately.
func horizontal(ra, dec, latitude, lmst float64) (altitude, refraction, azimuth float64) {
	localHA := lmst - ra
	if localHA < -12.0 {
		localHA += 24.0
	} else if localHA > 12.0 {
		localHA -= 24.0
	}

	latRad := latitude * math.Pi / 180.0
	haRad := localHA / 24.0 * 2 * math.Pi
	decRad := dec * math.Pi / 180.0

	cosDec := math.Cos(decRad)
	sinDec := math.Sin(decRad)
	cosLat := math.Cos(latRad)
	sinLat := math.Sin(latRad)
	cosHA := math.Cos(haRad)

	altRad := math.Asin(sinDec*sinLat + cosDec*cosHA*cosLat)
	cosAlt := math.Cos(altRad)

	// 1.57079615 rad = 89.99999 degrees; avoid tangent overflow at the zenith
	tanAlt := tanAltMax
	if math.Abs(altRad) < 1.57079615 {
		tanAlt = math.Tan(altRad)
	}

	cosAz := (sinDec*cosLat - cosDec*cosHA*sinLat) / cosAlt
	sinAz := -(cosDec * math.Sin(haRad) / cosAlt)
	azimuth = math.Acos(cosAz) * 180.0 / math.Pi
	if math.Atan2(sinAz, cosAz) < 0.0 {
		azimuth = 360.0 - azimuth
	}

	altitude = altRad * 180.0 / math.Pi
	refraction = refractionCorrection(altitude, tanAlt)
	altitude += refraction
	return altitude, refraction, azimuth
}
