package solarpos

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Meeus implements the high-precision solar position model using the
// soniakeys implementation of Meeus' solar theory: apparent equatorial
// coordinates with nutation and aberration, and apparent sidereal
// time. It accepts the same request ranges as Almanac so the two are
// interchangeable.
type Meeus struct{}

// Position computes the Sun's apparent position for the request.
func (Meeus) Position(req Request) (Position, error) {
	if err := validate(req); err != nil {
		return Position{}, err
	}

	var jd float64
	if req.Year != 0 {
		month := req.Month
		day := req.Day
		if month == 0 {
			// day of year: count forward from January
			month = 1
		}
		jd = julian.CalendarGregorianToJD(req.Year, month, day)
	} else {
		// 1900 Jan 0 00:00 UT
		jd = 2415019.5 + req.Days1900
	}

	ra, dec := solar.ApparentEquatorial(jd)
	distance := solar.Radius(base.J2000Century(jd))

	lmst := sidereal.Apparent(jd).Hour() + req.Longitude/15.0
	lmst = math.Mod(lmst, 24.0)
	if lmst < 0.0 {
		lmst += 24.0
	}

	altitude, refraction, azimuth := horizontal(ra.Hour(), dec.Deg(), req.Latitude, lmst)

	return Position{
		RightAscension: ra.Hour(),
		Declination:    dec.Deg(),
		Altitude:       altitude,
		Refraction:     refraction,
		Azimuth:        azimuth,
		Distance:       distance,
	}, nil
}
