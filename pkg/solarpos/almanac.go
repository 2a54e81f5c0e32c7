package solarpos

import "math"

// Almanac implements the low-precision solar coordinate formulae from
// the 1990 Astronomical Almanac (p. C24), with local mean sidereal
// time substituted for local apparent sidereal time. Apparent
// coordinates are good to about 0.01 degree over 1950-2049 and
// refraction to 0.1 arc minute above 15 degrees altitude. Diurnal
// parallax and aberration are ignored.
type Almanac struct{}

// Position computes the Sun's apparent position for the request.
func (Almanac) Position(req Request) (Position, error) {
	if err := validate(req); err != nil {
		return Position{}, err
	}

	var daysJ2000, centJ2000, ut float64

	if req.Year != 0 {
		var dayOfYear int
		if req.Month != 0 {
			dayOfYear = dayNumber(req.Year, req.Month, int(req.Day))
		} else {
			dayOfYear = int(req.Day)
		}

		deltaYears := req.Year - 2000
		// deltaDays counts whole days from 2000 Jan 0 (negative in the 1900s)
		deltaDays := deltaYears*365 + deltaYears/4 + dayOfYear
		if req.Year > 2000 {
			deltaDays++
		}

		// epoch J2000 is 2000 Jan 1.5
		daysJ2000 = float64(deltaDays) - 1.5
		centJ2000 = daysJ2000 / 36525.0

		frac := req.Day - math.Floor(req.Day)
		daysJ2000 += frac
		ut = frac * 24.0
	} else {
		// Days1900 is 36524 for 2000 Jan 0; J2000 is 2000 Jan 1.5
		daysJ2000 = req.Days1900 - 36525.5
		integral := math.Floor(req.Days1900)
		ut = (req.Days1900 - integral) * 24.0
		centJ2000 = (integral - 36525.5) / 36525.0
	}

	const degRad = math.Pi / 180.0

	meanAnomaly := wrap360(357.528+0.9856003*daysJ2000) * degRad
	meanLongitude := wrap360(280.460+0.9856474*daysJ2000) * degRad
	meanObliquity := (23.439 - 4.0e-7*daysJ2000) * degRad
	eclipticLong := (1.915*math.Sin(meanAnomaly)+0.020*math.Sin(2.0*meanAnomaly))*degRad +
		meanLongitude

	distance := 1.00014 - 0.01671*math.Cos(meanAnomaly) - 0.00014*math.Cos(2.0*meanAnomaly)

	ra := math.Atan2(math.Cos(meanObliquity)*math.Sin(eclipticLong), math.Cos(eclipticLong))
	if ra < 0.0 {
		ra += 2 * math.Pi
	}
	raHours := ra / (2 * math.Pi) * 24.0

	dec := math.Asin(math.Sin(meanObliquity)*math.Sin(eclipticLong)) / degRad

	// Greenwich mean sidereal time at 0h UT (A.A. 1990, B6-B7), seconds
	gmst0h := 24110.54841 + centJ2000*(8640184.812866+centJ2000*(0.093104-centJ2000*6.2e-6))
	gmst0h = math.Mod(gmst0h/3600.0, 24.0)
	if gmst0h < 0.0 {
		gmst0h += 24.0
	}

	// mean solar to mean sidereal day ratio, 1990 value; the drift is
	// under 0.001 s per century
	lmst := gmst0h + ut*1.00273790934 + req.Longitude/15.0
	lmst = math.Mod(lmst, 24.0)
	if lmst < 0.0 {
		lmst += 24.0
	}

	altitude, refraction, azimuth := horizontal(raHours, dec, req.Latitude, lmst)

	return Position{
		RightAscension: raHours,
		Declination:    dec,
		Altitude:       altitude,
		Refraction:     refraction,
		Azimuth:        azimuth,
		Distance:       distance,
	}, nil
}

// wrap360 reduces an angle in degrees to [0,360).
func wrap360(deg float64) float64 {
	return deg - 360.0*math.Floor(deg/360.0)
}
