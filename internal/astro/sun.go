package astro

import (
	"math"
	"time"
)

// Sun is a Position tracking the apparent geocentric Sun.
type Sun struct{}

// At implements Position.
func (Sun) At(t time.Time) Equatorial {
	return SunPosition(t)
}

// Label implements Position.
func (Sun) Label() string { return "Sun" }

// SunPosition returns the apparent equatorial coordinates of the Sun.
// Simplified solar theory from the Astronomical Almanac; accuracy is
// on the order of 0.01° in RA, far below the search resolution.
func SunPosition(t time.Time) Equatorial {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly (degrees)
	L0 := normalizeDeg(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeDeg(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	// True longitude, corrected for aberration and nutation
	omega := 125.04 - 1934.136*T
	lonApp := L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity with nutation correction
	eps := meanObliquity(T) + 0.00256*math.Cos(degToRad(omega))

	return eclipticToEquatorial(lonApp, 0, eps)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees
// for Julian centuries T since J2000.0.
func meanObliquity(T float64) float64 {
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}

// eclipticToEquatorial converts ecliptic longitude/latitude (degrees)
// to equatorial coordinates for a given obliquity (degrees).
func eclipticToEquatorial(lonDeg, latDeg, epsDeg float64) Equatorial {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	eps := degToRad(epsDeg)

	sinDec := math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon)
	dec := math.Asin(clamp(sinDec, -1, 1))

	y := math.Sin(lon)*math.Cos(eps) - math.Tan(lat)*math.Sin(eps)
	ra := math.Atan2(y, math.Cos(lon))

	return Equatorial{
		RAdeg:  normalizeDeg(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}
