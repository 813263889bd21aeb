package astro

import (
	"math"
	"time"
)

// Moon is a Position tracking the geocentric Moon.
type Moon struct{}

// At implements Position.
func (Moon) At(t time.Time) Equatorial {
	return MoonPosition(t)
}

// Label implements Position.
func (Moon) Label() string { return "Moon" }

// MoonPosition returns the geocentric equatorial coordinates of the Moon.
// Truncated lunar theory (largest periodic terms only); accuracy ~0.3°,
// which moves the Moon's rise time by well under the coarse search step.
func MoonPosition(t time.Time) Equatorial {
	T := (JulianDate(t) - 2451545.0) / 36525.0

	// Fundamental arguments (degrees)
	Lp := normalizeDeg(218.3164477 + 481267.88123421*T) // mean longitude
	D := normalizeDeg(297.8501921 + 445267.1114034*T)   // mean elongation
	M := normalizeDeg(357.5291092 + 35999.0502909*T)    // Sun mean anomaly
	Mp := normalizeDeg(134.9633964 + 477198.8675055*T)  // Moon mean anomaly
	F := normalizeDeg(93.2720950 + 483202.0175233*T)    // argument of latitude

	s := func(deg float64) float64 { return math.Sin(degToRad(deg)) }

	lon := Lp +
		6.289*s(Mp) +
		1.274*s(2*D-Mp) +
		0.658*s(2*D) +
		0.214*s(2*Mp) -
		0.186*s(M) -
		0.114*s(2*F) +
		0.059*s(2*D-2*Mp) +
		0.057*s(2*D-M-Mp)

	lat := 5.128*s(F) +
		0.281*s(Mp+F) +
		0.278*s(Mp-F) +
		0.173*s(2*D-F)

	return eclipticToEquatorial(lon, lat, meanObliquity(T))
}
