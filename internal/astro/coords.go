// Package astro provides the coordinate math behind transit searches:
// equatorial-to-horizontal conversion, low-precision solar-system
// ephemerides, and a named-source catalog.
package astro

import (
	"math"
	"time"
)

// Equatorial is a sky position in the equatorial frame (J2000).
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizontal is a sky position in the observer-relative horizontal frame.
type Horizontal struct {
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation in degrees (0=horizon, 90=zenith)
}

// Site is a ground-based observing location.
type Site struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional site name
}

// ToHorizontal converts an equatorial position to horizontal coordinates
// for a given site and UTC instant.
//
// Uses standard conventions: azimuth 0° = North increasing eastward,
// elevation 0° = horizon. No refraction correction is applied.
func ToHorizontal(eq Equatorial, site Site, t time.Time) Horizontal {
	lat := degToRad(site.LatDeg)
	ra := degToRad(eq.RAdeg)
	dec := degToRad(eq.DecDeg)

	// Hour Angle = Local Sidereal Time - RA
	lst := LocalSiderealTime(t, site.LonDeg)
	ha := degToRad(lst) - ra

	sinEl := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	el := math.Asin(clamp(sinEl, -1, 1))

	cosAz := (math.Sin(dec) - math.Sin(el)*math.Sin(lat)) / (math.Cos(el) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))

	// Positive hour angle puts the object west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AzDeg: radToDeg(az),
		ElDeg: radToDeg(el),
	}
}

// LocalSiderealTime returns the Local Sidereal Time in degrees for a UTC
// instant and an east-positive longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeDeg(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime returns GMST in degrees (IAU 1982 formula).
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeDeg(gmst)
}

// JulianDate returns the Julian Date for a time instant.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// ModifiedJulianDate returns the Modified Julian Date (JD - 2400000.5).
func ModifiedJulianDate(t time.Time) float64 {
	return JulianDate(t) - 2400000.5
}

// TimeFromJulianDate converts a Julian Date back to a UTC time instant.
func TimeFromJulianDate(jd float64) time.Time {
	// JD 2440587.5 is the Unix epoch.
	sec := (jd - 2440587.5) * 86400.0
	return time.Unix(0, int64(sec*1e9)).UTC()
}

// TimeFromModifiedJulianDate converts an MJD value to a UTC time instant.
func TimeFromModifiedJulianDate(mjd float64) time.Time {
	return TimeFromJulianDate(mjd + 2400000.5)
}

// AngularSeparation returns the great-circle separation in degrees
// between two equatorial positions.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := degToRad(a.RAdeg)
	dec1 := degToRad(a.DecDeg)
	ra2 := degToRad(b.RAdeg)
	dec2 := degToRad(b.DecDeg)

	// Haversine form, stable for small separations.
	dRA := ra2 - ra1
	dDec := dec2 - dec1

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)

	return radToDeg(2 * math.Asin(math.Sqrt(clamp(h, 0, 1))))
}

// normalizeDeg wraps an angle to [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
