package astro

import (
	"math"
	"strings"
	"time"
)

// Planet is a Position tracking the geocentric apparent direction of a
// major planet, derived from mean Keplerian elements.
type Planet struct {
	def planetDef
}

// At implements Position.
func (p Planet) At(t time.Time) Equatorial {
	return planetPosition(p.def, t)
}

// Label implements Position.
func (p Planet) Label() string { return p.def.name }

// PlanetByName returns the Planet for a name like "mars" (case-insensitive).
func PlanetByName(name string) (Planet, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, def := range planetDefs {
		if strings.ToLower(def.name) == key {
			return Planet{def: def}, true
		}
	}
	return Planet{}, false
}

// PlanetNames lists the supported planet names in heliocentric order.
func PlanetNames() []string {
	names := make([]string, len(planetDefs))
	for i, def := range planetDefs {
		names[i] = def.name
	}
	return names
}

// planetDef holds J2000 mean orbital elements and their secular rates
// per Julian century. Values from Standish, "Keplerian Elements for
// Approximate Positions of the Major Planets" (JPL).
type planetDef struct {
	name                   string
	a, aDot                float64 // semi-major axis (AU)
	e, eDot                float64 // eccentricity
	i, iDot                float64 // inclination (deg)
	l, lDot                float64 // mean longitude (deg)
	peri, periDot          float64 // longitude of perihelion (deg)
	node, nodeDot          float64 // longitude of ascending node (deg)
}

var planetDefs = []planetDef{
	{"Mercury", 0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	{"Venus", 0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	{"Mars", 1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	{"Jupiter", 5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	{"Saturn", 9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	{"Uranus", 19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	{"Neptune", 30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
}

// Earth-Moon barycenter elements, used to form the geocentric vector.
var earthDef = planetDef{"Earth", 1.00000261, 0.00000562, 0.01671123, -0.00004392,
	-0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

// planetPosition returns the geocentric equatorial direction of a planet.
func planetPosition(def planetDef, t time.Time) Equatorial {
	T := (JulianDate(t) - 2451545.0) / 36525.0

	px, py, pz := heliocentricEcliptic(def, T)
	ex, ey, ez := heliocentricEcliptic(earthDef, T)

	// Geocentric ecliptic vector
	x := px - ex
	y := py - ey
	z := pz - ez

	lon := radToDeg(math.Atan2(y, x))
	lat := radToDeg(math.Atan2(z, math.Sqrt(x*x+y*y)))

	return eclipticToEquatorial(lon, lat, meanObliquity(T))
}

// heliocentricEcliptic returns the J2000-ecliptic heliocentric position
// of a body in AU for Julian centuries T since J2000.
func heliocentricEcliptic(def planetDef, T float64) (x, y, z float64) {
	a := def.a + def.aDot*T
	e := def.e + def.eDot*T
	i := degToRad(def.i + def.iDot*T)
	L := def.l + def.lDot*T
	peri := def.peri + def.periDot*T
	node := def.node + def.nodeDot*T

	// Mean anomaly and argument of perihelion
	M := degToRad(normalizeDeg(L - peri))
	w := degToRad(peri - node)
	O := degToRad(node)

	E := solveKepler(M, e)

	// Position in the orbital plane
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	// Rotate by argument of perihelion, inclination, ascending node
	cw, sw := math.Cos(w), math.Sin(w)
	ci, si := math.Cos(i), math.Sin(i)
	cO, sO := math.Cos(O), math.Sin(O)

	x = (cw*cO-sw*sO*ci)*xp + (-sw*cO-cw*sO*ci)*yp
	y = (cw*sO+sw*cO*ci)*xp + (-sw*sO+cw*cO*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// solveKepler solves E - e*sin(E) = M by Newton iteration.
// Converges in a handful of steps for planetary eccentricities.
func solveKepler(M, e float64) float64 {
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < 20; iter++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-10 {
			break
		}
	}
	return E
}
