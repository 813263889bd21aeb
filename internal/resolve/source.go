package resolve

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

// horizonsPrefix marks a source descriptor that should be resolved
// through the JPL Horizons provider, e.g. "horizons:-31" (Voyager 1).
const horizonsPrefix = "horizons:"

// Source resolves a source descriptor into a sky position. Accepted
// forms, tried in order:
//
//	"ra,dec"        fixed equatorial degrees
//	sun, moon       analytic solar-system positions
//	planet names    mercury .. neptune
//	catalog names   "Cyg A", "Vega", ...
//	horizons:ID     spacecraft/body via the ephemeris provider
//
// Solar-system and horizons sources are time-dependent; start and site
// shape the ephemeris fetch but fixed sources ignore them.
func (r *Resolver) Source(ctx context.Context, descriptor string, start time.Time, site astro.Site) (astro.Position, error) {
	desc := strings.TrimSpace(descriptor)
	if desc == "" {
		return nil, resolutionError("source", descriptor, errors.New("empty descriptor"))
	}

	if ra, dec, ok := parseDegreePair(desc); ok {
		if dec < -90 || dec > 90 {
			return nil, resolutionError("source", descriptor,
				errors.New("declination outside [-90°, 90°]"))
		}
		return astro.Fixed{
			Name:  desc,
			Coord: astro.Equatorial{RAdeg: ra, DecDeg: dec},
		}, nil
	}

	switch strings.ToLower(desc) {
	case "sun":
		return astro.Sun{}, nil
	case "moon":
		return astro.Moon{}, nil
	}

	if planet, ok := astro.PlanetByName(desc); ok {
		return planet, nil
	}

	if fixed, ok := astro.LookupSource(desc); ok {
		return fixed, nil
	}

	if id, ok := strings.CutPrefix(desc, horizonsPrefix); ok {
		if r.Ephem == nil {
			return nil, resolutionError("source", descriptor,
				errors.New("horizons sources disabled (no ephemeris provider)"))
		}
		window := r.Window
		if window <= 0 {
			window = DefaultWindow
		}
		// Pad behind the start so interpolation has support at t0.
		pos, err := r.Ephem.Position(ctx, strings.TrimSpace(id),
			start.Add(-time.Hour), start.Add(window), site)
		if err != nil {
			return nil, resolutionError("source", descriptor, err)
		}
		return pos, nil
	}

	return nil, resolutionError("source", descriptor,
		errors.New("not a coordinate pair, body, or catalog source"))
}
