// Package resolve turns free-form descriptors into concrete observing
// sites, sky positions, and instants. Resolution happens exactly once
// at the API boundary; downstream code only ever sees resolved values.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
	"github.com/litescript/ls-transit/internal/ephem"
)

// Resolver resolves location, source, and time descriptors.
// The zero value resolves named sites, coordinate pairs, catalog
// sources, solar-system bodies, and time expressions; Geocoder and
// Ephem add address lookup and spacecraft support when set.
type Resolver struct {
	Geocoder *Geocoder       // nil disables free-form address lookup
	Ephem    ephem.Provider  // nil disables horizons: source descriptors
	Now      func() time.Time // clock, defaults to time.Now

	// Window is how much ephemeris data to fetch around the start
	// instant for time-dependent sources. Defaults to 26 hours, which
	// covers a one-day search horizon with margin on both sides.
	Window time.Duration
}

// DefaultWindow is the ephemeris fetch window for spacecraft sources.
const DefaultWindow = 26 * time.Hour

// knownSites maps normalized site names to coordinates.
// NenuFAR is first among equals: the original transit tooling was
// written for it.
var knownSites = map[string]astro.Site{
	"nenufar":    {LatDeg: 47.376511, LonDeg: 2.1924002, Name: "NenuFAR"},
	"lofar":      {LatDeg: 52.9088, LonDeg: 6.8689, Name: "LOFAR"},
	"effelsberg": {LatDeg: 50.5248, LonDeg: 6.8836, Name: "Effelsberg"},
	"westerbork": {LatDeg: 52.9146, LonDeg: 6.6031, Name: "Westerbork"},
	"gmrt":       {LatDeg: 19.0965, LonDeg: 74.0497, Name: "GMRT"},
	"vla":        {LatDeg: 34.0784, LonDeg: -107.6184, Name: "VLA"},
	"parkes":     {LatDeg: -32.9984, LonDeg: 148.2635, Name: "Parkes"},
	"gbt":        {LatDeg: 38.4331, LonDeg: -79.8398, Name: "GBT"},
	"meerkat":    {LatDeg: -30.7211, LonDeg: 21.4439, Name: "MeerKAT"},
}

// Site resolves a location descriptor: a known site name, a
// "lat,lon" degree pair, or (with a geocoder) a free-form address.
func (r *Resolver) Site(ctx context.Context, descriptor string) (astro.Site, error) {
	desc := strings.TrimSpace(descriptor)
	if desc == "" {
		return astro.Site{}, resolutionError("location", descriptor, errors.New("empty descriptor"))
	}

	if site, ok := knownSites[strings.ToLower(desc)]; ok {
		return site, nil
	}

	if lat, lon, ok := parseDegreePair(desc); ok {
		if lat < -90 || lat > 90 {
			return astro.Site{}, resolutionError("location", descriptor,
				fmt.Errorf("latitude %.4g° outside [-90°, 90°]", lat))
		}
		return astro.Site{LatDeg: lat, LonDeg: lon, Name: desc}, nil
	}

	if r.Geocoder != nil {
		site, err := r.Geocoder.Lookup(ctx, desc)
		if err != nil {
			return astro.Site{}, resolutionError("location", descriptor, err)
		}
		return site, nil
	}

	return astro.Site{}, resolutionError("location", descriptor,
		errors.New("not a known site or lat,lon pair (geocoding disabled)"))
}

// parseDegreePair parses "48.85,2.35" style comma-separated degrees.
func parseDegreePair(s string) (a, b float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	b, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}
