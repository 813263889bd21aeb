package resolve

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

// Layouts accepted for absolute time descriptors, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// mjdCutoff separates bare Julian Dates from Modified Julian Dates.
// JD 2400000.5 is MJD 0; no observation date of interest is ambiguous.
const mjdCutoff = 2400000.5

// Instant resolves a time descriptor into a UTC instant. Accepted
// forms: "now", "tomorrow", "yesterday" (±24 h from now), RFC 3339 or
// "YYYY-MM-DD [hh:mm[:ss]]" timestamps (read as UTC), "jd:"/"mjd:"
// prefixed day numbers, and bare day numbers (values above 2400000.5
// are read as JD, smaller ones as MJD).
func (r *Resolver) Instant(descriptor string) (time.Time, error) {
	desc := strings.TrimSpace(descriptor)
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	switch strings.ToLower(desc) {
	case "", "now":
		return now().UTC(), nil
	case "tomorrow":
		return now().UTC().Add(24 * time.Hour), nil
	case "yesterday":
		return now().UTC().Add(-24 * time.Hour), nil
	}

	if v, ok := strings.CutPrefix(strings.ToLower(desc), "jd:"); ok {
		jd, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return time.Time{}, resolutionError("time", descriptor, err)
		}
		return astro.TimeFromJulianDate(jd), nil
	}
	if v, ok := strings.CutPrefix(strings.ToLower(desc), "mjd:"); ok {
		mjd, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return time.Time{}, resolutionError("time", descriptor, err)
		}
		return astro.TimeFromModifiedJulianDate(mjd), nil
	}

	if day, err := strconv.ParseFloat(desc, 64); err == nil {
		if day < 0 {
			return time.Time{}, resolutionError("time", descriptor,
				errors.New("negative day number"))
		}
		if day >= mjdCutoff {
			return astro.TimeFromJulianDate(day), nil
		}
		return astro.TimeFromModifiedJulianDate(day), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, desc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, resolutionError("time", descriptor,
		errors.New("not a recognized time expression"))
}
