// Package ephem supplies time-dependent sky positions for spacecraft
// and solar-system bodies from the JPL Horizons service.
package ephem

import (
	"context"
	"fmt"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

// Provider fetches a time-dependent position for a Horizons target.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns a position provider valid over [start, end] for
	// the given Horizons COMMAND string (NAIF ID or body designation),
	// computed for the given site.
	Position(ctx context.Context, target string, start, end time.Time, site astro.Site) (astro.Position, error)
}

// Sample is one RA/Dec ephemeris point.
type Sample struct {
	Time  time.Time
	Coord astro.Equatorial
}

// SampledPosition interpolates linearly between RA/Dec samples.
// Deep-space targets move slowly against the sky, so linear
// interpolation over 10-minute samples is far below the transit
// search's resolution.
type SampledPosition struct {
	Name    string
	Samples []Sample
}

// NewSampledPosition validates and wraps a sample series.
func NewSampledPosition(name string, samples []Sample) (*SampledPosition, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("need at least 2 ephemeris samples for %s, got %d", name, len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if !samples[i].Time.After(samples[i-1].Time) {
			return nil, fmt.Errorf("ephemeris samples for %s not strictly increasing at index %d", name, i)
		}
	}
	return &SampledPosition{Name: name, Samples: samples}, nil
}

// At implements astro.Position. Instants outside the sampled span clamp
// to the nearest endpoint.
func (p *SampledPosition) At(t time.Time) astro.Equatorial {
	samples := p.Samples

	if !t.After(samples[0].Time) {
		return samples[0].Coord
	}
	last := samples[len(samples)-1]
	if !t.Before(last.Time) {
		return last.Coord
	}

	// Binary search for the bracketing pair.
	lo, hi := 0, len(samples)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if samples[mid].Time.After(t) {
			hi = mid
		} else {
			lo = mid
		}
	}

	a, b := samples[lo], samples[hi]
	f := float64(t.Sub(a.Time)) / float64(b.Time.Sub(a.Time))

	return astro.Equatorial{
		RAdeg:  a.Coord.RAdeg + f*raDelta(a.Coord.RAdeg, b.Coord.RAdeg),
		DecDeg: a.Coord.DecDeg + f*(b.Coord.DecDeg-a.Coord.DecDeg),
	}
}

// Label implements astro.Position.
func (p *SampledPosition) Label() string { return p.Name }

// Span returns the time range covered by the samples.
func (p *SampledPosition) Span() (start, end time.Time) {
	return p.Samples[0].Time, p.Samples[len(p.Samples)-1].Time
}

// raDelta returns the signed RA difference taking the 0°/360° wrap into
// account, so interpolation never swings the long way around.
func raDelta(from, to float64) float64 {
	d := to - from
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}
