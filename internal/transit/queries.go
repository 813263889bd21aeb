package transit

import (
	"context"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

// MeridianAzimuth is the azimuth used as the meridian-crossing proxy:
// the ascending crossing of due south. This is only correct for sources
// that culminate through azimuth 180° (northern-hemisphere sites with
// southern transits); circumpolar and southern geometries transit
// elsewhere and are not detected.
const MeridianAzimuth = 180.0

// FindCrossing is the general crossing query: the next instant at or
// after start where the source's azimuth or elevation crosses the
// target in the given direction, seen from the site.
func (e *Engine) FindCrossing(ctx context.Context, source astro.Position, site astro.Site, start time.Time, target Target, dir Direction) (time.Time, error) {
	return e.Search(ctx, NewEvaluator(source, site), target, dir, start)
}

// RiseTime returns the next ascending 0° elevation crossing.
func (e *Engine) RiseTime(ctx context.Context, source astro.Position, site astro.Site, start time.Time) (time.Time, error) {
	return e.FindCrossing(ctx, source, site, start, ElevationTarget(0), DirectionRise)
}

// SetTime returns the next descending 0° elevation crossing.
func (e *Engine) SetTime(ctx context.Context, source astro.Position, site astro.Site, start time.Time) (time.Time, error) {
	return e.FindCrossing(ctx, source, site, start, ElevationTarget(0), DirectionSet)
}

// MeridianTime returns the next ascending crossing of MeridianAzimuth.
func (e *Engine) MeridianTime(ctx context.Context, source astro.Position, site astro.Site, start time.Time) (time.Time, error) {
	return e.FindCrossing(ctx, source, site, start, AzimuthTarget(MeridianAzimuth), DirectionRise)
}
