package transit

import (
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

// Evaluator adapts a (source position, site) pair into a pure function
// from instants to horizontal coordinates. The transform runs once per
// call; nothing is memoized, since the search visits a bounded number
// of instants per query.
type Evaluator struct {
	source astro.Position
	site   astro.Site
}

// NewEvaluator builds an evaluator for a fixed source/site pair.
func NewEvaluator(source astro.Position, site astro.Site) *Evaluator {
	return &Evaluator{source: source, site: site}
}

// Horizontal returns the full horizontal coordinates at an instant.
func (e *Evaluator) Horizontal(t time.Time) astro.Horizontal {
	return astro.ToHorizontal(e.source.At(t), e.site, t)
}

// Channel returns the azimuth or elevation in degrees at an instant.
func (e *Evaluator) Channel(ch Channel, t time.Time) float64 {
	horiz := e.Horizontal(t)
	if ch == ChannelAzimuth {
		return horiz.AzDeg
	}
	return horiz.ElDeg
}

// Source returns the evaluator's position provider.
func (e *Evaluator) Source() astro.Position { return e.source }

// Site returns the evaluator's observing site.
func (e *Evaluator) Site() astro.Site { return e.site }
