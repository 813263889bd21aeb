// Package trace samples a source's elevation over a time window and
// resamples it onto a dense grid for charting.
package trace

import (
	"time"

	"github.com/litescript/ls-transit/internal/transit"
)

// Sample is one elevation measurement.
type Sample struct {
	Time  time.Time
	ElDeg float64
}

// Trace is an elevation-vs-time series for a source/site pair.
type Trace struct {
	Source  string
	Site    string
	Start   time.Time
	Step    time.Duration
	Samples []Sample
}

// DefaultStep is the raw sampling interval for a one-day trace.
const DefaultStep = 30 * time.Minute

// DefaultWindow is the default trace span.
const DefaultWindow = 24 * time.Hour

// Compute samples the evaluator's elevation channel from start over the
// window at the given step, inclusive of both endpoints.
func Compute(ev *transit.Evaluator, start time.Time, window, step time.Duration) *Trace {
	if step <= 0 {
		step = DefaultStep
	}
	if window <= 0 {
		window = DefaultWindow
	}

	n := int(window/step) + 1
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * step)
		samples[i] = Sample{
			Time:  t,
			ElDeg: ev.Channel(transit.ChannelElevation, t),
		}
	}

	return &Trace{
		Source:  ev.Source().Label(),
		Site:    ev.Site().Name,
		Start:   start,
		Step:    step,
		Samples: samples,
	}
}

// Resample interpolates the trace onto n evenly spaced points using a
// Catmull-Rom cubic through the raw samples. Elevation between
// half-hour samples is smooth, so the cubic reproduces the true curve
// closely enough for display.
func (tr *Trace) Resample(n int) []Sample {
	raw := tr.Samples
	if n <= 0 || len(raw) < 2 {
		return nil
	}

	span := raw[len(raw)-1].Time.Sub(raw[0].Time)
	out := make([]Sample, n)

	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		t := raw[0].Time.Add(time.Duration(f * float64(span)))

		// Locate the segment containing t.
		pos := f * float64(len(raw)-1)
		seg := int(pos)
		if seg >= len(raw)-1 {
			seg = len(raw) - 2
		}
		u := pos - float64(seg)

		out[i] = Sample{Time: t, ElDeg: catmullRom(
			sampleAt(raw, seg-1),
			sampleAt(raw, seg),
			sampleAt(raw, seg+1),
			sampleAt(raw, seg+2),
			u,
		)}
	}

	return out
}

// MinMax returns the lowest and highest raw elevations.
func (tr *Trace) MinMax() (minEl, maxEl float64) {
	minEl, maxEl = 90, -90
	for _, s := range tr.Samples {
		if s.ElDeg < minEl {
			minEl = s.ElDeg
		}
		if s.ElDeg > maxEl {
			maxEl = s.ElDeg
		}
	}
	return minEl, maxEl
}

// sampleAt clamps out-of-range indices to the endpoints, duplicating
// the boundary sample for the cubic's phantom neighbors.
func sampleAt(raw []Sample, i int) float64 {
	if i < 0 {
		i = 0
	}
	if i > len(raw)-1 {
		i = len(raw) - 1
	}
	return raw[i].ElDeg
}

// catmullRom evaluates the Catmull-Rom cubic through p1..p2 at u∈[0,1]
// with p0 and p3 as outer control points.
func catmullRom(p0, p1, p2, p3, u float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u*u +
		(-p0+3*p1-3*p2+p3)*u*u*u)
}

// Band classifies elevation for chart shading.
type Band int

const (
	BandBelow Band = iota // below the horizon
	BandLow               // 0-20 degrees
	BandMid               // 20-40 degrees
	BandHigh              // 40+ degrees
)

// BandFor returns the band for an elevation in degrees.
func BandFor(elDeg float64) Band {
	switch {
	case elDeg < 0:
		return BandBelow
	case elDeg < 20:
		return BandLow
	case elDeg < 40:
		return BandMid
	default:
		return BandHigh
	}
}

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandBelow:
		return "below"
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	case BandHigh:
		return "high"
	default:
		return "?"
	}
}
