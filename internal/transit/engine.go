// Package transit finds the next instant at which a moving sky position,
// seen from a fixed site, crosses a target azimuth or elevation. The
// horizontal-coordinate channel is an opaque sampled function, so the
// search brackets the crossing with progressively finer time steps
// instead of root-finding on derivatives.
package transit

import (
	"context"
	"fmt"
	"time"
)

// StepSchedule configures the coarse-to-fine bracketing passes and the
// overall search horizon.
type StepSchedule struct {
	Coarse  time.Duration // first-pass step
	Mid     time.Duration // second-pass step, inside the coarse bracket
	Fine    time.Duration // final-pass step; result precision is ±Fine/2
	Horizon time.Duration // how far past the start instant to look
}

// DefaultSchedule returns the standard 30 min / 5 min / 5 s schedule
// over a one-day horizon. Results are accurate to ±2.5 s.
func DefaultSchedule() StepSchedule {
	return StepSchedule{
		Coarse:  30 * time.Minute,
		Mid:     5 * time.Minute,
		Fine:    5 * time.Second,
		Horizon: 24 * time.Hour,
	}
}

// validate checks that the passes nest and the horizon covers at least
// one coarse step.
func (s StepSchedule) validate() error {
	if s.Fine <= 0 {
		return fmt.Errorf("%w: fine step must be positive, got %v", ErrInvalidQuery, s.Fine)
	}
	if s.Mid < s.Fine || s.Coarse < s.Mid {
		return fmt.Errorf("%w: steps must nest (coarse %v >= mid %v >= fine %v)",
			ErrInvalidQuery, s.Coarse, s.Mid, s.Fine)
	}
	if s.Horizon < s.Coarse {
		return fmt.Errorf("%w: horizon %v shorter than coarse step %v",
			ErrInvalidQuery, s.Horizon, s.Coarse)
	}
	return nil
}

// ChannelSampler supplies horizontal-coordinate samples at instants the
// search chooses. Evaluator is the production implementation; tests use
// synthetic channels.
type ChannelSampler interface {
	Channel(ch Channel, t time.Time) float64
}

// Engine runs crossing-time searches. It holds no per-query state;
// one engine can serve concurrent queries.
type Engine struct {
	schedule StepSchedule
}

// NewEngine creates an engine with the given schedule.
func NewEngine(schedule StepSchedule) (*Engine, error) {
	if err := schedule.validate(); err != nil {
		return nil, err
	}
	return &Engine{schedule: schedule}, nil
}

// NewDefaultEngine creates an engine with DefaultSchedule.
func NewDefaultEngine() *Engine {
	return &Engine{schedule: DefaultSchedule()}
}

// Schedule returns the engine's step schedule.
func (e *Engine) Schedule() StepSchedule { return e.schedule }

// Search finds the earliest instant at or after start, within the
// schedule's horizon, where the evaluator's channel crosses the target
// consistent with the direction. The result is accurate to ±Fine/2.
//
// The coarse pass can miss a crossing that completes and reverses
// inside a single coarse step; callers observing unusually fast
// geometries should shrink the schedule accordingly.
func (e *Engine) Search(ctx context.Context, ev ChannelSampler, target Target, dir Direction, start time.Time) (time.Time, error) {
	if err := target.validate(dir); err != nil {
		return time.Time{}, err
	}

	s := e.schedule

	coarseStart, coarseEnd, found, err := e.scan(ctx, ev, target, dir, start, start.Add(s.Horizon), s.Coarse)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: %s %s within %v of %s",
			ErrCrossingNotFound, dir, target,
			s.Horizon, start.UTC().Format(time.RFC3339))
	}

	midStart, midEnd, found, err := e.scan(ctx, ev, target, dir, coarseStart, coarseEnd, s.Mid)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: mid pass found no bracket in [%s, +%v]",
			ErrSearchInternal, coarseStart.UTC().Format(time.RFC3339), coarseEnd.Sub(coarseStart))
	}

	fineStart, fineEnd, found, err := e.scan(ctx, ev, target, dir, midStart, midEnd, s.Fine)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: fine pass found no bracket in [%s, +%v]",
			ErrSearchInternal, midStart.UTC().Format(time.RFC3339), midEnd.Sub(midStart))
	}

	// Midpoint of the fine bracket.
	return fineStart.Add(fineEnd.Sub(fineStart) / 2), nil
}

// scan walks [start, end] in fixed steps and returns the first interval
// that brackets the crossing. The final interval clamps to end when the
// span is not an exact multiple of the step, so the whole parent bracket
// is always covered. The trailing sample of each interval is reused as
// the leading sample of the next, so each boundary costs one transform
// call.
func (e *Engine) scan(ctx context.Context, ev ChannelSampler, target Target, dir Direction, start, end time.Time, step time.Duration) (time.Time, time.Time, bool, error) {
	t := start
	c1 := ev.Channel(target.Channel, t)

	for t.Before(end) {
		if err := ctx.Err(); err != nil {
			return time.Time{}, time.Time{}, false, err
		}

		next := t.Add(step)
		if next.After(end) {
			next = end
		}
		c2 := ev.Channel(target.Channel, next)

		if target.brackets(dir, c1, c2) {
			return t, next, true, nil
		}

		t = next
		c1 = c2
	}

	return time.Time{}, time.Time{}, false, nil
}
