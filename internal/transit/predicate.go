package transit

import (
	"fmt"
	"strings"
)

// Channel selects which horizontal coordinate a search tracks.
type Channel int

const (
	ChannelAzimuth   Channel = iota // wraps at 0°/360°
	ChannelElevation                // bounded in [-90°, 90°]
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelAzimuth:
		return "azimuth"
	case ChannelElevation:
		return "elevation"
	default:
		return "?"
	}
}

// Direction says which way the channel should be moving at the crossing.
// It is meaningful for elevation targets only; azimuth crossings are
// always searched in the ascending direction.
type Direction int

const (
	DirectionRise Direction = iota // channel increasing through the target
	DirectionSet                   // channel decreasing through the target
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRise:
		return "rise"
	case DirectionSet:
		return "set"
	default:
		return "?"
	}
}

// ParseDirection parses "rise" or "set" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "rise":
		return DirectionRise, nil
	case "set":
		return DirectionSet, nil
	default:
		return 0, fmt.Errorf("%w: direction must be rise or set, got %q", ErrInvalidQuery, s)
	}
}

// Target pins a channel to the degree value whose crossing is searched.
type Target struct {
	Channel Channel
	Degrees float64
}

// AzimuthTarget builds a target for an azimuth crossing.
func AzimuthTarget(deg float64) Target {
	return Target{Channel: ChannelAzimuth, Degrees: deg}
}

// ElevationTarget builds a target for an elevation crossing.
func ElevationTarget(deg float64) Target {
	return Target{Channel: ChannelElevation, Degrees: deg}
}

// String formats the target for error messages and logs.
func (t Target) String() string {
	return fmt.Sprintf("%s %.4g°", t.Channel, t.Degrees)
}

// validate checks the target value and the target/direction pairing.
func (t Target) validate(dir Direction) error {
	if dir != DirectionRise && dir != DirectionSet {
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidQuery, dir)
	}
	switch t.Channel {
	case ChannelAzimuth:
		if t.Degrees < 0 || t.Degrees >= 360 {
			return fmt.Errorf("%w: azimuth target %.4g° outside [0°, 360°)", ErrInvalidQuery, t.Degrees)
		}
		// Only the ascending bracket is defined across the azimuth wrap.
		if dir != DirectionRise {
			return fmt.Errorf("%w: azimuth crossings support the ascending direction only", ErrInvalidQuery)
		}
	case ChannelElevation:
		if t.Degrees < -90 || t.Degrees > 90 {
			return fmt.Errorf("%w: elevation target %.4g° outside [-90°, 90°]", ErrInvalidQuery, t.Degrees)
		}
	default:
		return fmt.Errorf("%w: unknown channel %d", ErrInvalidQuery, t.Channel)
	}
	return nil
}

// brackets reports whether the sampled pair (c1, c2) over an interval
// brackets the target consistent with the direction.
func (t Target) brackets(dir Direction, c1, c2 float64) bool {
	if t.Channel == ChannelElevation && dir == DirectionSet {
		return c2 <= t.Degrees && t.Degrees <= c1
	}
	return c1 <= t.Degrees && t.Degrees <= c2
}
