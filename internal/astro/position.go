package astro

import "time"

// Position supplies an equatorial sky position. Fixed sources (stars,
// radio galaxies) ignore the instant; solar-system bodies and spacecraft
// move, so their position is a function of time.
type Position interface {
	// At returns the equatorial position at the given instant.
	At(t time.Time) Equatorial

	// Label returns a display name for the position.
	Label() string
}

// Fixed is a Position with constant RA/Dec.
type Fixed struct {
	Name  string
	Coord Equatorial
}

// At implements Position.
func (f Fixed) At(time.Time) Equatorial {
	return f.Coord
}

// Label implements Position.
func (f Fixed) Label() string {
	if f.Name != "" {
		return f.Name
	}
	return "fixed"
}
