package transit

import (
	"errors"
	"testing"
)

func TestTargetBrackets(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		dir    Direction
		c1, c2 float64
		want   bool
	}{
		{"elevation rise brackets", ElevationTarget(10), DirectionRise, 5, 15, true},
		{"elevation rise at lower edge", ElevationTarget(10), DirectionRise, 10, 15, true},
		{"elevation rise at upper edge", ElevationTarget(10), DirectionRise, 5, 10, true},
		{"elevation rise below", ElevationTarget(10), DirectionRise, 5, 8, false},
		{"elevation rise descending pair", ElevationTarget(10), DirectionRise, 15, 5, false},
		{"elevation set brackets", ElevationTarget(10), DirectionSet, 15, 5, true},
		{"elevation set ascending pair", ElevationTarget(10), DirectionSet, 5, 15, false},
		{"elevation set above", ElevationTarget(10), DirectionSet, 20, 15, false},
		{"azimuth ascending brackets", AzimuthTarget(180), DirectionRise, 170, 190, true},
		{"azimuth ascending misses", AzimuthTarget(180), DirectionRise, 190, 200, false},
		{"azimuth descending pair rejected", AzimuthTarget(180), DirectionRise, 190, 170, false},
		{"azimuth wrap not bracketed", AzimuthTarget(180), DirectionRise, 350, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.brackets(tt.dir, tt.c1, tt.c2); got != tt.want {
				t.Errorf("brackets(%v, %v, %v) = %v, want %v", tt.dir, tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		dir     Direction
		wantErr bool
	}{
		{"elevation rise", ElevationTarget(45), DirectionRise, false},
		{"elevation set", ElevationTarget(-5), DirectionSet, false},
		{"elevation zenith", ElevationTarget(90), DirectionRise, false},
		{"elevation too high", ElevationTarget(90.1), DirectionRise, true},
		{"elevation too low", ElevationTarget(-90.1), DirectionSet, true},
		{"azimuth rise", AzimuthTarget(180), DirectionRise, false},
		{"azimuth zero", AzimuthTarget(0), DirectionRise, false},
		{"azimuth set rejected", AzimuthTarget(180), DirectionSet, true},
		{"azimuth 360 rejected", AzimuthTarget(360), DirectionRise, true},
		{"azimuth negative", AzimuthTarget(-1), DirectionRise, true},
		{"bad direction", ElevationTarget(0), Direction(42), true},
		{"bad channel", Target{Channel: Channel(9), Degrees: 0}, DirectionRise, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.validate(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%v) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("validate(%v) error = %v, want ErrInvalidQuery", tt.dir, err)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"rise", DirectionRise, false},
		{"set", DirectionSet, false},
		{"RISE", DirectionRise, false},
		{"Set", DirectionSet, false},
		{"transit", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	if got := ElevationTarget(0).String(); got != "elevation 0°" {
		t.Errorf("ElevationTarget(0).String() = %q", got)
	}
	if got := AzimuthTarget(180).String(); got != "azimuth 180°" {
		t.Errorf("AzimuthTarget(180).String() = %q", got)
	}
}
