package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"Meeus example", time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC), 2446895.5},
		{"Sputnik launch", time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDate(tt.t); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDate(%v) = %.6f, want %.6f", tt.t, got, tt.want)
			}
		})
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	orig := time.Date(2025, 8, 23, 14, 30, 15, 0, time.UTC)

	back := TimeFromJulianDate(JulianDate(orig))
	if diff := back.Sub(orig); diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("JD round trip drifted by %v", diff)
	}

	back = TimeFromModifiedJulianDate(ModifiedJulianDate(orig))
	if diff := back.Sub(orig); diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("MJD round trip drifted by %v", diff)
	}
}

func TestModifiedJulianDate(t *testing.T) {
	// MJD epoch: 1858-11-17 00:00 UT.
	epoch := time.Date(1858, 11, 17, 0, 0, 0, 0, time.UTC)
	if got := ModifiedJulianDate(epoch); math.Abs(got) > 1e-6 {
		t.Errorf("ModifiedJulianDate(epoch) = %.6f, want 0", got)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	// Meeus, Astronomical Algorithms, example 12.b: GMST at
	// 1987-04-10 19:21:00 UT is 8h34m57.0896s.
	at := time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC)
	want := (8 + 34/60.0 + 57.0896/3600.0) * 15

	if got := LocalSiderealTime(at, 0); math.Abs(got-want) > 0.01 {
		t.Errorf("LocalSiderealTime = %.5f°, want %.5f°", got, want)
	}

	// East longitude adds directly.
	if got := LocalSiderealTime(at, 10); math.Abs(got-(want+10)) > 0.01 {
		t.Errorf("LocalSiderealTime(lon=10) = %.5f°, want %.5f°", got, want+10)
	}
}

func TestToHorizontal(t *testing.T) {
	site := astroTestSite()
	at := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	lst := LocalSiderealTime(at, site.LonDeg)

	t.Run("celestial pole", func(t *testing.T) {
		horiz := ToHorizontal(Equatorial{RAdeg: 120, DecDeg: 90}, site, at)
		if math.Abs(horiz.ElDeg-site.LatDeg) > 1e-9 {
			t.Errorf("pole elevation = %.6f°, want latitude %.6f°", horiz.ElDeg, site.LatDeg)
		}
		if math.Abs(horiz.AzDeg) > 1e-6 && math.Abs(horiz.AzDeg-360) > 1e-6 {
			t.Errorf("pole azimuth = %.6f°, want 0°", horiz.AzDeg)
		}
	})

	t.Run("transit due south", func(t *testing.T) {
		horiz := ToHorizontal(Equatorial{RAdeg: lst, DecDeg: 0}, site, at)
		if math.Abs(horiz.AzDeg-180) > 1e-6 {
			t.Errorf("transit azimuth = %.6f°, want 180°", horiz.AzDeg)
		}
		wantEl := 90 - site.LatDeg
		if math.Abs(horiz.ElDeg-wantEl) > 1e-6 {
			t.Errorf("transit elevation = %.6f°, want %.6f°", horiz.ElDeg, wantEl)
		}
	})

	t.Run("west of meridian", func(t *testing.T) {
		// Positive hour angle: the source has passed transit.
		horiz := ToHorizontal(Equatorial{RAdeg: normalizeDeg(lst - 30), DecDeg: 0}, site, at)
		if horiz.AzDeg <= 180 || horiz.AzDeg >= 360 {
			t.Errorf("azimuth = %.4f°, want in (180°, 360°) for a setting source", horiz.AzDeg)
		}
	})

	t.Run("east of meridian", func(t *testing.T) {
		horiz := ToHorizontal(Equatorial{RAdeg: normalizeDeg(lst + 30), DecDeg: 0}, site, at)
		if horiz.AzDeg <= 0 || horiz.AzDeg >= 180 {
			t.Errorf("azimuth = %.4f°, want in (0°, 180°) for a rising source", horiz.AzDeg)
		}
	})
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b Equatorial
		want float64
	}{
		{"coincident", Equatorial{RAdeg: 50, DecDeg: 20}, Equatorial{RAdeg: 50, DecDeg: 20}, 0},
		{"poles", Equatorial{DecDeg: 90}, Equatorial{DecDeg: -90}, 180},
		{"quarter circle", Equatorial{RAdeg: 0, DecDeg: 0}, Equatorial{RAdeg: 90, DecDeg: 0}, 90},
		{"across RA wrap", Equatorial{RAdeg: 359, DecDeg: 0}, Equatorial{RAdeg: 1, DecDeg: 0}, 2},
		{"small offset at dec 60", Equatorial{RAdeg: 100, DecDeg: 60}, Equatorial{RAdeg: 100.002, DecDeg: 60}, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngularSeparation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("AngularSeparation = %.8f°, want %.8f°", got, tt.want)
			}
			// Symmetric in its arguments.
			if got, rev := AngularSeparation(tt.a, tt.b), AngularSeparation(tt.b, tt.a); got != rev {
				t.Errorf("separation not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-725, 355},
	}
	for _, tt := range tests {
		if got := normalizeDeg(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func astroTestSite() Site {
	return Site{LatDeg: 47.376511, LonDeg: 2.1924002, Name: "nenufar"}
}
