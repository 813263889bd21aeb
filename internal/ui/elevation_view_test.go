package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
	"github.com/litescript/ls-transit/internal/trace"
	"github.com/litescript/ls-transit/internal/transit"
)

func testTrace() *trace.Trace {
	site := astro.Site{LatDeg: 47.3765, LonDeg: 2.1924, Name: "NenuFAR"}
	source := astro.Fixed{
		Name:  "Cyg A",
		Coord: astro.Equatorial{RAdeg: 299.868, DecDeg: 40.734},
	}
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	return trace.Compute(transit.NewEvaluator(source, site), start, 24*time.Hour, 30*time.Minute)
}

func TestRenderChart(t *testing.T) {
	out := RenderChart(testTrace(), 100, 24)

	if out == "" {
		t.Fatal("RenderChart() returned empty output")
	}
	lines := strings.Split(out, "\n")
	// Plot rows plus two axis rows.
	if want := 24; len(lines) != want {
		t.Errorf("chart has %d lines, want %d", len(lines), want)
	}

	if !strings.Contains(out, "●") {
		t.Error("chart contains no data points")
	}
	if !strings.Contains(out, "0°") {
		t.Error("chart is missing the horizon label")
	}
	if !strings.Contains(out, "╌") {
		t.Error("chart is missing the horizon line")
	}
}

func TestRenderChartTooSmall(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", 8, 24},
		{"short", 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderChart(testTrace(), tt.width, tt.height)
			if !strings.Contains(out, "too small") {
				t.Errorf("RenderChart(%d, %d) = %q, want the too-small notice", tt.width, tt.height, out)
			}
		})
	}
}

func TestRenderChartDegenerateTrace(t *testing.T) {
	tr := &trace.Trace{Samples: []trace.Sample{{ElDeg: 10}}}
	out := RenderChart(tr, 100, 24)
	if !strings.Contains(out, "too small") {
		t.Errorf("RenderChart() on a one-sample trace = %q, want the too-small notice", out)
	}
}
