package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-transit/internal/trace"
)

// Band colors follow the classic elevation-chart shading: gray below
// the horizon, warm colors for low passes, green when well placed.
const (
	colorBandBelow = "#5A5A5A"
	colorBandLow   = "#FF6347"
	colorBandMid   = "#FFA500"
	colorBandHigh  = "#7CFC00"
	colorAxis      = "#666666"
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAxis))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	bandStyles = map[trace.Band]lipgloss.Style{
		trace.BandBelow: lipgloss.NewStyle().Foreground(lipgloss.Color(colorBandBelow)),
		trace.BandLow:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorBandLow)),
		trace.BandMid:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorBandMid)),
		trace.BandHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorBandHigh)),
	}
)

// gutterWidth is the left margin holding elevation labels.
const gutterWidth = 6

// RenderChart draws the elevation trace as a colored terminal chart.
// width and height are the total cell budget including axes.
func RenderChart(tr *trace.Trace, width, height int) string {
	plotW := width - gutterWidth
	plotH := height - 2 // reserve two rows for the time axis
	if plotW < 10 || plotH < 4 || len(tr.Samples) < 2 {
		return labelStyle.Render("(terminal too small for chart)")
	}

	points := tr.Resample(plotW)

	// Vertical range: cover the curve and always include the horizon.
	minEl, maxEl := tr.MinMax()
	lo := math.Floor(math.Min(minEl, -5)/10) * 10
	hi := math.Ceil(math.Max(maxEl, 10)/10) * 10

	rowFor := func(el float64) int {
		f := (el - lo) / (hi - lo)
		r := plotH - 1 - int(math.Round(f*float64(plotH-1)))
		if r < 0 {
			r = 0
		}
		if r > plotH-1 {
			r = plotH - 1
		}
		return r
	}
	horizonRow := rowFor(0)

	// Paint the grid row by row.
	var b strings.Builder
	for row := 0; row < plotH; row++ {
		// Gutter label at the top, horizon, and bottom rows.
		switch row {
		case 0:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%4.0f° ", hi)))
		case horizonRow:
			b.WriteString(axisStyle.Render("   0° "))
		case plotH - 1:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%4.0f° ", lo)))
		default:
			b.WriteString(strings.Repeat(" ", gutterWidth))
		}

		for col := 0; col < plotW; col++ {
			el := points[col].ElDeg
			switch {
			case rowFor(el) == row:
				b.WriteString(bandStyles[trace.BandFor(el)].Render("●"))
			case row == horizonRow:
				b.WriteString(axisStyle.Render("╌"))
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	// Time axis: a tick roughly every 12 columns.
	tick := strings.Repeat(" ", gutterWidth)
	label := strings.Repeat(" ", gutterWidth)
	step := 12
	for col := 0; col < plotW; col += step {
		stamp := points[col].Time.UTC().Format("15:04")
		tick += "┬" + strings.Repeat(" ", step-1)
		pad := step - len(stamp)
		if pad < 0 {
			pad = 0
		}
		label += stamp + strings.Repeat(" ", pad)
	}
	b.WriteString(axisStyle.Render(strings.TrimRight(tick, " ")))
	b.WriteByte('\n')
	b.WriteString(axisStyle.Render(strings.TrimRight(label, " ")))

	return b.String()
}
