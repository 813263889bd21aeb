// Command ls-transit computes rise, set, and transit times for celestial
// sources and draws elevation traces in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-transit/internal/astro"
	"github.com/litescript/ls-transit/internal/ephem"
	"github.com/litescript/ls-transit/internal/logging"
	"github.com/litescript/ls-transit/internal/resolve"
	"github.com/litescript/ls-transit/internal/trace"
	"github.com/litescript/ls-transit/internal/transit"
	"github.com/litescript/ls-transit/internal/ui"
	"github.com/litescript/ls-transit/internal/version"
)

const usageText = `ls-transit %s — transit times and elevation traces

Usage:
  ls-transit [flags] rise|set|meridian    next horizon/meridian crossing
  ls-transit [flags] cross                crossing of -az or -el in -way
  ls-transit [flags] plot                 one-day elevation chart (headless)
  ls-transit [flags] tui                  interactive elevation view
  ls-transit [flags] sep                  separation between -src and -src2

Sources:   catalog names ("Cyg A"), "ra,dec" degrees, sun, moon, planet
           names, or horizons:<id> for spacecraft (network).
Locations: site names (nenufar, lofar, ...), "lat,lon" degrees, or a
           free-form address (geocoded via Nominatim, network).
Times:     now (default), tomorrow, yesterday, RFC 3339, "YYYY-MM-DD
           [hh:mm[:ss]]", jd:/mjd: prefixed or bare day numbers.

Flags:
`

// Chart fallback size when stdout is not a terminal.
const (
	defaultChartWidth  = 100
	defaultChartHeight = 24
)

func main() {
	var (
		srcDesc  = flag.String("src", "", "Source descriptor")
		src2Desc = flag.String("src2", "", "Second source (sep command)")
		locDesc  = flag.String("loc", "nenufar", "Location descriptor")
		timeDesc = flag.String("time", "now", "Start time descriptor")
		azDeg    = flag.Float64("az", 0, "Azimuth crossing target in degrees (cross command)")
		elDeg    = flag.Float64("el", 0, "Elevation crossing target in degrees (cross command)")
		way      = flag.String("way", "rise", "Crossing direction: rise or set")
		step     = flag.Duration("step", trace.DefaultStep, "Trace sampling step (plot/tui)")
		coarse   = flag.Duration("coarse", 30*time.Minute, "Coarse search step")
		mid      = flag.Duration("mid", 5*time.Minute, "Mid search step")
		fine     = flag.Duration("fine", 5*time.Second, "Fine search step")
		horizon  = flag.Duration("horizon", 24*time.Hour, "Search horizon")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usageText, version.Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Which of -az/-el were given matters, not their values.
	azSet, elSet := false, false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "az":
			azSet = true
		case "el":
			elSet = true
		}
	})

	cmd := flag.Arg(0)
	if cmd == "" {
		flag.Usage()
		os.Exit(2)
	}

	resolver := &resolve.Resolver{
		Geocoder: resolve.NewGeocoder("ls-transit/" + version.Version),
		Ephem:    ephem.NewHorizonsClient(),
		Window:   *horizon + 2*time.Hour,
	}

	engine, err := transit.NewEngine(transit.StepSchedule{
		Coarse:  *coarse,
		Mid:     *mid,
		Fine:    *fine,
		Horizon: *horizon,
	})
	if err != nil {
		fatal(err)
	}

	app := &app{
		resolver: resolver,
		engine:   engine,
		logger:   logger,
	}

	switch cmd {
	case "rise", "set", "meridian":
		err = app.runNamedQuery(ctx, cmd, *srcDesc, *locDesc, *timeDesc)
	case "cross":
		err = app.runCrossing(ctx, *srcDesc, *locDesc, *timeDesc, *azDeg, azSet, *elDeg, elSet, *way)
	case "plot":
		err = app.runPlot(ctx, *srcDesc, *locDesc, *timeDesc, *step, false)
	case "tui":
		err = app.runPlot(ctx, *srcDesc, *locDesc, *timeDesc, *step, true)
	case "sep":
		err = app.runSeparation(ctx, *srcDesc, *src2Desc, *locDesc, *timeDesc)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// app bundles the resolved collaborators for one invocation.
type app struct {
	resolver *resolve.Resolver
	engine   *transit.Engine
	logger   *logging.Logger
}

// resolveQuery turns the descriptor flags into concrete query inputs.
func (a *app) resolveQuery(ctx context.Context, srcDesc, locDesc, timeDesc string) (astro.Position, astro.Site, time.Time, error) {
	start, err := a.resolver.Instant(timeDesc)
	if err != nil {
		return nil, astro.Site{}, time.Time{}, err
	}
	site, err := a.resolver.Site(ctx, locDesc)
	if err != nil {
		return nil, astro.Site{}, time.Time{}, err
	}
	source, err := a.resolver.Source(ctx, srcDesc, start, site)
	if err != nil {
		return nil, astro.Site{}, time.Time{}, err
	}

	a.logger.Debug("resolved %s -> %s, %s -> (%.4f, %.4f), %s -> %s",
		srcDesc, source.Label(), locDesc, site.LatDeg, site.LonDeg,
		timeDesc, start.Format(time.RFC3339))

	return source, site, start, nil
}

func (a *app) runNamedQuery(ctx context.Context, cmd, srcDesc, locDesc, timeDesc string) error {
	source, site, start, err := a.resolveQuery(ctx, srcDesc, locDesc, timeDesc)
	if err != nil {
		return err
	}

	var when time.Time
	switch cmd {
	case "rise":
		when, err = a.engine.RiseTime(ctx, source, site, start)
	case "set":
		when, err = a.engine.SetTime(ctx, source, site, start)
	case "meridian":
		when, err = a.engine.MeridianTime(ctx, source, site, start)
	}
	if err != nil {
		return err
	}

	printResult(cmd, source, site, when)
	return nil
}

func (a *app) runCrossing(ctx context.Context, srcDesc, locDesc, timeDesc string, azDeg float64, azSet bool, elDeg float64, elSet bool, way string) error {
	if azSet == elSet {
		return fmt.Errorf("%w: exactly one of -az or -el must be given", transit.ErrInvalidQuery)
	}
	dir, err := transit.ParseDirection(way)
	if err != nil {
		return err
	}

	target := transit.ElevationTarget(elDeg)
	if azSet {
		target = transit.AzimuthTarget(azDeg)
	}

	source, site, start, err := a.resolveQuery(ctx, srcDesc, locDesc, timeDesc)
	if err != nil {
		return err
	}

	when, err := a.engine.FindCrossing(ctx, source, site, start, target, dir)
	if err != nil {
		return err
	}

	printResult(fmt.Sprintf("%s %s crossing", dir, target), source, site, when)
	return nil
}

func (a *app) runPlot(ctx context.Context, srcDesc, locDesc, timeDesc string, step time.Duration, interactive bool) error {
	source, site, start, err := a.resolveQuery(ctx, srcDesc, locDesc, timeDesc)
	if err != nil {
		return err
	}

	ev := transit.NewEvaluator(source, site)
	tr := trace.Compute(ev, start, trace.DefaultWindow, step)
	summary := a.transitSummary(ctx, source, site, start)

	if interactive {
		p := tea.NewProgram(ui.New(tr, summary), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	width, height := defaultChartWidth, defaultChartHeight
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h-8
		}
	}

	fmt.Printf("%s @ %s — elevation from %s UTC\n\n",
		tr.Source, tr.Site, start.UTC().Format("2006-01-02 15:04"))
	fmt.Println(ui.RenderChart(tr, width, height))
	fmt.Println()
	for _, line := range summary {
		fmt.Println(line)
	}
	return nil
}

// transitSummary formats rise/set/meridian results for display under a
// trace. Individual failures (circumpolar sources) become text rather
// than aborting the chart.
func (a *app) transitSummary(ctx context.Context, source astro.Position, site astro.Site, start time.Time) []string {
	format := func(name string, when time.Time, err error) string {
		switch {
		case errors.Is(err, transit.ErrCrossingNotFound):
			return fmt.Sprintf("%-9s no crossing within %v", name, a.engine.Schedule().Horizon)
		case err != nil:
			return fmt.Sprintf("%-9s %v", name, err)
		default:
			return fmt.Sprintf("%-9s %s UTC", name, when.UTC().Format("2006-01-02 15:04:05"))
		}
	}

	rise, riseErr := a.engine.RiseTime(ctx, source, site, start)
	set, setErr := a.engine.SetTime(ctx, source, site, start)
	meridian, meridianErr := a.engine.MeridianTime(ctx, source, site, start)

	return []string{
		format("rise", rise, riseErr),
		format("set", set, setErr),
		format("meridian", meridian, meridianErr),
	}
}

func (a *app) runSeparation(ctx context.Context, srcDesc, src2Desc, locDesc, timeDesc string) error {
	if src2Desc == "" {
		return fmt.Errorf("%w: sep needs -src and -src2", transit.ErrInvalidQuery)
	}

	source, site, start, err := a.resolveQuery(ctx, srcDesc, locDesc, timeDesc)
	if err != nil {
		return err
	}
	source2, err := a.resolver.Source(ctx, src2Desc, start, site)
	if err != nil {
		return err
	}

	sep := astro.AngularSeparation(source.At(start), source2.At(start))
	fmt.Printf("%s — %s separation: %.4f°\n", source.Label(), source2.Label(), sep)
	return nil
}

func printResult(what string, source astro.Position, site astro.Site, when time.Time) {
	siteName := site.Name
	if siteName == "" {
		siteName = fmt.Sprintf("(%.4f, %.4f)", site.LatDeg, site.LonDeg)
	}
	fmt.Printf("%s %s @ %s: %s (JD %.5f)\n",
		source.Label(), what, siteName,
		when.UTC().Format(time.RFC3339), astro.JulianDate(when))
}
