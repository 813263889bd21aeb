package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-transit/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// SampleStep is the spacing between requested ephemeris points.
	SampleStep = 10 * time.Minute

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second
)

// HorizonsClient queries JPL Horizons for astrometric RA/Dec ephemerides
// as seen from a geodetic site.
type HorizonsClient struct {
	client  *http.Client
	baseURL string
}

// NewHorizonsClient creates a Horizons API client.
func NewHorizonsClient() *HorizonsClient {
	return &HorizonsClient{
		client:  &http.Client{Timeout: RequestTimeout},
		baseURL: HorizonsAPIURL,
	}
}

// SetBaseURL overrides the API endpoint. Used in tests.
func (c *HorizonsClient) SetBaseURL(u string) {
	c.baseURL = u
}

// Name implements Provider.
func (c *HorizonsClient) Name() string {
	return "Horizons"
}

// Position implements Provider. It fetches RA/Dec samples over
// [start, end] at SampleStep spacing and wraps them in an
// interpolating position provider.
func (c *HorizonsClient) Position(ctx context.Context, target string, start, end time.Time, site astro.Site) (astro.Position, error) {
	samples, err := c.query(ctx, target, start, end, SampleStep, site)
	if err != nil {
		return nil, err
	}
	return NewSampledPosition("horizons:"+target, samples)
}

// query makes a request to the Horizons API and parses the result.
func (c *HorizonsClient) query(ctx context.Context, target string, start, end time.Time, step time.Duration, site astro.Site) ([]Sample, error) {
	// Parameter values must be single-quoted per the API convention.
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%s'", target))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'coord@399'")
	params.Set("COORD_TYPE", "GEODETIC")
	params.Set("SITE_COORD", fmt.Sprintf("'%.4f,%.4f,0.1'", site.LonDeg, site.LatDeg))
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(start)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(end)))
	params.Set("STEP_SIZE", fmt.Sprintf("'%s'", formatStepSize(step)))
	params.Set("QUANTITIES", "'1'") // 1=Astrometric RA/Dec
	params.Set("ANG_FORMAT", "DEG")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build horizons request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read horizons response: %w", err)
	}

	return parseHorizonsResponse(body)
}

// horizonsResponse is the JSON envelope; the ephemeris itself is a
// fixed-format text blob in Result.
type horizonsResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// parseHorizonsResponse extracts RA/Dec samples from the API response.
func parseHorizonsResponse(body []byte) ([]Sample, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse horizons JSON: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("horizons error: %s", resp.Error)
	}

	// Data lines sit between the $$SOE and $$EOE markers.
	soe := strings.Index(resp.Result, "$$SOE")
	eoe := strings.Index(resp.Result, "$$EOE")
	if soe == -1 || eoe == -1 || soe >= eoe {
		return nil, fmt.Errorf("ephemeris markers not found in horizons result")
	}

	var samples []Sample
	for _, line := range strings.Split(resp.Result[soe+5:eoe], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sample, err := parseEphemerisLine(line)
		if err != nil {
			continue // skip unparseable lines (blank separators, notes)
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no ephemeris samples in horizons result")
	}

	return samples, nil
}

// parseEphemerisLine parses one data line. Format for QUANTITIES='1'
// with ANG_FORMAT=DEG:
//
//	2025-Dec-05 00:00 *m  261.032124  -3.878027
//
// Fields: date, time, optional flags, RA, Dec. The RA/Dec values are
// the first two numeric fields after the timestamp.
func parseEphemerisLine(line string) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Sample{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	t, err := parseHorizonsDateTime(fields[0] + " " + fields[1])
	if err != nil {
		return Sample{}, err
	}

	var ra, dec float64
	numeric := 0
	for _, f := range fields[2:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		numeric++
		if numeric == 1 {
			ra = v
		} else {
			dec = v
			break
		}
	}
	if numeric < 2 {
		return Sample{}, fmt.Errorf("RA/Dec values not found")
	}

	return Sample{
		Time:  t,
		Coord: astro.Equatorial{RAdeg: ra, DecDeg: dec},
	}, nil
}

// parseHorizonsDateTime parses the "2025-Dec-05 00:00" ephemeris stamp.
func parseHorizonsDateTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-Jan-02 15:04", "2006-Jan-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// formatHorizonsTime formats an instant for the API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// formatStepSize formats a duration as a Horizons step size.
func formatStepSize(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%d h", minutes/60)
	}
	return fmt.Sprintf("%d m", minutes)
}
