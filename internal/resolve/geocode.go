package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/litescript/ls-transit/internal/astro"
)

const (
	// NominatimURL is the OpenStreetMap Nominatim search endpoint.
	NominatimURL = "https://nominatim.openstreetmap.org/search"

	// GeocodeTimeout is the HTTP request timeout for address lookups.
	GeocodeTimeout = 10 * time.Second

	// geocodeCacheSize bounds the resolved-address cache. Address
	// descriptors repeat across queries in a session; Nominatim asks
	// clients not to re-request identical queries.
	geocodeCacheSize = 128
)

// Geocoder resolves free-form addresses to coordinates via Nominatim.
type Geocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
	cache     *lru.Cache[string, astro.Site]
}

// NewGeocoder creates a geocoder. The user agent identifies the tool to
// the Nominatim service, which requires one.
func NewGeocoder(userAgent string) *Geocoder {
	cache, _ := lru.New[string, astro.Site](geocodeCacheSize)
	return &Geocoder{
		client:    &http.Client{Timeout: GeocodeTimeout},
		baseURL:   NominatimURL,
		userAgent: userAgent,
		cache:     cache,
	}
}

// SetBaseURL overrides the Nominatim endpoint. Used in tests.
func (g *Geocoder) SetBaseURL(u string) {
	g.baseURL = u
}

// nominatimResult is one entry of the Nominatim JSON response.
// Coordinates come back as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Lookup resolves an address to a site, consulting the cache first.
func (g *Geocoder) Lookup(ctx context.Context, query string) (astro.Site, error) {
	if site, ok := g.cache.Get(query); ok {
		return site, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return astro.Site{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return astro.Site{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return astro.Site{}, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return astro.Site{}, fmt.Errorf("parse geocode response: %w", err)
	}
	if len(results) == 0 {
		return astro.Site{}, fmt.Errorf("no match for %q", query)
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return astro.Site{}, fmt.Errorf("malformed coordinates in geocode response for %q", query)
	}

	site := astro.Site{LatDeg: lat, LonDeg: lon, Name: query}
	g.cache.Add(query, site)

	return site, nil
}
