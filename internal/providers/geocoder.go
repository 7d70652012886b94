// Package providers contains the HTTP clients for external services used by
// the tools: geocoding, current weather, and text search. Every client takes
// its credentials and base URL from config at construction time and carries a
// fixed 10s timeout. Failures surface as errors or deterministic fallbacks;
// there are no retries.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
)

const (
	requestTimeout = 10 * time.Second
	userAgent      = "plantworks-mvp"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder resolves free-text locations to coordinates via a Nominatim-style
// search endpoint. Results are cached in an LRU keyed by the raw location
// string; the cache is safe for concurrent use.
type Geocoder struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, Coordinates]
	logger  *logging.Logger
}

// NewGeocoder builds a Geocoder from provider config.
func NewGeocoder(cfg config.ProvidersConfig) (*Geocoder, error) {
	cache, err := lru.New[string, Coordinates](cfg.GeocodeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode cache: %w", err)
	}

	return &Geocoder{
		baseURL: cfg.GeocoderBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
		cache:   cache,
		logger:  logging.GetLogger("providers.geocoder"),
	}, nil
}

// nominatimResult is one entry of the Nominatim search response. Coordinates
// arrive as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves a location to coordinates. The second return value is false
// when the location cannot be geocoded for any reason (empty input, transport
// failure, no results).
func (g *Geocoder) Lookup(ctx context.Context, location string) (Coordinates, bool) {
	if location == "" {
		return Coordinates{}, false
	}

	if coords, ok := g.cache.Get(location); ok {
		return coords, true
	}

	reqURL := fmt.Sprintf("%s?q=%s&format=json&limit=1", g.baseURL, url.QueryEscape(location))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		g.logger.Error("failed to build geocode request for %q: %v", location, err)
		return Coordinates{}, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocoding error for %q: %v", location, err)
		return Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("geocoding returned status %d for %q", resp.StatusCode, location)
		return Coordinates{}, false
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		g.logger.Warn("failed to decode geocode response for %q: %v", location, err)
		return Coordinates{}, false
	}

	if len(results) == 0 {
		return Coordinates{}, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		g.logger.Warn("unparseable coordinates for %q: lat=%q lon=%q", location, results[0].Lat, results[0].Lon)
		return Coordinates{}, false
	}

	coords := Coordinates{Lat: lat, Lon: lon}
	g.cache.Add(location, coords)
	return coords, true
}
