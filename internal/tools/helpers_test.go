package tools

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/providers"
)

// newTestGeocoder returns a geocoder backed by a stub Nominatim server that
// resolves every query to the given coordinates.
func newTestGeocoder(t *testing.T, lat, lon string) *providers.Geocoder {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[{"lat":%q,"lon":%q}]`, lat, lon)
	}))
	t.Cleanup(srv.Close)

	geo, err := providers.NewGeocoder(config.ProvidersConfig{
		GeocoderBaseURL:  srv.URL,
		GeocodeCacheSize: 8,
	})
	require.NoError(t, err)
	return geo
}

// newFailingGeocoder returns a geocoder whose lookups never resolve.
func newFailingGeocoder(t *testing.T) *providers.Geocoder {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	geo, err := providers.NewGeocoder(config.ProvidersConfig{
		GeocoderBaseURL:  srv.URL,
		GeocodeCacheSize: 8,
	})
	require.NoError(t, err)
	return geo
}

// newTestWeatherClient returns a weather client backed by a stub OpenWeather
// server reporting the given temperature and humidity.
func newTestWeatherClient(t *testing.T, temp, humidity float64) *providers.WeatherClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"main":{"temp":%g,"humidity":%g},"weather":[{"description":"clear sky"}],"wind":{"speed":3.1}}`, temp, humidity)
	}))
	t.Cleanup(srv.Close)

	return providers.NewWeatherClient(config.ProvidersConfig{
		WeatherBaseURL:    srv.URL,
		OpenWeatherAPIKey: "test-key",
	})
}

// newMockSearchTool returns a plant search tool without live credentials, so
// every query yields the deterministic mock result.
func newMockSearchTool(t *testing.T) *PlantSearchTool {
	t.Helper()
	return NewPlantSearchTool(providers.NewSearchClient(config.ProvidersConfig{}))
}

// newEmptySearchTool returns a plant search tool whose live backend always
// answers with zero items.
func newEmptySearchTool(t *testing.T) *PlantSearchTool {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	t.Cleanup(srv.Close)

	return NewPlantSearchTool(providers.NewSearchClient(config.ProvidersConfig{
		SearchBaseURL:        srv.URL,
		GoogleAPIKey:         "test-key",
		GoogleSearchEngineID: "test-cx",
	}))
}
