package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
)

// ErrNoWeatherKey is returned when no OpenWeather API key is configured.
var ErrNoWeatherKey = fmt.Errorf("OpenWeather API key not set")

// CurrentWeather holds the subset of the current-weather response the care
// tools consume.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"weather"`
	WindSpeed   float64 `json:"wind_speed"`
}

// WeatherClient fetches current weather from an OpenWeather-compatible
// endpoint in metric units.
type WeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logging.Logger
}

// NewWeatherClient builds a WeatherClient from provider config.
func NewWeatherClient(cfg config.ProvidersConfig) *WeatherClient {
	return &WeatherClient{
		baseURL: cfg.WeatherBaseURL,
		apiKey:  cfg.OpenWeatherAPIKey,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logging.GetLogger("providers.weather"),
	}
}

// openWeatherResponse mirrors the fields of the OpenWeather current-weather
// payload that CurrentWeather is built from.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current weather for the given coordinates.
// Returns ErrNoWeatherKey when no API key is configured; non-200 responses
// are errors.
func (w *WeatherClient) Current(ctx context.Context, coords Coordinates) (*CurrentWeather, error) {
	if w.apiKey == "" {
		w.logger.Warn("weather lookup attempted without API key")
		return nil, ErrNoWeatherKey
	}

	reqURL := fmt.Sprintf("%s?lat=%g&lon=%g&appid=%s&units=metric", w.baseURL, coords.Lat, coords.Lon, w.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenWeather API exception: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.logger.Error("OpenWeather API error: %d", resp.StatusCode)
		return nil, fmt.Errorf("OpenWeather API error: %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	current := &CurrentWeather{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		current.Description = payload.Weather[0].Description
	}

	return current, nil
}
