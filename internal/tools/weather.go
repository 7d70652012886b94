package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/providers"
)

// WeatherInput is the input for weather_lookup.
type WeatherInput struct {
	// Location is a city, state/country, or coordinates string.
	Location string `json:"location"`
	// Days is the number of forecast days (default 7, minimum 1).
	Days int `json:"days"`
}

// GrowingConditions are care recommendations derived purely from current
// temperature and humidity.
type GrowingConditions struct {
	WateringRecommendation string `json:"watering_recommendation"`
	OutdoorSuitable        bool   `json:"outdoor_suitable"`
	FrostWarning           bool   `json:"frost_warning"`
	HeatStressWarning      bool   `json:"heat_stress_warning"`
	HumidityLevel          string `json:"humidity_level"`
}

// WeatherReport is the output of weather_lookup.
type WeatherReport struct {
	Location          string                   `json:"location"`
	Current           providers.CurrentWeather `json:"current"`
	GrowingConditions GrowingConditions        `json:"growing_conditions"`
}

// WeatherTool resolves a location and fetches current weather, then derives
// growing-condition recommendations. Unlike search, this tool has no mock
// fallback: a failed geocode or missing API key is an error.
type WeatherTool struct {
	geocoder *providers.Geocoder
	weather  *providers.WeatherClient
	logger   *logging.Logger
}

// NewWeatherTool builds the weather_lookup tool.
func NewWeatherTool(geocoder *providers.Geocoder, weather *providers.WeatherClient) *WeatherTool {
	return &WeatherTool{
		geocoder: geocoder,
		weather:  weather,
		logger:   logging.GetLogger("tools.weather"),
	}
}

func (t *WeatherTool) Name() string { return "weather_lookup" }

func (t *WeatherTool) Description() string {
	return "Get current weather for a location with growing-condition recommendations (watering, frost and heat warnings, humidity assessment)."
}

func (t *WeatherTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "City, state/country or coordinates",
			},
			"days": map[string]interface{}{
				"type":        "integer",
				"description": "Number of forecast days (default: 7)",
			},
		},
	}
}

// DeriveGrowingConditions maps current temperature and humidity to care
// recommendations. Pure function; the thresholds are the contract:
// watering "increase" below 50% humidity, outdoor band (10, 35) exclusive,
// frost below 5, heat above 30, humidity "good" within [40, 70].
func DeriveGrowingConditions(temperature, humidity float64) GrowingConditions {
	watering := "normal"
	if humidity <= 50 {
		watering = "increase"
	}

	humidityLevel := "monitor"
	if humidity >= 40 && humidity <= 70 {
		humidityLevel = "good"
	}

	return GrowingConditions{
		WateringRecommendation: watering,
		OutdoorSuitable:        temperature > 10 && temperature < 35,
		FrostWarning:           temperature < 5,
		HeatStressWarning:      temperature > 30,
		HumidityLevel:          humidityLevel,
	}
}

// Lookup is the typed execution path used by specialists.
func (t *WeatherTool) Lookup(ctx context.Context, input WeatherInput) (*WeatherReport, error) {
	coords, ok := t.geocoder.Lookup(ctx, input.Location)
	if !ok {
		return nil, fmt.Errorf("Could not geocode location")
	}

	current, err := t.weather.Current(ctx, coords)
	if err != nil {
		return nil, err
	}

	return &WeatherReport{
		Location:          input.Location,
		Current:           *current,
		GrowingConditions: DeriveGrowingConditions(current.Temperature, current.Humidity),
	}, nil
}

func (t *WeatherTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in WeatherInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}
	if in.Days < 1 {
		in.Days = 7
	}

	report, err := t.Lookup(ctx, in)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}

	return &Result{
		Success: true,
		Data:    report,
		Summary: fmt.Sprintf("Current conditions for %s: %.1f°C, %.0f%% humidity", in.Location, report.Current.Temperature, report.Current.Humidity),
	}, nil
}
