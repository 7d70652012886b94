// Package config holds the application configuration and its YAML loader.
//
// Configuration is an explicit struct threaded into constructors. Tools and
// providers never read the environment at call time; everything they need
// arrives through Config.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Empty means all interfaces.
	Host string `koanf:"host"`

	// Port is the port the API server listens on.
	Port int `koanf:"port"`
}

// ProvidersConfig holds credentials and endpoints for external services.
// Every service has a deterministic fallback, so all fields may be empty.
type ProvidersConfig struct {
	// OpenWeatherAPIKey enables live weather lookups when set.
	OpenWeatherAPIKey string `koanf:"openweather_api_key"`

	// GoogleAPIKey and GoogleSearchEngineID enable live text search.
	// When either is empty the search provider returns a mock record.
	GoogleAPIKey         string `koanf:"google_api_key"`
	GoogleSearchEngineID string `koanf:"google_search_engine_id"`

	// Base URLs are overridable for tests against httptest servers.
	GeocoderBaseURL string `koanf:"geocoder_base_url"`
	WeatherBaseURL  string `koanf:"weather_base_url"`
	SearchBaseURL   string `koanf:"search_base_url"`

	// GeocodeCacheSize is the LRU cache capacity for geocoding results.
	GeocodeCacheSize int `koanf:"geocode_cache_size"`
}

// WebhookConfig holds messaging platform webhook settings.
type WebhookConfig struct {
	// VerifyToken is compared against hub.verify_token during the
	// GET verification handshake.
	VerifyToken string `koanf:"verify_token"`

	// AppSecret is the HMAC-SHA1 key used to validate X-Hub-Signature
	// on incoming POST payloads.
	AppSecret string `koanf:"app_secret"`

	// PageToken authorizes outbound sends to the platform send API.
	PageToken string `koanf:"page_token"`

	// SendAPIURL is the platform send endpoint. Empty disables outbound
	// delivery (replies are logged only).
	SendAPIURL string `koanf:"send_api_url"`
}

// GenerateConfig controls the optional response-polish pass.
type GenerateConfig struct {
	// Provider selects the backend: "mock", "anthropic", or "" (disabled).
	Provider string `koanf:"provider"`

	// AnthropicAPIKey and Model configure the anthropic backend.
	AnthropicAPIKey string `koanf:"anthropic_api_key"`
	Model           string `koanf:"model"`

	// ScenariosPath points to a YAML file of scripted mock exchanges.
	ScenariosPath string `koanf:"scenarios_path"`
}

// RAGConfig points at the retrieval sidecar.
type RAGConfig struct {
	// BaseURL of the sidecar exposing /api/plant_rag. Empty disables it.
	BaseURL string `koanf:"base_url"`
}

// TracingConfig holds OpenTelemetry export settings.
type TracingConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Endpoint  string `koanf:"endpoint"`
	TLSCAPath string `koanf:"tls_ca_path"`
}

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	LogLevel  string          `koanf:"log_level"`
	Providers ProvidersConfig `koanf:"providers"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Generate  GenerateConfig  `koanf:"generate"`
	RAG       RAGConfig       `koanf:"rag"`
	Tracing   TracingConfig   `koanf:"tracing"`
}

// Default returns a Config with production defaults. External providers are
// unset, which keeps every tool on its deterministic fallback path.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
		LogLevel: "info",
		Providers: ProvidersConfig{
			GeocoderBaseURL:  "https://nominatim.openstreetmap.org/search",
			WeatherBaseURL:   "https://api.openweathermap.org/data/2.5/weather",
			SearchBaseURL:    "https://www.googleapis.com/customsearch/v1",
			GeocodeCacheSize: 256,
		},
		Generate: GenerateConfig{
			Model: "claude-sonnet-4-20250514",
		},
	}
}

// Load builds a Config from defaults overlaid with the YAML file at path.
// An empty path returns the defaults unchanged. The file must exist when a
// path is given.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
		}
		if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
			return nil, fmt.Errorf("failed to parse config from %q: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return NewConfigError("server.port must be between 1 and 65535")
	}

	if c.Providers.GeocodeCacheSize < 1 {
		return NewConfigError("providers.geocode_cache_size must be at least 1")
	}

	switch c.Generate.Provider {
	case "", "mock", "anthropic":
	default:
		return NewConfigError("generate.provider must be \"mock\", \"anthropic\", or empty")
	}

	if c.Generate.Provider == "anthropic" && c.Generate.AnthropicAPIKey == "" {
		return NewConfigError("generate.anthropic_api_key must be set when generate.provider is \"anthropic\"")
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return NewConfigError("tracing.endpoint must be set when tracing is enabled")
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	message string
}

// NewConfigError creates a new configuration error
func NewConfigError(message string) *ConfigError {
	return &ConfigError{message: message}
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return e.message
}
