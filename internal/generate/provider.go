// Package generate implements the optional response-polish pass. A Provider
// rewords the coordinator's assembled text; any failure leaves the
// deterministic text untouched.
package generate

import (
	"context"
	"fmt"

	"github.com/plantworks/plantworks/internal/config"
)

// Provider rewords deterministic answer text. Implementations must be safe
// for concurrent use.
type Provider interface {
	// Rewrite returns a polished version of text for the given user query.
	Rewrite(ctx context.Context, query, text string) (string, error)

	// Name returns the provider name for logging and display.
	Name() string
}

// New builds a Provider from config. An empty provider name disables the
// polish pass and returns nil without error.
func New(cfg config.GenerateConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "mock":
		return NewMockProvider(cfg.ScenariosPath)
	case "anthropic":
		return NewAnthropicProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown generate provider %q", cfg.Provider)
	}
}
