package generate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plantworks/plantworks/internal/logging"
)

// Scenario scripts one canned rewrite: a query containing Match verbatim
// (case-insensitive) yields Response.
type Scenario struct {
	Match    string `yaml:"match"`
	Response string `yaml:"response"`
}

// MockProvider serves scripted rewrites from a scenarios file and echoes the
// draft text for everything else. Useful for demos and tests.
type MockProvider struct {
	scenarios []Scenario
	logger    *logging.Logger
}

// NewMockProvider loads scenarios from path; an empty path means a pure echo
// provider.
func NewMockProvider(path string) (*MockProvider, error) {
	p := &MockProvider{logger: logging.GetLogger("generate.mock")}

	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p.scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios file: %w", err)
	}

	p.logger.Info("loaded %d mock scenarios from %s", len(p.scenarios), path)
	return p, nil
}

// Rewrite implements Provider.
func (p *MockProvider) Rewrite(ctx context.Context, query, text string) (string, error) {
	lower := strings.ToLower(query)
	for _, s := range p.scenarios {
		if s.Match != "" && strings.Contains(lower, strings.ToLower(s.Match)) {
			return s.Response, nil
		}
	}
	return text, nil
}

// Name implements Provider.
func (p *MockProvider) Name() string {
	return "mock"
}
