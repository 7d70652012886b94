package generate

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
)

const polishSystemPrompt = `You are the voice of Plantworks, a friendly team of plant experts.
Rewrite the draft answer so it reads naturally and warmly while preserving
every fact, number, price, URL, and recommendation exactly as given. Do not
add new claims. Answer with the rewritten text only.`

const polishMaxTokens = 2048

// AnthropicProvider polishes answers through the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
	logger *logging.Logger
}

// NewAnthropicProvider builds the anthropic backend from config. The API key
// must be set; config validation enforces this.
func NewAnthropicProvider(cfg config.GenerateConfig) (*AnthropicProvider, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("anthropic API key not set")
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:  cfg.Model,
		logger: logging.GetLogger("generate.anthropic"),
	}, nil
}

// Rewrite implements Provider.
func (p *AnthropicProvider) Rewrite(ctx context.Context, query, text string) (string, error) {
	prompt := fmt.Sprintf("User asked: %s\n\nDraft answer:\n%s", query, text)

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: polishMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: polishSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var out string
	for _, block := range resp.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	if out == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return out, nil
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}
