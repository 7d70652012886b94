package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/config"
)

func TestNew(t *testing.T) {
	provider, err := New(config.GenerateConfig{})
	require.NoError(t, err)
	assert.Nil(t, provider)

	provider, err = New(config.GenerateConfig{Provider: "mock"})
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.Equal(t, "mock", provider.Name())

	_, err = New(config.GenerateConfig{Provider: "bard"})
	require.Error(t, err)

	_, err = New(config.GenerateConfig{Provider: "anthropic"})
	require.Error(t, err, "anthropic without key must fail")
}

func TestMockProvider_Echo(t *testing.T) {
	provider, err := NewMockProvider("")
	require.NoError(t, err)

	out, err := provider.Rewrite(context.Background(), "any question", "draft text")
	require.NoError(t, err)
	assert.Equal(t, "draft text", out)
}

func TestMockProvider_Scenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- match: "monstera"
  response: "Scripted monstera answer."
- match: "snake plant"
  response: "Scripted snake plant answer."
`), 0o644))

	provider, err := NewMockProvider(path)
	require.NoError(t, err)

	out, err := provider.Rewrite(context.Background(), "Tell me about Monstera", "draft")
	require.NoError(t, err)
	assert.Equal(t, "Scripted monstera answer.", out)

	out, err = provider.Rewrite(context.Background(), "about ferns", "draft")
	require.NoError(t, err)
	assert.Equal(t, "draft", out)
}

func TestMockProvider_BadFile(t *testing.T) {
	_, err := NewMockProvider("/nonexistent/scenarios.yaml")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
	_, err = NewMockProvider(path)
	require.Error(t, err)
}
