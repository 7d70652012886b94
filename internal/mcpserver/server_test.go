package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry := tools.NewRegistry(nil)
	registry.Register(tools.NewMarketplaceSearchTool())
	registry.Register(tools.NewDiseaseIdentifierTool())
	registry.Register(tools.NewSellerVerifierTool())
	return New(registry, "0.1.0-test")
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s.MCPServer())
}

func TestToolHandler_Success(t *testing.T) {
	s := newTestServer(t)
	handler := s.createToolHandler("marketplace_search")

	request := mcp.CallToolRequest{}
	request.Params.Name = "marketplace_search"
	request.Params.Arguments = map[string]interface{}{
		"plant_name": "monstera",
		"location":   "nationwide",
	}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.Contains(t, text.Text, "The Sill")
}

func TestToolHandler_UnknownToolIsError(t *testing.T) {
	s := newTestServer(t)
	handler := s.createToolHandler("no_such_tool")

	request := mcp.CallToolRequest{}
	request.Params.Name = "no_such_tool"
	request.Params.Arguments = map[string]interface{}{}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
