// Package mcpserver exposes the tool registry over the Model Context
// Protocol so external agents can call the plant tools directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/tools"
)

// Server wraps the mcp-go server around the tool registry.
type Server struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
	logger    *logging.Logger
}

// New builds an MCP server publishing every tool in the registry.
func New(registry *tools.Registry, version string) *Server {
	mcpServer := server.NewMCPServer(
		"Plantworks MCP Server",
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		registry:  registry,
		logger:    logging.GetLogger("mcpserver"),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	for _, tool := range s.registry.List() {
		schemaJSON, err := json.Marshal(tool.InputSchema())
		if err != nil {
			// Schemas are static literals; a marshal failure is a programming error.
			panic(fmt.Sprintf("failed to marshal schema for tool %s: %v", tool.Name(), err))
		}

		mcpTool := mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schemaJSON)
		s.mcpServer.AddTool(mcpTool, s.createToolHandler(tool.Name()))
		s.logger.Debug("registered MCP tool %s", tool.Name())
	}
}

func (s *Server) createToolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		result := s.registry.Execute(ctx, name, args)
		if !result.Success {
			return mcp.NewToolResultError(result.Error), nil
		}

		resultJSON, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

// MCPServer returns the underlying mcp-go server for transport mounting.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}
