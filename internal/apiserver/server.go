// Package apiserver exposes the chat REST API, the messaging-platform
// webhook, prometheus metrics, and the streamable MCP endpoint on a single
// HTTP listener.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/coordinator"
	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/session"
)

// Server handles HTTP API requests and the messaging webhook.
type Server struct {
	cfg         config.ServerConfig
	webhookCfg  config.WebhookConfig
	server      *http.Server
	router      *http.ServeMux
	logger      *logging.Logger
	coordinator *coordinator.Coordinator
	sessions    *session.Store
	gatherer    prometheus.Gatherer
	mcpServer   *server.MCPServer
	// sendClient performs outbound send-API calls for webhook replies.
	sendClient *http.Client
}

// New creates the API server. gatherer and mcpServer are optional; a nil
// gatherer disables /metrics and a nil mcpServer disables /v1/mcp.
func New(
	cfg config.ServerConfig,
	webhookCfg config.WebhookConfig,
	coord *coordinator.Coordinator,
	sessions *session.Store,
	gatherer prometheus.Gatherer,
	mcpServer *server.MCPServer,
) *Server {
	s := &Server{
		cfg:         cfg,
		webhookCfg:  webhookCfg,
		router:      http.NewServeMux(),
		logger:      logging.GetLogger("apiserver"),
		coordinator: coord,
		sessions:    sessions,
		gatherer:    gatherer,
		mcpServer:   mcpServer,
		sendClient:  &http.Client{Timeout: 10 * time.Second},
	}

	s.registerHandlers()
	s.configureHTTPServer()

	return s
}

// configureHTTPServer creates the HTTP server with CORS middleware and timeouts.
func (s *Server) configureHTTPServer() {
	handler := s.corsMiddleware(s.router)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// registerMCPHandler mounts the MCP server on the router.
func (s *Server) registerMCPHandler() {
	if s.mcpServer == nil {
		s.logger.Debug("MCP server not configured, skipping /v1/mcp endpoint")
		return
	}

	endpointPath := "/v1/mcp"
	streamableServer := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithEndpointPath(endpointPath),
		server.WithStateLess(true),
	)

	s.router.Handle(endpointPath, streamableServer)
	s.logger.Info("MCP endpoint registered at %s", endpointPath)
}

// Start begins listening for requests. It returns once the listener
// goroutine is launched.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting API server on %s:%d", s.cfg.Host, s.cfg.Port)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error: %v", err)
		}
	}()

	s.logger.Info("API server started and listening on port %d", s.cfg.Port)
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")

	done := make(chan error, 1)
	go func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- s.server.Shutdown(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("HTTP server shutdown error: %v", err)
			return err
		}
		s.logger.Info("API server stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("API server shutdown timeout")
		return ctx.Err()
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status": "healthy",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, response)
}

// Name returns the human-readable name of the API server component.
func (s *Server) Name() string {
	return "API Server"
}

// Router exposes the handler stack for tests.
func (s *Server) Router() http.Handler {
	return s.corsMiddleware(s.router)
}
