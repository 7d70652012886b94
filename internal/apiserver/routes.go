package apiserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerHandlers registers all HTTP handlers.
func (s *Server) registerHandlers() {
	s.router.HandleFunc("/chat", s.withMethod(http.MethodPost, s.handleChat))
	s.router.HandleFunc("/health", s.withMethod(http.MethodGet, s.handleHealth))

	// The webhook path serves both the GET verification handshake and
	// POST message delivery.
	s.router.HandleFunc("/webhook", s.handleWebhook)

	s.registerMetricsHandler()
	s.registerMCPHandler()
}

// registerMetricsHandler mounts the prometheus scrape endpoint.
func (s *Server) registerMetricsHandler() {
	if s.gatherer == nil {
		s.logger.Debug("metrics gatherer not configured, skipping /metrics endpoint")
		return
	}

	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.logger.Info("Metrics endpoint registered at /metrics")
}
