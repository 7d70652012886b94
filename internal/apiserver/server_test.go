package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/coordinator"
	"github.com/plantworks/plantworks/internal/providers"
	"github.com/plantworks/plantworks/internal/session"
	"github.com/plantworks/plantworks/internal/specialist"
	"github.com/plantworks/plantworks/internal/tools"
)

func newTestCoordinator() *coordinator.Coordinator {
	search := tools.NewPlantSearchTool(providers.NewSearchClient(config.ProvidersConfig{}))
	return coordinator.New(
		specialist.NewBotanist(search),
		specialist.NewGardener(),
		specialist.NewEcologist(),
		specialist.NewMerchant(tools.NewMarketplaceSearchTool()),
	)
}

func newTestServer(t *testing.T, webhookCfg config.WebhookConfig) *Server {
	t.Helper()
	return New(
		config.ServerConfig{Host: "127.0.0.1", Port: 0},
		webhookCfg,
		newTestCoordinator(),
		session.NewStore(),
		prometheus.NewRegistry(),
		nil,
	)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestChat(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{
			name:     "care query",
			query:    "how do I water my monstera?",
			contains: "Monstera deliciosa Care Guide",
		},
		{
			name:     "marketplace query",
			query:    "where can I buy a snake plant under $30?",
			contains: "Plant Marketplace Results",
		},
		{
			name:     "empty query gets the welcome menu",
			query:    "",
			contains: "Welcome to Plantworks!",
		},
	}

	s := newTestServer(t, config.WebhookConfig{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(ChatRequest{Query: tt.query, UserID: "u1", SessionID: "s1"})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp ChatResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Response, tt.contains)
			assert.NotEmpty(t, resp.Response)
		})
	}
}

func TestChat_CreatesSession(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	payload, _ := json.Marshal(ChatRequest{Query: "hello", UserID: "alice", SessionID: "chat-1"})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := s.sessions.Get("alice", "chat-1")
	assert.True(t, ok)
}

func TestChat_DefaultIdentifiers(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(`{"query":"hello"}`)))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := s.sessions.Get("web_user", "web_session")
	assert.True(t, ok)
}

func TestChat_InvalidBody(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body["error"])
}

func TestChat_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["error"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, config.WebhookConfig{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
