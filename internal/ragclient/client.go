// Package ragclient talks to the retrieval sidecar that answers free-form
// plant questions from its vector knowledge base. The sidecar is opaque to
// this service.
package ragclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
)

const (
	requestTimeout = 15 * time.Second
	defaultTopK    = 3
)

// Answer is one retrieved knowledge-base entry.
type Answer struct {
	Plant string `json:"plant"`
	Info  string `json:"info"`
}

// Client posts questions to the sidecar's /api/plant_rag endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logging.Logger
}

// New builds a client from RAG config. Returns nil when no base URL is
// configured, disabling the sidecar.
func New(cfg config.RAGConfig) *Client {
	if cfg.BaseURL == "" {
		return nil
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logging.GetLogger("ragclient"),
	}
}

type ragRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

type ragResponse struct {
	Answers []Answer `json:"answers"`
}

// Ask retrieves up to topK knowledge-base answers for the question.
func (c *Client) Ask(ctx context.Context, question string, topK int) ([]Answer, error) {
	if topK < 1 {
		topK = defaultTopK
	}

	body, err := json.Marshal(ragRequest{Question: question, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("failed to encode RAG request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/plant_rag", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build RAG request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RAG sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("RAG sidecar returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("RAG sidecar error: %d", resp.StatusCode)
	}

	var payload ragResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode RAG response: %w", err)
	}
	return payload.Answers, nil
}
