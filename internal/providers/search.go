package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
)

// SearchResult is a single text search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// SearchResponse is the result set of a text search, plus where it came from.
// Sources is ["mock"] when the fallback record was served.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Sources []string       `json:"sources"`
}

// SearchClient queries a Google Custom Search v1 compatible endpoint.
// When the API key or engine ID is missing, or the request itself fails, it
// serves a fixed mock record instead of an error: search is best-effort by
// contract, unlike weather.
type SearchClient struct {
	baseURL  string
	apiKey   string
	engineID string
	client   *http.Client
	logger   *logging.Logger
}

// NewSearchClient builds a SearchClient from provider config.
func NewSearchClient(cfg config.ProvidersConfig) *SearchClient {
	return &SearchClient{
		baseURL:  cfg.SearchBaseURL,
		apiKey:   cfg.GoogleAPIKey,
		engineID: cfg.GoogleSearchEngineID,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logging.GetLogger("providers.search"),
	}
}

// mockResponse is the deterministic fallback served when live search is
// unavailable.
func mockResponse() *SearchResponse {
	return &SearchResponse{
		Results: []SearchResult{
			{
				Title:   "Mock Plant Info",
				Snippet: "This is mock plant data.",
				Link:    "https://en.wikipedia.org/wiki/Plant",
			},
		},
		Sources: []string{"mock"},
	}
}

// customSearchResponse mirrors the items array of the Custom Search payload.
type customSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

// Search runs a text search and never fails: missing credentials or transport
// errors fall back to the mock record. A live non-200 response yields an
// empty result set attributed to the live source.
func (s *SearchClient) Search(ctx context.Context, query string, limit int) *SearchResponse {
	if s.apiKey == "" || s.engineID == "" {
		s.logger.Warn("search credentials not set, returning mock data")
		return mockResponse()
	}

	if limit < 1 {
		limit = 1
	}

	reqURL := fmt.Sprintf("%s?key=%s&cx=%s&q=%s&num=%d",
		s.baseURL, url.QueryEscape(s.apiKey), url.QueryEscape(s.engineID), url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		s.logger.Error("failed to build search request: %v", err)
		return mockResponse()
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("search request failed, returning mock data: %v", err)
		return mockResponse()
	}
	defer resp.Body.Close()

	out := &SearchResponse{
		Results: []SearchResult{},
		Sources: []string{"Google Custom Search"},
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("search API error: status %d", resp.StatusCode)
		return out
	}

	var payload customSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("failed to decode search response: %v", err)
		return out
	}

	for _, item := range payload.Items {
		out.Results = append(out.Results, SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	return out
}
