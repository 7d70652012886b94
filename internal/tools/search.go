package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/providers"
)

// PlantSearchInput is the input for plant_database_search.
type PlantSearchInput struct {
	// Query is a plant name or characteristics to search for.
	Query string `json:"query"`
	// Limit caps the number of results (default 10).
	Limit int `json:"limit"`
}

// PlantSearchTool searches for plant information via the text search
// provider. It never fails: the provider falls back to a mock record.
type PlantSearchTool struct {
	search *providers.SearchClient
	logger *logging.Logger
}

// NewPlantSearchTool builds the plant_database_search tool.
func NewPlantSearchTool(search *providers.SearchClient) *PlantSearchTool {
	return &PlantSearchTool{
		search: search,
		logger: logging.GetLogger("tools.search"),
	}
}

func (t *PlantSearchTool) Name() string { return "plant_database_search" }

func (t *PlantSearchTool) Description() string {
	return "Search for plant information by name or characteristics. Returns titled results with snippets and links; serves mock data when live search is unavailable."
}

func (t *PlantSearchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Plant name or characteristics to search for",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results to return (default: 10)",
			},
		},
	}
}

// Search is the typed execution path used by specialists.
func (t *PlantSearchTool) Search(ctx context.Context, input PlantSearchInput) *providers.SearchResponse {
	if input.Limit < 1 {
		input.Limit = 10
	}
	return t.search.Search(ctx, input.Query, input.Limit)
}

func (t *PlantSearchTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in PlantSearchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	resp := t.Search(ctx, in)
	return &Result{
		Success: true,
		Data:    resp,
		Summary: fmt.Sprintf("Found %d results for %q", len(resp.Results), in.Query),
	}, nil
}
