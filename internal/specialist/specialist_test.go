package specialist

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/providers"
	"github.com/plantworks/plantworks/internal/ragclient"
	"github.com/plantworks/plantworks/internal/tools"
)

func newMockSearchTool(t *testing.T) *tools.PlantSearchTool {
	t.Helper()
	return tools.NewPlantSearchTool(providers.NewSearchClient(config.ProvidersConfig{}))
}

func newEmptySearchTool(t *testing.T) *tools.PlantSearchTool {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	t.Cleanup(srv.Close)

	return tools.NewPlantSearchTool(providers.NewSearchClient(config.ProvidersConfig{
		SearchBaseURL:        srv.URL,
		GoogleAPIKey:         "test-key",
		GoogleSearchEngineID: "test-cx",
	}))
}

func TestBotanist_KnowledgeHit(t *testing.T) {
	botanist := NewBotanist(newMockSearchTool(t))

	response := botanist.Respond(context.Background(), "What is Monstera deliciosa?")
	assert.Contains(t, response, "Monstera deliciosa - The Swiss Cheese Plant")
	assert.Contains(t, response, "Araceae")
	assert.Contains(t, response, "Scientific Classification:")
}

func TestBotanist_SearchFallback(t *testing.T) {
	botanist := NewBotanist(newMockSearchTool(t))

	// Not in the knowledge table: falls through to search, which serves the
	// mock record without credentials.
	response := botanist.Respond(context.Background(), "tell me about pothos")
	assert.Contains(t, response, "Plant Profile: Mock Plant Info")
	assert.Contains(t, response, "This is mock plant data.")
	assert.Contains(t, response, "https://en.wikipedia.org/wiki/Plant")
}

func TestBotanist_RAGTier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/plant_rag", r.URL.Path)
		fmt.Fprint(w, `{"answers":[{"plant":"Pothos","info":"Epipremnum aureum, a hardy trailing aroid."}]}`)
	}))
	t.Cleanup(srv.Close)

	rag := ragclient.New(config.RAGConfig{BaseURL: srv.URL})
	botanist := NewBotanist(newEmptySearchTool(t)).WithRAG(rag)

	// Not in the knowledge table: answered by the sidecar before the empty
	// search is consulted.
	response := botanist.Respond(context.Background(), "tell me about pothos")
	assert.Contains(t, response, "Plant Knowledge: Pothos")
	assert.Contains(t, response, "Epipremnum aureum")
}

func TestBotanist_RAGFailureFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	rag := ragclient.New(config.RAGConfig{BaseURL: srv.URL})
	botanist := NewBotanist(newEmptySearchTool(t)).WithRAG(rag)

	response := botanist.Respond(context.Background(), "identify this mystery thing")
	assert.Contains(t, response, "Plant Identification Assistance")
}

func TestBotanist_NeedMoreDetail(t *testing.T) {
	botanist := NewBotanist(newEmptySearchTool(t))

	response := botanist.Respond(context.Background(), "identify this mystery thing")
	assert.Contains(t, response, "Plant Identification Assistance")
	assert.NotEmpty(t, response)
}

func TestGardener_CareGuides(t *testing.T) {
	gardener := NewGardener()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"monstera", "how do I water my monstera", "Monstera deliciosa Care Guide"},
		{"snake plant", "snake plant care help", "Snake Plant Care Guide"},
		{"sansevieria alias", "my sansevieria looks sad", "Snake Plant Care Guide"},
		{"no care guide for ficus", "caring for my fiddle leaf fig", "Plant Care Guidance"},
		{"unknown plant", "how do I grow basil", "Plant Care Guidance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := gardener.Respond(context.Background(), tt.message)
			assert.Contains(t, response, tt.expected)
		})
	}
}

func TestGardener_SnakePlantTextCoversBasics(t *testing.T) {
	gardener := NewGardener()

	response := gardener.Respond(context.Background(), "how do I care for a snake plant?")
	for _, keyword := range []string{"Water", "light", "Care"} {
		assert.Contains(t, response, keyword)
	}
}

func TestEcologist_StaticOverview(t *testing.T) {
	ecologist := NewEcologist()

	first := ecologist.Respond(context.Background(), "native plants in Texas")
	second := ecologist.Respond(context.Background(), "what grows in my zone?")
	assert.Equal(t, first, second)
	assert.Contains(t, first, "As The Ecologist")
	assert.Contains(t, first, "Where are you located?")
}

func TestExtractPlantName(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"where can I buy a monstera?", "monstera"},
		{"snake plant under $30", "snake plant"},
		{"fiddle leaf fig prices", "fiddle leaf fig"},
		{"I want to buy a plant", "snake plant"},
		{"Monstera or snake plant?", "snake plant"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPlantName(tt.message))
		})
	}
}

func TestExtractMaxPrice(t *testing.T) {
	tests := []struct {
		message  string
		expected float64
	}{
		{"monstera under $50", 50},
		{"under 40 dollars please", 40},
		{"something for $25", 25},
		{"no budget mentioned", 0},
		{"under my desk", 0},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMaxPrice(tt.message))
		})
	}
}

func TestMerchant_ListsProducts(t *testing.T) {
	merchant := NewMerchant(tools.NewMarketplaceSearchTool())

	response := merchant.Respond(context.Background(), "where can I buy a fiddle leaf fig under $70?")
	// Only The Sill's $65 listing survives the budget filter.
	assert.Contains(t, response, "The Sill - $65.00")
	assert.NotContains(t, response, "Bloomscape")
	assert.Contains(t, response, "Revenue Note")
}

func TestMerchant_FallbackWhenFiltered(t *testing.T) {
	merchant := NewMerchant(tools.NewMarketplaceSearchTool())

	// Budget below every fiddle leaf fig listing: no products, static guide.
	response := merchant.Respond(context.Background(), "fiddle leaf fig under $10")
	assert.Contains(t, response, "Plant Marketplace Guide")
	require.NotEmpty(t, response)
}

func TestMerchant_DefaultPlant(t *testing.T) {
	merchant := NewMerchant(tools.NewMarketplaceSearchTool())

	response := merchant.Respond(context.Background(), "I want to buy something green")
	assert.Contains(t, response, "snake plant")
	assert.Contains(t, response, "Planterina")
}
