package commands

import (
	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/coordinator"
	"github.com/plantworks/plantworks/internal/generate"
	"github.com/plantworks/plantworks/internal/metrics"
	"github.com/plantworks/plantworks/internal/providers"
	"github.com/plantworks/plantworks/internal/ragclient"
	"github.com/plantworks/plantworks/internal/specialist"
	"github.com/plantworks/plantworks/internal/tools"
)

// components holds the wired core of the application, shared between the
// server, chat, and mcp commands.
type components struct {
	registry    *tools.Registry
	coordinator *coordinator.Coordinator
	metrics     *metrics.Metrics
}

// buildComponents constructs providers, tools, specialists, and the
// coordinator from configuration. m may be nil for commands that do not
// expose metrics.
func buildComponents(cfg *config.Config, m *metrics.Metrics) (*components, error) {
	geocoder, err := providers.NewGeocoder(cfg.Providers)
	if err != nil {
		return nil, err
	}
	weatherClient := providers.NewWeatherClient(cfg.Providers)
	searchClient := providers.NewSearchClient(cfg.Providers)

	searchTool := tools.NewPlantSearchTool(searchClient)
	weatherTool := tools.NewWeatherTool(geocoder, weatherClient)
	marketplaceTool := tools.NewMarketplaceSearchTool()

	var recorder tools.ExecutionRecorder
	if m != nil {
		recorder = m
	}

	registry := tools.NewRegistry(recorder)
	registry.Register(searchTool)
	registry.Register(weatherTool)
	registry.Register(marketplaceTool)
	registry.Register(tools.NewCareSchedulerTool(searchTool, weatherTool))
	registry.Register(tools.NewDiseaseIdentifierTool())
	registry.Register(tools.NewNativePlantFinderTool(geocoder))
	registry.Register(tools.NewSoilAnalyzerTool(geocoder))
	registry.Register(tools.NewHardinessZoneLookupTool(geocoder))
	registry.Register(tools.NewPriceComparatorTool(marketplaceTool))
	registry.Register(tools.NewSellerVerifierTool())

	botanist := specialist.NewBotanist(searchTool)
	if rag := ragclient.New(cfg.RAG); rag != nil {
		botanist = botanist.WithRAG(rag)
	}

	opts := []coordinator.Option{}
	polisher, err := generate.New(cfg.Generate)
	if err != nil {
		return nil, err
	}
	if polisher != nil {
		opts = append(opts, coordinator.WithPolisher(polisher))
	}
	if m != nil {
		opts = append(opts, coordinator.WithMetrics(m))
	}

	coord := coordinator.New(
		botanist,
		specialist.NewGardener(),
		specialist.NewEcologist(),
		specialist.NewMerchant(marketplaceTool),
		opts...,
	)

	return &components{
		registry:    registry,
		coordinator: coord,
		metrics:     m,
	}, nil
}
