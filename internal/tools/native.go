package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/providers"
)

// NativePlantInput is the input for native_plant_finder.
type NativePlantInput struct {
	Location string `json:"location"`
	// PlantType filters by category: "trees", "shrubs", "flowers", or "all"
	// (default). Other values fall back to a substring search.
	PlantType string `json:"plant_type"`
}

// NativePlant is one entry of the native plant table.
type NativePlant struct {
	ScientificName  string `json:"scientific_name"`
	CommonName      string `json:"common_name"`
	Type            string `json:"type"`
	Height          string `json:"height"`
	WildlifeValue   string `json:"wildlife_value"`
	SoilPreference  string `json:"soil_preference"`
	SunRequirements string `json:"sun_requirements"`
}

// NativePlantReport is the output of native_plant_finder.
type NativePlantReport struct {
	Location           string             `json:"location"`
	Coordinates        map[string]float64 `json:"coordinates"`
	NativePlants       []NativePlant      `json:"native_plants"`
	EcologicalBenefits []string           `json:"ecological_benefits"`
	PlantingSeasons    map[string]string  `json:"planting_seasons"`
	Sources            []string           `json:"sources"`
}

// nativePlantDB keys are the recognized plant_type categories.
var nativePlantDB = map[string][]NativePlant{
	"trees": {
		{
			ScientificName:  "Quercus alba",
			CommonName:      "White Oak",
			Type:            "tree",
			Height:          "50-80 feet",
			WildlifeValue:   "Supports 500+ species of butterflies and moths",
			SoilPreference:  "Well-drained, acidic to neutral",
			SunRequirements: "Full sun",
		},
		{
			ScientificName:  "Acer rubrum",
			CommonName:      "Red Maple",
			Type:            "tree",
			Height:          "40-60 feet",
			WildlifeValue:   "Early nectar source for pollinators",
			SoilPreference:  "Adaptable to various soil types",
			SunRequirements: "Full sun to partial shade",
		},
	},
	"shrubs": {
		{
			ScientificName:  "Viburnum trilobum",
			CommonName:      "American Cranberrybush",
			Type:            "shrub",
			Height:          "8-12 feet",
			WildlifeValue:   "Berries feed birds, flowers attract pollinators",
			SoilPreference:  "Moist, well-drained",
			SunRequirements: "Full sun to partial shade",
		},
	},
	"flowers": {
		{
			ScientificName:  "Echinacea purpurea",
			CommonName:      "Purple Coneflower",
			Type:            "perennial",
			Height:          "2-4 feet",
			WildlifeValue:   "Attracts butterflies, seeds feed birds",
			SoilPreference:  "Well-drained, drought tolerant",
			SunRequirements: "Full sun",
		},
		{
			ScientificName:  "Rudbeckia fulgida",
			CommonName:      "Black-eyed Susan",
			Type:            "perennial",
			Height:          "1-3 feet",
			WildlifeValue:   "Long bloom period attracts pollinators",
			SoilPreference:  "Adaptable, drought tolerant",
			SunRequirements: "Full sun to partial shade",
		},
	},
}

var ecologicalBenefits = []string{
	"Support local wildlife and pollinators",
	"Require less water and maintenance",
	"Adapted to local climate conditions",
	"Help preserve regional biodiversity",
	"Reduce need for fertilizers and pesticides",
}

var plantingSeasons = map[string]string{
	"spring": "March-May: Best for most perennials and trees",
	"fall":   "September-November: Good for trees and shrubs",
	"summer": "June-August: Limited planting, focus on maintenance",
	"winter": "December-February: Planning and preparation",
}

// NativePlantFinderTool recommends native plants for a location. The plant
// table is static; the location only needs to geocode for the lookup to
// succeed, giving the same recommendations everywhere.
type NativePlantFinderTool struct {
	geocoder *providers.Geocoder
	logger   *logging.Logger
}

// NewNativePlantFinderTool builds the native_plant_finder tool.
func NewNativePlantFinderTool(geocoder *providers.Geocoder) *NativePlantFinderTool {
	return &NativePlantFinderTool{
		geocoder: geocoder,
		logger:   logging.GetLogger("tools.native"),
	}
}

func (t *NativePlantFinderTool) Name() string { return "native_plant_finder" }

func (t *NativePlantFinderTool) Description() string {
	return "Find native plants suitable for a geographic location, with ecological benefits and planting season guidance."
}

func (t *NativePlantFinderTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Geographic location (city, state, or coordinates)",
			},
			"plant_type": map[string]interface{}{
				"type":        "string",
				"description": "Type of plants: trees, shrubs, flowers, or all (default: all)",
			},
		},
	}
}

// Find is the typed execution path used by specialists.
func (t *NativePlantFinderTool) Find(ctx context.Context, input NativePlantInput) (*NativePlantReport, error) {
	coords, ok := t.geocoder.Lookup(ctx, input.Location)
	if !ok {
		return nil, fmt.Errorf("Could not determine location coordinates")
	}

	report := &NativePlantReport{
		Location: input.Location,
		Coordinates: map[string]float64{
			"latitude":  coords.Lat,
			"longitude": coords.Lon,
		},
		NativePlants:       []NativePlant{},
		EcologicalBenefits: ecologicalBenefits,
		PlantingSeasons:    plantingSeasons,
		Sources:            []string{"Mock Native Plant Database"},
	}

	plantType := strings.ToLower(strings.TrimSpace(input.PlantType))
	if plantType == "" {
		plantType = "all"
	}

	switch {
	case plantType == "all":
		for _, category := range []string{"trees", "shrubs", "flowers"} {
			report.NativePlants = append(report.NativePlants, nativePlantDB[category]...)
		}
	default:
		if plants, ok := nativePlantDB[plantType]; ok {
			report.NativePlants = plants
			break
		}
		// Substring search across all categories.
		for _, category := range []string{"trees", "shrubs", "flowers"} {
			for _, plant := range nativePlantDB[category] {
				if strings.Contains(strings.ToLower(plant.Type), plantType) ||
					strings.Contains(strings.ToLower(plant.CommonName), plantType) {
					report.NativePlants = append(report.NativePlants, plant)
				}
			}
		}
	}

	return report, nil
}

func (t *NativePlantFinderTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in NativePlantInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	report, err := t.Find(ctx, in)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}

	return &Result{
		Success: true,
		Data:    report,
		Summary: fmt.Sprintf("Found %d native plants for %s", len(report.NativePlants), in.Location),
	}, nil
}
