package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/providers"
)

// HardinessInput is the input for hardiness_zone_lookup.
type HardinessInput struct {
	Location string `json:"location"`
}

// TemperatureRange is the expected winter temperature band in Fahrenheit.
type TemperatureRange struct {
	MinWinterTempF int `json:"min_winter_temp_f"`
	MaxWinterTempF int `json:"max_winter_temp_f"`
}

// FrostDates are the expected frost windows for a zone.
type FrostDates struct {
	LastSpringFrost string `json:"last_spring_frost"`
	FirstFallFrost  string `json:"first_fall_frost"`
}

// GrowingSeason describes the usable growing window for a zone.
type GrowingSeason struct {
	Length string `json:"length"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// ZoneReport is the output of hardiness_zone_lookup.
type ZoneReport struct {
	Location           string             `json:"location"`
	Coordinates        map[string]float64 `json:"coordinates"`
	HardinessZone      string             `json:"hardiness_zone"`
	TemperatureRange   TemperatureRange   `json:"temperature_range"`
	FrostDates         FrostDates         `json:"frost_dates"`
	GrowingSeason      GrowingSeason      `json:"growing_season"`
	ClimateDescription string             `json:"climate_description"`
	Sources            []string           `json:"sources"`
}

// HardinessZoneLookupTool derives a hardiness zone from latitude alone,
// banded at 45/40/35/30 degrees. Longitude is ignored; the southern
// hemisphere maps onto the same bands.
type HardinessZoneLookupTool struct {
	geocoder *providers.Geocoder
	logger   *logging.Logger
}

// NewHardinessZoneLookupTool builds the hardiness_zone_lookup tool.
func NewHardinessZoneLookupTool(geocoder *providers.Geocoder) *HardinessZoneLookupTool {
	return &HardinessZoneLookupTool{
		geocoder: geocoder,
		logger:   logging.GetLogger("tools.hardiness"),
	}
}

func (t *HardinessZoneLookupTool) Name() string { return "hardiness_zone_lookup" }

func (t *HardinessZoneLookupTool) Description() string {
	return "Determine the USDA hardiness zone, winter temperature range, frost dates, and growing season for a location."
}

func (t *HardinessZoneLookupTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Geographic location",
			},
		},
	}
}

// ZoneForLatitude maps a latitude to its zone band. Pure function.
func ZoneForLatitude(lat float64) (zone string, minTemp, maxTemp int, climate string) {
	switch {
	case lat >= 45:
		return "3a-4b", -40, -20, "Cold climate with short growing season"
	case lat >= 40:
		return "5a-6b", -20, -5, "Temperate climate with moderate growing season"
	case lat >= 35:
		return "7a-8b", 0, 20, "Mild climate with long growing season"
	case lat >= 30:
		return "9a-10b", 20, 40, "Warm climate with extended growing season"
	default:
		return "11a-12b", 40, 60, "Tropical climate with year-round growing"
	}
}

// seasonForZone resolves frost dates and growing season from the zone label's
// digit content, mirroring how the zone bands nest.
func seasonForZone(zone string) (FrostDates, GrowingSeason) {
	switch {
	case strings.Contains(zone, "3") || strings.Contains(zone, "4"):
		return FrostDates{
				LastSpringFrost: "May 15 - June 1",
				FirstFallFrost:  "September 1 - September 15",
			}, GrowingSeason{
				Length: "90-120 days",
				Start:  "Late May",
				End:    "Early September",
			}
	case strings.Contains(zone, "5") || strings.Contains(zone, "6"):
		return FrostDates{
				LastSpringFrost: "April 15 - May 15",
				FirstFallFrost:  "October 1 - October 15",
			}, GrowingSeason{
				Length: "150-180 days",
				Start:  "Mid April",
				End:    "Mid October",
			}
	case strings.Contains(zone, "7") || strings.Contains(zone, "8"):
		return FrostDates{
				LastSpringFrost: "March 15 - April 15",
				FirstFallFrost:  "November 1 - November 15",
			}, GrowingSeason{
				Length: "200-240 days",
				Start:  "Mid March",
				End:    "Mid November",
			}
	default:
		return FrostDates{
				LastSpringFrost: "Rare or no frost",
				FirstFallFrost:  "Rare or no frost",
			}, GrowingSeason{
				Length: "Year-round",
				Start:  "Year-round",
				End:    "Year-round",
			}
	}
}

// Lookup is the typed execution path used by specialists.
func (t *HardinessZoneLookupTool) Lookup(ctx context.Context, input HardinessInput) (*ZoneReport, error) {
	coords, ok := t.geocoder.Lookup(ctx, input.Location)
	if !ok {
		return nil, fmt.Errorf("Could not determine location coordinates")
	}

	zone, minTemp, maxTemp, climate := ZoneForLatitude(coords.Lat)
	frost, season := seasonForZone(zone)

	return &ZoneReport{
		Location: input.Location,
		Coordinates: map[string]float64{
			"latitude":  coords.Lat,
			"longitude": coords.Lon,
		},
		HardinessZone: zone,
		TemperatureRange: TemperatureRange{
			MinWinterTempF: minTemp,
			MaxWinterTempF: maxTemp,
		},
		FrostDates:         frost,
		GrowingSeason:      season,
		ClimateDescription: climate,
		Sources:            []string{"USDA Hardiness Zone Map (simulated)"},
	}, nil
}

func (t *HardinessZoneLookupTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in HardinessInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	report, err := t.Lookup(ctx, in)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}

	return &Result{
		Success: true,
		Data:    report,
		Summary: fmt.Sprintf("%s is in hardiness zone %s", in.Location, report.HardinessZone),
	}, nil
}
