package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/plantworks/plantworks/internal/logging"
)

// CareScheduleInput is the input for plant_care_scheduler.
type CareScheduleInput struct {
	PlantName string `json:"plant_name"`
	Location  string `json:"location"`
	// CareLevel is the user's experience level: easy, intermediate, or
	// advanced. Unknown values fall back to intermediate.
	CareLevel string `json:"care_level"`
}

// WeeklySchedule is the recurring care cadence for one care level.
type WeeklySchedule struct {
	Watering    string `json:"watering"`
	Fertilizing string `json:"fertilizing"`
	Pruning     string `json:"pruning"`
	Inspection  string `json:"inspection"`
}

// CareSchedule is the output of plant_care_scheduler.
type CareSchedule struct {
	PlantName           string              `json:"plant_name"`
	Location            string              `json:"location"`
	CareLevel           string              `json:"care_level"`
	WeeklySchedule      WeeklySchedule      `json:"weekly_schedule"`
	MonthlyTasks        map[string][]string `json:"monthly_tasks"`
	SeasonalAdjustments map[string]string   `json:"seasonal_adjustments"`
	NextActions         []string            `json:"next_actions"`
}

var baseSchedules = map[string]WeeklySchedule{
	"easy": {
		Watering:    "Every 7-10 days",
		Fertilizing: "Monthly during growing season",
		Pruning:     "As needed",
		Inspection:  "Weekly",
	},
	"intermediate": {
		Watering:    "Every 5-7 days, check soil moisture",
		Fertilizing: "Bi-weekly during growing season",
		Pruning:     "Monthly maintenance",
		Inspection:  "Twice weekly",
	},
	"advanced": {
		Watering:    "Based on soil moisture and weather",
		Fertilizing: "Custom nutrient schedule",
		Pruning:     "Strategic pruning for optimal growth",
		Inspection:  "Daily monitoring",
	},
}

var seasonalAdjustments = map[string]string{
	"spring": "Increase watering and fertilizing as growth resumes",
	"summer": "Monitor for heat stress, increase humidity",
	"fall":   "Reduce watering and fertilizing, prepare for dormancy",
	"winter": "Minimal watering, no fertilizing, watch for dry air",
}

// CareSchedulerTool generates a personalized care schedule. It requires the
// plant to be findable via search (at least one result) and folds local
// weather warnings into next actions when weather is available; weather
// failures degrade silently.
type CareSchedulerTool struct {
	search  *PlantSearchTool
	weather *WeatherTool
	logger  *logging.Logger
	// now is injectable for deterministic tests.
	now func() time.Time
}

// NewCareSchedulerTool builds the plant_care_scheduler tool.
func NewCareSchedulerTool(search *PlantSearchTool, weather *WeatherTool) *CareSchedulerTool {
	return &CareSchedulerTool{
		search:  search,
		weather: weather,
		logger:  logging.GetLogger("tools.care"),
		now:     time.Now,
	}
}

func (t *CareSchedulerTool) Name() string { return "plant_care_scheduler" }

func (t *CareSchedulerTool) Description() string {
	return "Create a personalized watering, fertilizing, and maintenance schedule for a plant, adjusted for the user's experience level and local weather."
}

func (t *CareSchedulerTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"plant_name", "location"},
		"properties": map[string]interface{}{
			"plant_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the plant",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "User's location",
			},
			"care_level": map[string]interface{}{
				"type":        "string",
				"description": "Gardening experience level: easy, intermediate, or advanced (default: intermediate)",
			},
		},
	}
}

// Schedule is the typed execution path used by specialists.
func (t *CareSchedulerTool) Schedule(ctx context.Context, input CareScheduleInput) (*CareSchedule, error) {
	found := t.search.Search(ctx, PlantSearchInput{Query: input.PlantName, Limit: 1})
	if len(found.Results) == 0 {
		return nil, fmt.Errorf("Plant '%s' not found in database", input.PlantName)
	}

	careLevel := strings.ToLower(strings.TrimSpace(input.CareLevel))
	weekly, ok := baseSchedules[careLevel]
	if !ok {
		careLevel = "intermediate"
		weekly = baseSchedules[careLevel]
	}

	schedule := &CareSchedule{
		PlantName:           input.PlantName,
		Location:            input.Location,
		CareLevel:           careLevel,
		WeeklySchedule:      weekly,
		SeasonalAdjustments: seasonalAdjustments,
		NextActions:         []string{},
	}

	// Weather is advisory only. When it cannot be fetched, the schedule
	// simply carries no weather-driven next actions.
	report, err := t.weather.Lookup(ctx, WeatherInput{Location: input.Location, Days: 7})
	if err != nil {
		t.logger.Debug("weather unavailable for %s: %v", input.Location, err)
	} else {
		gc := report.GrowingConditions
		if gc.WateringRecommendation == "increase" {
			schedule.NextActions = append(schedule.NextActions, "Increase watering frequency due to low humidity")
		}
		if gc.FrostWarning {
			schedule.NextActions = append(schedule.NextActions, "Protect from frost - move indoors or cover")
		}
		if gc.HeatStressWarning {
			schedule.NextActions = append(schedule.NextActions, "Provide extra shade and increase humidity")
		}
	}

	currentMonth := t.now().Format("January")
	schedule.MonthlyTasks = map[string][]string{
		currentMonth: {
			"Check for pests and diseases",
			"Rotate plant for even growth",
			"Clean leaves if dusty",
			"Check soil drainage",
		},
	}

	return schedule, nil
}

func (t *CareSchedulerTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in CareScheduleInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	schedule, err := t.Schedule(ctx, in)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}

	return &Result{
		Success: true,
		Data:    schedule,
		Summary: fmt.Sprintf("Care schedule for %s (%s level)", schedule.PlantName, schedule.CareLevel),
	}, nil
}
