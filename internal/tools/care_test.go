package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/providers"
)

func newCareTool(t *testing.T, search *PlantSearchTool, weather *WeatherTool) *CareSchedulerTool {
	t.Helper()
	tool := NewCareSchedulerTool(search, weather)
	tool.now = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return tool
}

func TestCareScheduler_DefaultsToIntermediate(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	// No weather key: the schedule carries no weather-driven actions.
	weather := NewWeatherTool(geo, providers.NewWeatherClient(config.ProvidersConfig{}))
	tool := newCareTool(t, newMockSearchTool(t), weather)

	schedule, err := tool.Schedule(context.Background(), CareScheduleInput{
		PlantName: "monstera",
		Location:  "New York",
	})
	require.NoError(t, err)

	assert.Equal(t, "intermediate", schedule.CareLevel)
	assert.Equal(t, "Every 5-7 days, check soil moisture", schedule.WeeklySchedule.Watering)
	assert.Empty(t, schedule.NextActions)
	assert.Contains(t, schedule.SeasonalAdjustments, "winter")

	tasks, ok := schedule.MonthlyTasks["March"]
	require.True(t, ok)
	assert.Contains(t, tasks, "Check for pests and diseases")
}

func TestCareScheduler_CareLevels(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	weather := NewWeatherTool(geo, providers.NewWeatherClient(config.ProvidersConfig{}))
	tool := newCareTool(t, newMockSearchTool(t), weather)

	tests := []struct {
		level            string
		expectedLevel    string
		expectedWatering string
	}{
		{"easy", "easy", "Every 7-10 days"},
		{"Advanced", "advanced", "Based on soil moisture and weather"},
		{"expert", "intermediate", "Every 5-7 days, check soil moisture"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			schedule, err := tool.Schedule(context.Background(), CareScheduleInput{
				PlantName: "monstera",
				Location:  "New York",
				CareLevel: tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, schedule.CareLevel)
			assert.Equal(t, tt.expectedWatering, schedule.WeeklySchedule.Watering)
		})
	}
}

func TestCareScheduler_UnknownPlant(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	weather := NewWeatherTool(geo, providers.NewWeatherClient(config.ProvidersConfig{}))
	tool := newCareTool(t, newEmptySearchTool(t), weather)

	_, err := tool.Schedule(context.Background(), CareScheduleInput{
		PlantName: "glowing space fern",
		Location:  "New York",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Plant 'glowing space fern' not found in database")
}

func TestCareScheduler_WeatherDrivenActions(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	// Cold and dry: frost protection plus extra watering.
	weather := NewWeatherTool(geo, newTestWeatherClient(t, 2, 30))
	tool := newCareTool(t, newMockSearchTool(t), weather)

	schedule, err := tool.Schedule(context.Background(), CareScheduleInput{
		PlantName: "monstera",
		Location:  "Oslo",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Increase watering frequency due to low humidity",
		"Protect from frost - move indoors or cover",
	}, schedule.NextActions)
}
