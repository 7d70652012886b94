package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativePlantFinder_AllCategories(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	tool := NewNativePlantFinderTool(geo)

	report, err := tool.Find(context.Background(), NativePlantInput{Location: "New York"})
	require.NoError(t, err)

	require.Len(t, report.NativePlants, 5)
	// Fixed category order: trees, then shrubs, then flowers.
	assert.Equal(t, "Quercus alba", report.NativePlants[0].ScientificName)
	assert.Equal(t, "Viburnum trilobum", report.NativePlants[2].ScientificName)
	assert.Equal(t, "Echinacea purpurea", report.NativePlants[3].ScientificName)

	assert.Len(t, report.EcologicalBenefits, 5)
	assert.Len(t, report.PlantingSeasons, 4)
	assert.Equal(t, []string{"Mock Native Plant Database"}, report.Sources)
}

func TestNativePlantFinder_CategoryFilter(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	tool := NewNativePlantFinderTool(geo)

	report, err := tool.Find(context.Background(), NativePlantInput{
		Location:  "New York",
		PlantType: "trees",
	})
	require.NoError(t, err)

	require.Len(t, report.NativePlants, 2)
	assert.Equal(t, "White Oak", report.NativePlants[0].CommonName)
	assert.Equal(t, "Red Maple", report.NativePlants[1].CommonName)
}

func TestNativePlantFinder_SubstringFallback(t *testing.T) {
	geo := newTestGeocoder(t, "40.7", "-74.0")
	tool := NewNativePlantFinderTool(geo)

	report, err := tool.Find(context.Background(), NativePlantInput{
		Location:  "New York",
		PlantType: "oak",
	})
	require.NoError(t, err)

	require.Len(t, report.NativePlants, 1)
	assert.Equal(t, "Quercus alba", report.NativePlants[0].ScientificName)
}

func TestNativePlantFinder_GeocodeFailure(t *testing.T) {
	geo := newFailingGeocoder(t)
	tool := NewNativePlantFinderTool(geo)

	_, err := tool.Find(context.Background(), NativePlantInput{Location: "Nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not determine location coordinates")
}
