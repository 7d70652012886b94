package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceComparator_Monstera(t *testing.T) {
	tool := NewPriceComparatorTool(NewMarketplaceSearchTool())

	comparison, err := tool.Compare(PriceComparisonInput{PlantName: "monstera"})
	require.NoError(t, err)

	assert.Equal(t, PriceAnalysis{
		LowestPrice:  28.00,
		HighestPrice: 45.00,
		AveragePrice: 36.00,
		PriceSpread:  17.00,
	}, comparison.PriceAnalysis)

	// Planterina: 4.6*20 - 28 - 0.5*12 = 58.
	require.NotNil(t, comparison.BestValue)
	assert.Equal(t, "Planterina", comparison.BestValue.Seller)
	assert.Equal(t, 58.0, comparison.BestValue.ValueScore)

	assert.Contains(t, comparison.Recommendations, "Significant price variation found ($17.00 spread)")
	assert.Contains(t, comparison.Recommendations, "The Sill (our partner) offers this plant for $35.00")

	assert.Equal(t, "stable", comparison.PriceTrends.Trend)
	assert.Equal(t, "Prices typically higher in spring planting season", comparison.PriceTrends.SeasonalNote)
}

func TestPriceComparator_SmallSpreadSkipsVariationNote(t *testing.T) {
	tool := NewPriceComparatorTool(NewMarketplaceSearchTool())

	comparison, err := tool.Compare(PriceComparisonInput{PlantName: "snake plant"})
	require.NoError(t, err)

	assert.Equal(t, 6.00, comparison.PriceAnalysis.PriceSpread)
	for _, rec := range comparison.Recommendations {
		assert.NotContains(t, rec, "price variation")
	}
	assert.Contains(t, comparison.Recommendations, "The Sill (our partner) offers this plant for $28.00")
}

func TestPriceComparator_SizeFilter(t *testing.T) {
	tool := NewPriceComparatorTool(NewMarketplaceSearchTool())

	comparison, err := tool.Compare(PriceComparisonInput{PlantName: "monstera", Size: "6-inch"})
	require.NoError(t, err)

	require.Len(t, comparison.Listings, 1)
	assert.Equal(t, "Bloomscape", comparison.Listings[0].Seller)
}

func TestPriceComparator_SizeFilterIgnoredWhenEmpty(t *testing.T) {
	tool := NewPriceComparatorTool(NewMarketplaceSearchTool())

	// No monstera listing comes in a 12-inch pot; the filter is dropped
	// rather than producing an empty comparison.
	comparison, err := tool.Compare(PriceComparisonInput{PlantName: "monstera", Size: "12-inch"})
	require.NoError(t, err)
	assert.Len(t, comparison.Listings, 3)
}

func TestPriceComparator_UnknownPlant(t *testing.T) {
	tool := NewPriceComparatorTool(NewMarketplaceSearchTool())

	_, err := tool.Compare(PriceComparisonInput{PlantName: "corpse flower"})
	require.Error(t, err)
	assert.Equal(t, "No price data found for corpse flower", err.Error())
}
