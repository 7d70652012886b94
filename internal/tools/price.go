package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
)

// PriceComparisonInput is the input for price_comparator.
type PriceComparisonInput struct {
	PlantName string `json:"plant_name"`
	// Size narrows the comparison to listings of a given pot size.
	Size string `json:"size,omitempty"`
}

// PriceAnalysis summarizes the price distribution across sellers.
type PriceAnalysis struct {
	LowestPrice  float64 `json:"lowest_price"`
	HighestPrice float64 `json:"highest_price"`
	AveragePrice float64 `json:"average_price"`
	PriceSpread  float64 `json:"price_spread"`
}

// ValuePick names the listing with the best price-to-rating tradeoff.
type ValuePick struct {
	Seller     string  `json:"seller"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	ValueScore float64 `json:"value_score"`
}

// PriceTrends carries the simulated market outlook.
type PriceTrends struct {
	Trend          string `json:"trend"`
	SeasonalNote   string `json:"seasonal_note"`
	Recommendation string `json:"recommendation"`
}

// PriceComparison is the output of price_comparator.
type PriceComparison struct {
	PlantName       string        `json:"plant_name"`
	Size            string        `json:"size,omitempty"`
	Listings        []Product     `json:"listings"`
	PriceAnalysis   PriceAnalysis `json:"price_analysis"`
	BestValue       *ValuePick    `json:"best_value,omitempty"`
	Recommendations []string      `json:"recommendations"`
	PriceTrends     PriceTrends   `json:"price_trends"`
}

// PriceComparatorTool compares listings across sellers and picks the best
// value. It reuses the marketplace tool's typed search.
type PriceComparatorTool struct {
	marketplace *MarketplaceSearchTool
	logger      *logging.Logger
}

// NewPriceComparatorTool builds the price_comparator tool.
func NewPriceComparatorTool(marketplace *MarketplaceSearchTool) *PriceComparatorTool {
	return &PriceComparatorTool{
		marketplace: marketplace,
		logger:      logging.GetLogger("tools.price"),
	}
}

func (t *PriceComparatorTool) Name() string { return "price_comparator" }

func (t *PriceComparatorTool) Description() string {
	return "Compare plant prices across sellers, compute the best value, and report simulated price trends."
}

func (t *PriceComparatorTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"plant_name"},
		"properties": map[string]interface{}{
			"plant_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of plant to compare prices for",
			},
			"size": map[string]interface{}{
				"type":        "string",
				"description": "Pot size to narrow the comparison (optional)",
			},
		},
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compare is the typed execution path used by the merchant specialist.
func (t *PriceComparatorTool) Compare(input PriceComparisonInput) (*PriceComparison, error) {
	report := t.marketplace.Search(MarketplaceInput{
		PlantName: input.PlantName,
		Location:  "nationwide",
	})
	listings := report.Products
	if len(listings) == 0 {
		return nil, fmt.Errorf("No price data found for %s", input.PlantName)
	}

	// Only apply the size filter when it still leaves something to compare.
	if input.Size != "" {
		var sized []Product
		for _, p := range listings {
			if strings.Contains(strings.ToLower(p.Size), strings.ToLower(input.Size)) {
				sized = append(sized, p)
			}
		}
		if len(sized) > 0 {
			listings = sized
		}
	}

	lowest := listings[0].Price
	highest := listings[0].Price
	sum := 0.0
	for _, p := range listings {
		if p.Price < lowest {
			lowest = p.Price
		}
		if p.Price > highest {
			highest = p.Price
		}
		sum += p.Price
	}
	analysis := PriceAnalysis{
		LowestPrice:  lowest,
		HighestPrice: highest,
		AveragePrice: roundTo2(sum / float64(len(listings))),
		PriceSpread:  highest - lowest,
	}

	// Value score rewards rating, penalizes price and non-free shipping.
	var best *ValuePick
	for _, p := range listings {
		shippingPenalty := 0.0
		if p.Price < p.ShippingFreeOver {
			shippingPenalty = p.ShippingCost
		}
		score := p.Rating*20 - p.Price - 0.5*shippingPenalty
		if score > 0 && (best == nil || score > best.ValueScore) {
			best = &ValuePick{
				Seller:     p.Seller,
				Price:      p.Price,
				Rating:     p.Rating,
				ValueScore: roundTo2(score),
			}
		}
	}

	var recs []string
	if analysis.PriceSpread > 10 {
		recs = append(recs, fmt.Sprintf("Significant price variation found ($%.2f spread)", analysis.PriceSpread))
	}
	for _, p := range listings {
		if strings.Contains(strings.ToLower(p.Seller), "sill") {
			recs = append(recs, fmt.Sprintf("The Sill (our partner) offers this plant for $%.2f", p.Price))
			break
		}
	}

	return &PriceComparison{
		PlantName:       input.PlantName,
		Size:            input.Size,
		Listings:        listings,
		PriceAnalysis:   analysis,
		BestValue:       best,
		Recommendations: recs,
		PriceTrends: PriceTrends{
			Trend:          "stable",
			SeasonalNote:   "Prices typically higher in spring planting season",
			Recommendation: "Current prices are typical for this time of year",
		},
	}, nil
}

func (t *PriceComparatorTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in PriceComparisonInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	comparison, err := t.Compare(in)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}
	return &Result{
		Success: true,
		Data:    comparison,
		Summary: fmt.Sprintf("Compared %d listings for %q", len(comparison.Listings), in.PlantName),
	}, nil
}
