package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
)

// MarketplaceInput is the input for marketplace_search.
type MarketplaceInput struct {
	PlantName string `json:"plant_name"`
	// Location is the buyer's location for shipping considerations.
	Location string `json:"location"`
	// MaxPrice filters out products above this price when > 0.
	MaxPrice float64 `json:"max_price,omitempty"`
}

// Product is one marketplace listing.
type Product struct {
	Seller              string  `json:"seller"`
	Price               float64 `json:"price"`
	Size                string  `json:"size"`
	Availability        string  `json:"availability"`
	URL                 string  `json:"url"`
	AffiliateURL        string  `json:"affiliate_url,omitempty"`
	AffiliateCommission int     `json:"affiliate_commission"`
	ShippingCost        float64 `json:"shipping_cost"`
	ShippingFreeOver    float64 `json:"shipping_free_over"`
	Rating              float64 `json:"rating"`
	Reviews             int     `json:"reviews"`
}

// MarketplaceReport is the output of marketplace_search.
type MarketplaceReport struct {
	PlantName  string    `json:"plant_name"`
	Location   string    `json:"location"`
	MaxPrice   float64   `json:"max_price,omitempty"`
	Products   []Product `json:"products"`
	TotalFound int       `json:"total_found"`
	Sources    []string  `json:"sources"`
}

// marketplaceCatalog is the mock retailer inventory, keyed by plant name.
var marketplaceCatalog = map[string][]Product{
	"monstera": {
		{
			Seller: "The Sill", Price: 35.00, Size: "4-inch pot", Availability: "In Stock",
			URL:                 "https://www.thesill.com/products/monstera-deliciosa",
			AffiliateCommission: 10, ShippingCost: 15.00, ShippingFreeOver: 50.00,
			Rating: 4.8, Reviews: 1250,
		},
		{
			Seller: "Bloomscape", Price: 45.00, Size: "6-inch pot", Availability: "In Stock",
			URL:                 "https://bloomscape.com/product/monstera-deliciosa/",
			AffiliateCommission: 8, ShippingCost: 20.00, ShippingFreeOver: 65.00,
			Rating: 4.7, Reviews: 890,
		},
		{
			Seller: "Planterina", Price: 28.00, Size: "4-inch pot", Availability: "Limited Stock",
			URL:                 "https://planterina.com/products/monstera-deliciosa",
			AffiliateCommission: 12, ShippingCost: 12.00, ShippingFreeOver: 40.00,
			Rating: 4.6, Reviews: 567,
		},
	},
	"snake plant": {
		{
			Seller: "The Sill", Price: 28.00, Size: "4-inch pot", Availability: "In Stock",
			URL:                 "https://www.thesill.com/products/snake-plant",
			AffiliateCommission: 10, ShippingCost: 15.00, ShippingFreeOver: 50.00,
			Rating: 4.9, Reviews: 2100,
		},
		{
			Seller: "Planterina", Price: 22.00, Size: "4-inch pot", Availability: "In Stock",
			URL:                 "https://planterina.com/products/snake-plant",
			AffiliateCommission: 12, ShippingCost: 12.00, ShippingFreeOver: 40.00,
			Rating: 4.8, Reviews: 890,
		},
	},
	"fiddle leaf fig": {
		{
			Seller: "The Sill", Price: 65.00, Size: "6-inch pot", Availability: "In Stock",
			URL:                 "https://www.thesill.com/products/fiddle-leaf-fig",
			AffiliateCommission: 10, ShippingCost: 25.00, ShippingFreeOver: 75.00,
			Rating: 4.5, Reviews: 756,
		},
		{
			Seller: "Bloomscape", Price: 75.00, Size: "8-inch pot", Availability: "In Stock",
			URL:                 "https://bloomscape.com/product/fiddle-leaf-fig/",
			AffiliateCommission: 8, ShippingCost: 30.00, ShippingFreeOver: 85.00,
			Rating: 4.4, Reviews: 432,
		},
	},
}

// catalogOrder fixes the scan order for substring matching so lookups
// resolve to the same entry on every call.
var catalogOrder = []string{"monstera", "snake plant", "fiddle leaf fig"}

// AffiliateURL appends this service's tracking parameters to a partner URL.
// The Sill additionally gets a utm_source parameter; unknown domains pass
// through unchanged.
func AffiliateURL(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "thesill.com"):
		return rawURL + "?ref=plantworks&utm_source=plantworks"
	case strings.Contains(rawURL, "bloomscape.com"), strings.Contains(rawURL, "planterina.com"):
		return rawURL + "?ref=plantworks"
	default:
		return rawURL
	}
}

// MarketplaceSearchTool searches the mock retailer inventory.
type MarketplaceSearchTool struct {
	logger *logging.Logger
}

// NewMarketplaceSearchTool builds the marketplace_search tool.
func NewMarketplaceSearchTool() *MarketplaceSearchTool {
	return &MarketplaceSearchTool{logger: logging.GetLogger("tools.marketplace")}
}

func (t *MarketplaceSearchTool) Name() string { return "marketplace_search" }

func (t *MarketplaceSearchTool) Description() string {
	return "Search plant marketplaces and nurseries for availability, prices, sizes, ratings, and shipping terms."
}

func (t *MarketplaceSearchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"plant_name", "location"},
		"properties": map[string]interface{}{
			"plant_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of plant to search for",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "User's location for shipping considerations",
			},
			"max_price": map[string]interface{}{
				"type":        "number",
				"description": "Maximum price filter (optional)",
			},
		},
	}
}

// Search is the typed execution path used by specialists. An unknown plant
// yields an empty product list, never an error; Sources always names the
// three retailers regardless of hits.
func (t *MarketplaceSearchTool) Search(input MarketplaceInput) *MarketplaceReport {
	plantKey := strings.ToLower(strings.TrimSpace(input.PlantName))

	var found []Product
	if products, ok := marketplaceCatalog[plantKey]; ok {
		found = products
	} else {
		// Bidirectional substring match, scanning keys in catalog order.
		// An empty plant name matches every key and so resolves to the
		// first catalog entry.
		for _, key := range catalogOrder {
			if strings.Contains(key, plantKey) || strings.Contains(plantKey, key) {
				found = marketplaceCatalog[key]
				break
			}
		}
	}

	if input.MaxPrice > 0 {
		filtered := make([]Product, 0, len(found))
		for _, p := range found {
			if p.Price <= input.MaxPrice {
				filtered = append(filtered, p)
			}
		}
		found = filtered
	}

	// Copy before stamping affiliate URLs; the catalog stays pristine.
	products := make([]Product, len(found))
	for i, p := range found {
		p.AffiliateURL = AffiliateURL(p.URL)
		products[i] = p
	}

	return &MarketplaceReport{
		PlantName:  input.PlantName,
		Location:   input.Location,
		MaxPrice:   input.MaxPrice,
		Products:   products,
		TotalFound: len(products),
		Sources:    []string{"The Sill", "Bloomscape", "Planterina"},
	}
}

func (t *MarketplaceSearchTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in MarketplaceInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	report := t.Search(in)
	return &Result{
		Success: true,
		Data:    report,
		Summary: fmt.Sprintf("Found %d listings for %q", report.TotalFound, in.PlantName),
	}, nil
}
