package specialist

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/tools"
)

var (
	dollarPriceRe = regexp.MustCompile(`\$(\d+)`)
	bareNumberRe  = regexp.MustCompile(`\d+`)
)

var marketplaceTmpl = template.Must(template.New("marketplace").Parse(
	`Plant Marketplace Results

Found {{.TotalFound}} options for {{.PlantName}}:

{{range .Products}}{{.Seller}} - ${{printf "%.2f" .Price}}
- Size: {{.Size}}
- Rating: {{.Rating}}/5 ({{.Reviews}} reviews)
- Availability: {{.Availability}}
- Shop: {{.AffiliateURL}}

{{end}}Shopping Tips:
- The Sill is our featured partner with excellent quality
- Compare shipping costs (free over certain amounts)
- Check seller ratings and return policies
- Consider plant size vs. price value

Revenue Note: We earn small commissions from partner sales, which helps keep Plantworks free!`))

const merchantFallback = `Plant Marketplace Guide

As The Merchant, I help you find the best plants at great prices!

Featured Partners:
- The Sill - Premium houseplants, excellent packaging
- Bloomscape - Large plants, direct from greenhouse
- Planterina - Unique varieties, great prices

What to Consider:
- Plant size and maturity
- Shipping protection (especially in winter)
- Seller reputation and reviews
- Return/guarantee policies

Tell me:
1. What plant are you looking for?
2. Your budget range
3. Your location (for shipping)

I'll find the best options and compare prices across trusted sellers!`

// Merchant answers shopping queries by extracting a plant name and budget
// from the message, then rendering marketplace results.
type Merchant struct {
	marketplace *tools.MarketplaceSearchTool
	logger      *logging.Logger
}

// NewMerchant builds the shopping specialist.
func NewMerchant(marketplace *tools.MarketplaceSearchTool) *Merchant {
	return &Merchant{
		marketplace: marketplace,
		logger:      logging.GetLogger("specialist.merchant"),
	}
}

// ExtractPlantName picks the plant out of a shopping message. Snake plant is
// the default when no known plant is mentioned.
func ExtractPlantName(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "snake plant"):
		return "snake plant"
	case strings.Contains(lower, "monstera"):
		return "monstera"
	case strings.Contains(lower, "fiddle leaf fig"):
		return "fiddle leaf fig"
	default:
		return "snake plant"
	}
}

// ExtractMaxPrice pulls a budget out of the message: an explicit "$N" wins,
// otherwise a message saying "under" takes its last bare number. Zero means
// no budget.
func ExtractMaxPrice(message string) float64 {
	if m := dollarPriceRe.FindStringSubmatch(message); m != nil {
		price, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return price
		}
	}
	if strings.Contains(strings.ToLower(message), "under") {
		numbers := bareNumberRe.FindAllString(message, -1)
		if len(numbers) > 0 {
			price, err := strconv.ParseFloat(numbers[len(numbers)-1], 64)
			if err == nil {
				return price
			}
		}
	}
	return 0
}

// Respond produces the merchant's answer for a shopping query.
func (m *Merchant) Respond(ctx context.Context, message string) string {
	input := tools.MarketplaceInput{
		PlantName: ExtractPlantName(message),
		Location:  "nationwide",
		MaxPrice:  ExtractMaxPrice(message),
	}

	report := m.marketplace.Search(input)
	if report.TotalFound > 0 {
		if text := render(marketplaceTmpl, report); text != "" {
			return text
		}
	}
	m.logger.Debug("no marketplace results for %q", input.PlantName)

	return merchantFallback
}
