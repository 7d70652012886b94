package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
)

// SellerInput is the input for seller_verifier.
type SellerInput struct {
	SellerName string `json:"seller_name"`
}

// SellerProfile is the verification record for one seller.
type SellerProfile struct {
	VerificationStatus string   `json:"verification_status"`
	TrustScore         float64  `json:"trust_score"`
	YearsInBusiness    int      `json:"years_in_business"`
	BBBRating          string   `json:"bbb_rating"`
	CustomerReviews    int      `json:"customer_reviews"`
	PositivePercent    int      `json:"positive_percent"`
	ReturnPolicy       string   `json:"return_policy"`
	ShippingPolicy     string   `json:"shipping_policy"`
	Certifications     []string `json:"certifications"`
}

// SellerVerification is the output of seller_verifier.
type SellerVerification struct {
	SellerName      string        `json:"seller_name"`
	Profile         SellerProfile `json:"profile"`
	RedFlags        []string      `json:"red_flags"`
	Recommendations []string      `json:"recommendations"`
}

// sellerDB is the mock verification database, keyed by lowercase seller name.
var sellerDB = map[string]SellerProfile{
	"the sill": {
		VerificationStatus: "Verified Business",
		TrustScore:         4.5,
		YearsInBusiness:    8,
		BBBRating:          "A+",
		CustomerReviews:    15000,
		PositivePercent:    87,
		ReturnPolicy:       "30-day guarantee",
		ShippingPolicy:     "Safe arrival guaranteed",
		Certifications:     []string{"Certified Plant Retailer", "Sustainable Business"},
	},
	"bloomscape": {
		VerificationStatus: "Verified Business",
		TrustScore:         4.3,
		YearsInBusiness:    6,
		BBBRating:          "A",
		CustomerReviews:    8500,
		PositivePercent:    82,
		ReturnPolicy:       "30-day guarantee",
		ShippingPolicy:     "Safe arrival guaranteed",
		Certifications:     []string{"Certified Plant Retailer"},
	},
	"planterina": {
		VerificationStatus: "Verified Business",
		TrustScore:         4.6,
		YearsInBusiness:    4,
		BBBRating:          "A",
		CustomerReviews:    3200,
		PositivePercent:    89,
		ReturnPolicy:       "14-day return",
		ShippingPolicy:     "Safe arrival guaranteed",
		Certifications:     []string{"Certified Plant Retailer"},
	},
	"local garden center": {
		VerificationStatus: "Local Business",
		TrustScore:         4.7,
		YearsInBusiness:    25,
		BBBRating:          "A+",
		CustomerReviews:    450,
		PositivePercent:    94,
		ReturnPolicy:       "14-day return",
		ShippingPolicy:     "N/A - Local pickup",
		Certifications:     []string{"Master Gardener Certified"},
	},
}

// SellerVerifierTool checks sellers against the mock verification database.
type SellerVerifierTool struct {
	logger *logging.Logger
}

// NewSellerVerifierTool builds the seller_verifier tool.
func NewSellerVerifierTool() *SellerVerifierTool {
	return &SellerVerifierTool{logger: logging.GetLogger("tools.seller")}
}

func (t *SellerVerifierTool) Name() string { return "seller_verifier" }

func (t *SellerVerifierTool) Description() string {
	return "Verify a plant seller's reputation, policies, and certifications before purchase."
}

func (t *SellerVerifierTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"seller_name"},
		"properties": map[string]interface{}{
			"seller_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of seller to verify",
			},
		},
	}
}

// Verify is the typed execution path used by the merchant specialist.
// Unknown sellers get a manual-verification profile instead of an error.
func (t *SellerVerifierTool) Verify(input SellerInput) *SellerVerification {
	key := strings.ToLower(strings.TrimSpace(input.SellerName))

	profile, ok := sellerDB[key]
	if !ok {
		return &SellerVerification{
			SellerName: input.SellerName,
			Profile: SellerProfile{
				VerificationStatus: "Unknown - Requires Manual Verification",
				TrustScore:         0.0,
			},
			RedFlags: []string{"Seller not in verified database"},
			Recommendations: []string{
				"Research seller independently before purchasing",
				"Check for customer reviews on multiple platforms",
				"Verify return and shipping policies",
				"Start with a small order to test service quality",
				"Look for business registration and contact information",
			},
		}
	}

	var recs []string
	if profile.TrustScore >= 4.0 {
		recs = append(recs, "Highly rated seller with good customer satisfaction")
	}
	if profile.YearsInBusiness >= 5 {
		recs = append(recs, "Established business with proven track record")
	}
	if strings.Contains(strings.ToLower(profile.ShippingPolicy), "guarantee") {
		recs = append(recs, "Offers shipping protection for live plants")
	}
	if profile.PositivePercent >= 85 {
		recs = append(recs, "Strong positive review percentage")
	}

	return &SellerVerification{
		SellerName:      input.SellerName,
		Profile:         profile,
		RedFlags:        []string{},
		Recommendations: recs,
	}
}

func (t *SellerVerifierTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in SellerInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	verification := t.Verify(in)
	return &Result{
		Success: true,
		Data:    verification,
		Summary: fmt.Sprintf("Verification for %q: %s", in.SellerName, verification.Profile.VerificationStatus),
	}, nil
}
