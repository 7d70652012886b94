package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plantworks/plantworks/internal/logging"
)

// DiseaseInput is the input for disease_identifier.
type DiseaseInput struct {
	// Symptoms is a free-text description of what the plant looks like.
	Symptoms string `json:"symptoms"`
	// PlantType is the type or name of the affected plant.
	PlantType string `json:"plant_type"`
	// ImageURL optionally points at a photo of the affected plant.
	ImageURL string `json:"image_url,omitempty"`
}

// Diagnosis is the output of disease_identifier.
type Diagnosis struct {
	PlantType             string   `json:"plant_type"`
	Symptoms              string   `json:"symptoms"`
	PossibleIssues        []string `json:"possible_issues"`
	RecommendedTreatments []string `json:"recommended_treatments"`
	PreventionTips        []string `json:"prevention_tips"`
	Confidence            float64  `json:"confidence"`
	ImageAnalysis         string   `json:"image_analysis,omitempty"`
}

// symptomRule is one row of the rule-based symptom table. Rows are scanned
// in declaration order, so confidence ties resolve to the earlier row.
type symptomRule struct {
	symptom    string
	issues     []string
	treatments []string
	confidence float64
}

var symptomRules = []symptomRule{
	{
		symptom:    "yellowing leaves",
		issues:     []string{"Overwatering", "Nutrient deficiency", "Natural aging"},
		treatments: []string{"Reduce watering frequency", "Check soil drainage", "Apply balanced fertilizer"},
		confidence: 0.8,
	},
	{
		symptom:    "brown spots",
		issues:     []string{"Fungal infection", "Bacterial spot", "Sunburn"},
		treatments: []string{"Remove affected leaves", "Improve air circulation", "Apply fungicide if needed"},
		confidence: 0.7,
	},
	{
		symptom:    "wilting",
		issues:     []string{"Underwatering", "Root rot", "Heat stress"},
		treatments: []string{"Check soil moisture", "Inspect roots", "Provide shade during hot weather"},
		confidence: 0.75,
	},
	{
		symptom:    "white powder",
		issues:     []string{"Powdery mildew"},
		treatments: []string{"Improve air circulation", "Apply neem oil", "Remove affected parts"},
		confidence: 0.9,
	},
	{
		symptom:    "small insects",
		issues:     []string{"Aphids", "Spider mites", "Thrips"},
		treatments: []string{"Spray with water", "Apply insecticidal soap", "Introduce beneficial insects"},
		confidence: 0.8,
	},
}

var preventionTips = []string{
	"Maintain proper watering schedule",
	"Ensure good air circulation",
	"Inspect plants regularly",
	"Quarantine new plants",
	"Keep growing area clean",
}

// DiseaseIdentifierTool diagnoses plant issues from a symptom description
// via a rule table. The single best-confidence matching symptom wins; unknown
// symptoms get generic advice at low confidence.
type DiseaseIdentifierTool struct {
	logger *logging.Logger
}

// NewDiseaseIdentifierTool builds the disease_identifier tool.
func NewDiseaseIdentifierTool() *DiseaseIdentifierTool {
	return &DiseaseIdentifierTool{logger: logging.GetLogger("tools.disease")}
}

func (t *DiseaseIdentifierTool) Name() string { return "disease_identifier" }

func (t *DiseaseIdentifierTool) Description() string {
	return "Identify likely plant diseases, pests, or disorders from a symptom description and recommend treatments."
}

func (t *DiseaseIdentifierTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"symptoms", "plant_type"},
		"properties": map[string]interface{}{
			"symptoms": map[string]interface{}{
				"type":        "string",
				"description": "Description of plant symptoms",
			},
			"plant_type": map[string]interface{}{
				"type":        "string",
				"description": "Type or name of affected plant",
			},
			"image_url": map[string]interface{}{
				"type":        "string",
				"description": "URL to image of affected plant (optional)",
			},
		},
	}
}

// Diagnose is the typed execution path used by specialists.
func (t *DiseaseIdentifierTool) Diagnose(input DiseaseInput) *Diagnosis {
	diagnosis := &Diagnosis{
		PlantType:      input.PlantType,
		Symptoms:       input.Symptoms,
		PreventionTips: preventionTips,
	}

	symptomsLower := strings.ToLower(input.Symptoms)

	var best *symptomRule
	for i := range symptomRules {
		rule := &symptomRules[i]
		if !strings.Contains(symptomsLower, rule.symptom) {
			continue
		}
		if best == nil || rule.confidence > best.confidence {
			best = rule
		}
	}

	if best != nil {
		diagnosis.PossibleIssues = best.issues
		diagnosis.RecommendedTreatments = best.treatments
		diagnosis.Confidence = best.confidence
	} else {
		diagnosis.PossibleIssues = []string{"Unknown condition - requires expert diagnosis"}
		diagnosis.RecommendedTreatments = []string{
			"Take clear photos of affected areas",
			"Consult local extension service",
			"Isolate plant if possible",
			"Monitor for changes",
		}
		diagnosis.Confidence = 0.3
	}

	if input.ImageURL != "" {
		diagnosis.ImageAnalysis = "Image provided - visual analysis would enhance diagnosis accuracy"
	}

	return diagnosis
}

func (t *DiseaseIdentifierTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var in DiseaseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	diagnosis := t.Diagnose(in)
	return &Result{
		Success: true,
		Data:    diagnosis,
		Summary: fmt.Sprintf("Diagnosis for %s at confidence %.2f", in.PlantType, diagnosis.Confidence),
	}, nil
}
