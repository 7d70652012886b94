package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiseaseIdentifier_Diagnose(t *testing.T) {
	tool := NewDiseaseIdentifierTool()

	tests := []struct {
		name               string
		symptoms           string
		expectedIssue      string
		expectedConfidence float64
	}{
		{"yellowing", "my plant has yellowing leaves near the base", "Overwatering", 0.8},
		{"brown spots", "I see brown spots on several leaves", "Fungal infection", 0.7},
		{"wilting", "the whole plant is wilting", "Underwatering", 0.75},
		{"powdery mildew", "there is white powder on the foliage", "Powdery mildew", 0.9},
		{"pests", "small insects crawling under the leaves", "Aphids", 0.8},
		{"case insensitive", "YELLOWING LEAVES everywhere", "Overwatering", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diagnosis := tool.Diagnose(DiseaseInput{Symptoms: tt.symptoms, PlantType: "monstera"})
			require.NotEmpty(t, diagnosis.PossibleIssues)
			assert.Contains(t, diagnosis.PossibleIssues, tt.expectedIssue)
			assert.Equal(t, tt.expectedConfidence, diagnosis.Confidence)
			assert.Len(t, diagnosis.PreventionTips, 5)
		})
	}
}

func TestDiseaseIdentifier_BestConfidenceWins(t *testing.T) {
	tool := NewDiseaseIdentifierTool()

	// Matches both "brown spots" (0.7) and "white powder" (0.9); the higher
	// confidence entry is reported alone.
	diagnosis := tool.Diagnose(DiseaseInput{
		Symptoms:  "brown spots and white powder on leaves",
		PlantType: "rose",
	})
	assert.Equal(t, []string{"Powdery mildew"}, diagnosis.PossibleIssues)
	assert.Equal(t, 0.9, diagnosis.Confidence)
}

func TestDiseaseIdentifier_TiedConfidenceResolvesToTableOrder(t *testing.T) {
	tool := NewDiseaseIdentifierTool()

	// "yellowing leaves" and "small insects" both match at 0.8; the earlier
	// table row must win on every call.
	for i := 0; i < 20; i++ {
		diagnosis := tool.Diagnose(DiseaseInput{
			Symptoms:  "yellowing leaves and small insects on the stems",
			PlantType: "monstera",
		})
		require.Equal(t, []string{"Overwatering", "Nutrient deficiency", "Natural aging"}, diagnosis.PossibleIssues)
		require.Equal(t, 0.8, diagnosis.Confidence)
	}
}

func TestDiseaseIdentifier_UnknownCondition(t *testing.T) {
	tool := NewDiseaseIdentifierTool()

	diagnosis := tool.Diagnose(DiseaseInput{
		Symptoms:  "leaves look strange in a way I cannot describe",
		PlantType: "pothos",
	})
	assert.Equal(t, []string{"Unknown condition - requires expert diagnosis"}, diagnosis.PossibleIssues)
	assert.Len(t, diagnosis.RecommendedTreatments, 4)
	assert.Equal(t, 0.3, diagnosis.Confidence)
}

func TestDiseaseIdentifier_ImageNote(t *testing.T) {
	tool := NewDiseaseIdentifierTool()

	withImage := tool.Diagnose(DiseaseInput{
		Symptoms:  "wilting",
		PlantType: "fern",
		ImageURL:  "https://example.invalid/fern.jpg",
	})
	assert.Equal(t, "Image provided - visual analysis would enhance diagnosis accuracy", withImage.ImageAnalysis)

	withoutImage := tool.Diagnose(DiseaseInput{Symptoms: "wilting", PlantType: "fern"})
	assert.Empty(t, withoutImage.ImageAnalysis)
}
