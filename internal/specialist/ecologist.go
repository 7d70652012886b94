package specialist

import (
	"context"
)

// The ecologist's overview is intentionally static: local-environment data
// (zones, soil, native plants) is served through the tools, while the chat
// answer prompts the user for a location.
const ecologistOverview = `Local Environment & Native Plants

As The Ecologist, I help you choose plants that thrive in your specific location!

Benefits of Native Plants:
- Support local wildlife and pollinators
- Require less water and maintenance
- Adapted to your climate conditions
- Help preserve regional biodiversity

What I Can Help With:
- USDA hardiness zone determination
- Native plant recommendations by region
- Soil analysis and improvement
- Climate-appropriate plant selection
- Sustainable gardening practices

Tell me your location and I'll provide:
- Native plants for your area
- Hardiness zone information
- Soil recommendations
- Best planting times

Popular Native Plant Categories:
- Trees: Oak, Maple, Pine species
- Shrubs: Viburnum, Elderberry, Native azaleas
- Perennials: Coneflowers, Black-eyed Susan, Native grasses

Where are you located? I'll provide specific recommendations for your area!`

// Ecologist answers local-environment queries with a static overview and a
// location prompt. It does not branch on location content.
type Ecologist struct{}

// NewEcologist builds the local-environment specialist.
func NewEcologist() *Ecologist {
	return &Ecologist{}
}

// Respond produces the ecologist's answer.
func (e *Ecologist) Respond(ctx context.Context, message string) string {
	return ecologistOverview
}
