package specialist

import (
	"context"
	"text/template"

	"github.com/plantworks/plantworks/internal/knowledge"
	"github.com/plantworks/plantworks/internal/logging"
)

var careGuideTmpl = template.Must(template.New("careguide").Parse(
	`{{.Title}}

{{.Intro}}

{{range .Sections}}{{.Heading}}:
{{range .Points}}- {{.}}
{{end}}
{{end}}{{.Closing}}`))

const gardenerFallback = `Plant Care Guidance

As The Gardener, I recommend:

General Care Tips:
- Watering: Check soil moisture before watering
- Light: Most houseplants prefer bright, indirect light
- Humidity: 40-60% humidity is ideal for most plants
- Fertilizing: Feed during growing season (spring/summer)

Seasonal Adjustments:
- Winter: Reduce watering and stop fertilizing
- Spring: Resume regular feeding and increase watering
- Summer: Monitor for heat stress and increase humidity

For specific care advice, please tell me:
1. What plant you're caring for
2. Your location/climate
3. Current growing conditions

I can then provide personalized care schedules and troubleshooting!`

// Gardener answers care queries from the knowledge table's care guides,
// falling back to generic guidance plus an information request.
type Gardener struct {
	logger *logging.Logger
}

// NewGardener builds the care specialist.
func NewGardener() *Gardener {
	return &Gardener{logger: logging.GetLogger("specialist.gardener")}
}

// Respond produces the gardener's answer for a care query.
func (g *Gardener) Respond(ctx context.Context, message string) string {
	if plant, ok := knowledge.Find(message); ok && plant.CareGuide != nil {
		if text := render(careGuideTmpl, plant.CareGuide); text != "" {
			return text
		}
	}
	return gardenerFallback
}
