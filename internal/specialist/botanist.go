// Package specialist implements the four expert handlers the coordinator
// dispatches to. Each handler holds typed references to the tools it needs,
// renders curated knowledge through its own template, and always answers
// with non-empty text: tool failures are logged and the handler falls
// through to its next tier.
package specialist

import (
	"context"
	"strings"
	"text/template"

	"github.com/plantworks/plantworks/internal/knowledge"
	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/ragclient"
	"github.com/plantworks/plantworks/internal/tools"
)

var monographTmpl = template.Must(template.New("monograph").Parse(
	`{{.Title}}

{{.Intro}}

{{range .Sections}}{{.Heading}}:
{{range .Points}}- {{.}}
{{end}}
{{end}}{{.Closing}}`))

var profileTmpl = template.Must(template.New("profile").Parse(
	`Plant Profile: {{.Title}}

As The Botanist, here's what I found:

{{.Snippet}}

Source: {{.Link}}

Would you like detailed care instructions, or are you interested in finding where to purchase this plant?`))

var ragTmpl = template.Must(template.New("rag").Parse(
	`Plant Knowledge: {{.Plant}}

As The Botanist, here's what I found in my reference library:

{{.Info}}

Would you like detailed care instructions, or are you interested in finding where to purchase this plant?`))

const botanistFallback = `Plant Identification Assistance

As The Botanist, I'd love to help identify your plant! However, I need a bit more specific information to provide accurate identification.

For better identification, please tell me:
- Plant name if you know it (common or scientific)
- Leaf shape and size (round, pointed, heart-shaped, etc.)
- Growth pattern (upright, trailing, bushy, tree-like)
- Special features (variegation, flowers, unique characteristics)

Popular plants I can help with:
- Monstera deliciosa (Swiss Cheese Plant)
- Sansevieria (Snake Plant)
- Ficus lyrata (Fiddle Leaf Fig)

Or try asking:
- "What is Monstera deliciosa?"
- "Tell me about snake plants"
- "Identify Ficus lyrata"

I'm here to share my botanical expertise - just give me a plant name or better description!`

// Botanist answers identification queries from the knowledge table, falling
// back to the retrieval sidecar when attached, then to a plant database
// search.
type Botanist struct {
	search *tools.PlantSearchTool
	rag    *ragclient.Client
	logger *logging.Logger
}

// NewBotanist builds the identification specialist.
func NewBotanist(search *tools.PlantSearchTool) *Botanist {
	return &Botanist{
		search: search,
		logger: logging.GetLogger("specialist.botanist"),
	}
}

// WithRAG attaches the retrieval sidecar as a secondary knowledge source.
func (b *Botanist) WithRAG(client *ragclient.Client) *Botanist {
	b.rag = client
	return b
}

// Respond produces the botanist's answer for an identification query.
func (b *Botanist) Respond(ctx context.Context, message string) string {
	if plant, ok := knowledge.Find(message); ok && plant.Monograph != nil {
		if text := render(monographTmpl, plant.Monograph); text != "" {
			return text
		}
	}

	if b.rag != nil {
		answers, err := b.rag.Ask(ctx, message, 1)
		if err != nil {
			b.logger.Warn("retrieval sidecar lookup failed: %v", err)
		} else if len(answers) > 0 {
			if text := render(ragTmpl, answers[0]); text != "" {
				return text
			}
		}
	}

	query := tools.CleanPlantQuery(message)
	if query != "" {
		resp := b.search.Search(ctx, tools.PlantSearchInput{Query: query, Limit: 1})
		if len(resp.Results) > 0 {
			if text := render(profileTmpl, resp.Results[0]); text != "" {
				return text
			}
		}
		b.logger.Debug("no search results for %q", query)
	}

	return botanistFallback
}

// render executes a template against data; a template failure degrades to
// an empty string which callers treat as a miss.
func render(tmpl *template.Template, data interface{}) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		logging.GetLogger("specialist").Error("template render failed: %v", err)
		return ""
	}
	return sb.String()
}
