// Package knowledge holds the curated per-plant expertise the specialists
// render their answers from. Content lives here as structured data; the
// specialist package owns the presentation.
package knowledge

import "strings"

// Section is one titled group of bullet points.
type Section struct {
	Heading string
	Points  []string
}

// Monograph is the botanist's deep profile of a plant.
type Monograph struct {
	Title    string
	Intro    string
	Sections []Section
	Closing  string
}

// CareGuide is the gardener's hands-on care reference for a plant.
type CareGuide struct {
	Title    string
	Intro    string
	Sections []Section
	Closing  string
}

// Plant ties a set of name aliases to the curated content for that plant.
// Monograph and CareGuide are independently optional.
type Plant struct {
	Key       string
	Aliases   []string
	Monograph *Monograph
	CareGuide *CareGuide
}

// plants is checked in order; earlier entries win when a message mentions
// more than one plant.
var plants = []Plant{
	{
		Key:     "monstera",
		Aliases: []string{"monstera deliciosa", "monstera"},
		Monograph: &Monograph{
			Title: "Monstera deliciosa - The Swiss Cheese Plant",
			Intro: "As The Botanist, I'm excited to share my expertise about this magnificent plant!",
			Sections: []Section{
				{
					Heading: "Scientific Classification",
					Points: []string{
						"Scientific Name: Monstera deliciosa",
						"Family: Araceae (Aroid family)",
						"Common Names: Swiss Cheese Plant, Split-leaf Philodendron, Ceriman",
						"Origin: Tropical rainforests of southern Mexico and Panama",
					},
				},
				{
					Heading: "Identification Features",
					Points: []string{
						"Leaves: Large, heart-shaped when young, developing characteristic splits (fenestrations) as they mature",
						"Size: Can reach 10+ feet indoors, 70+ feet in nature",
						"Growth Pattern: Climbing vine with aerial roots",
						"Fenestrations: The iconic holes develop after the plant matures (usually 2-3 years)",
					},
				},
				{
					Heading: "Botanical Facts",
					Points: []string{
						"The fruit is edible when fully ripe (hence \"deliciosa\")",
						"It's a hemiepiphyte - starts on ground, climbs trees",
						"Produces calcium oxalate crystals (toxic if eaten raw)",
						"Can live 40+ years with proper care",
					},
				},
				{
					Heading: "Care Summary",
					Points: []string{
						"Light: Bright, indirect light",
						"Water: When top inch of soil is dry",
						"Humidity: 40-60% preferred",
						"Support: Provide a moss pole for climbing",
					},
				},
			},
			Closing: "This is one of my favorite plants - it's both stunning and relatively easy to care for! Would you like specific care advice or help finding one to purchase?",
		},
		CareGuide: &CareGuide{
			Title: "Monstera deliciosa Care Guide",
			Intro: "As The Gardener, here's my expert care advice for your Monstera:",
			Sections: []Section{
				{
					Heading: "Watering",
					Points: []string{
						"Water when top 1-2 inches of soil are dry",
						"Typically every 1-2 weeks",
						"Use filtered or distilled water if possible",
						"Ensure drainage holes to prevent root rot",
					},
				},
				{
					Heading: "Light Requirements",
					Points: []string{
						"Bright, indirect light (6+ hours daily)",
						"Avoid direct sunlight (causes leaf burn)",
						"East or north-facing windows are ideal",
						"Can tolerate lower light but growth slows",
					},
				},
				{
					Heading: "Temperature & Humidity",
					Points: []string{
						"Temperature: 65-80F (18-27C)",
						"Humidity: 40-60% (use humidifier if needed)",
						"Avoid cold drafts and heating vents",
					},
				},
				{
					Heading: "Fertilizing",
					Points: []string{
						"Feed monthly during growing season (spring/summer)",
						"Use balanced liquid fertilizer (20-20-20)",
						"Reduce to every 2-3 months in winter",
						"Dilute to half strength to avoid burning",
					},
				},
				{
					Heading: "Common Problems",
					Points: []string{
						"Yellow leaves: Overwatering or natural aging",
						"Brown tips: Low humidity or fluoride in water",
						"No fenestrations: Insufficient light or young plant",
						"Drooping: Underwatering or root bound",
					},
				},
			},
			Closing: "Your Monstera can live for decades with proper care! Any specific issues you're experiencing?",
		},
	},
	{
		Key:     "snake plant",
		Aliases: []string{"snake plant", "sansevieria"},
		Monograph: &Monograph{
			Title: "Sansevieria trifasciata - The Snake Plant",
			Intro: "As The Botanist, let me tell you about this remarkable succulent!",
			Sections: []Section{
				{
					Heading: "Scientific Classification",
					Points: []string{
						"Scientific Name: Sansevieria trifasciata (recently reclassified to Dracaena trifasciata)",
						"Family: Asparagaceae (formerly Agavaceae)",
						"Common Names: Snake Plant, Mother-in-Law's Tongue, Viper's Bowstring Hemp",
						"Origin: West Africa (Nigeria to Congo)",
					},
				},
				{
					Heading: "Identification Features",
					Points: []string{
						"Leaves: Thick, sword-like, upright growth",
						"Pattern: Dark green with lighter green horizontal stripes",
						"Edges: Yellow margins on many varieties",
						"Height: 1-4 feet typically, can reach 6+ feet",
					},
				},
				{
					Heading: "Botanical Adaptations",
					Points: []string{
						"CAM photosynthesis - opens stomata at night to conserve water",
						"Rhizomatous root system for water storage",
						"Extremely drought tolerant",
						"Natural air purifier (NASA Clean Air Study)",
					},
				},
				{
					Heading: "Fun Facts",
					Points: []string{
						"Used historically for bowstring fiber",
						"Considered lucky in feng shui",
						"One of the most tolerant houseplants",
						"Can bloom with small, fragrant white flowers",
					},
				},
			},
			Closing: "This plant is perfect for beginners - nearly indestructible! Need care tips or shopping advice?",
		},
		CareGuide: &CareGuide{
			Title: "Snake Plant Care Guide",
			Intro: "As The Gardener, here's how to keep your Snake Plant thriving:",
			Sections: []Section{
				{
					Heading: "Watering (Most Important!)",
					Points: []string{
						"Water every 2-6 weeks depending on season",
						"Allow soil to dry completely between waterings",
						"Water less in winter (monthly or less)",
						"Better to underwater than overwater",
					},
				},
				{
					Heading: "Light Requirements",
					Points: []string{
						"Tolerates low to bright indirect light",
						"Avoid direct sunlight (can bleach leaves)",
						"Perfect for offices and low-light rooms",
						"Growth faster in brighter conditions",
					},
				},
				{
					Heading: "Soil & Potting",
					Points: []string{
						"Well-draining cactus/succulent mix",
						"Add perlite or sand for extra drainage",
						"Terra cotta pots help soil dry faster",
						"Repot every 3-5 years or when pot-bound",
					},
				},
				{
					Heading: "Troubleshooting",
					Points: []string{
						"Soft, mushy leaves: Overwatering/root rot",
						"Wrinkled leaves: Severe underwatering",
						"Brown tips: Fluoride in water or low humidity",
						"Slow growth: Normal! They're naturally slow",
					},
				},
			},
			Closing: "This is one of the most forgiving plants you can grow! What specific questions do you have?",
		},
	},
	{
		Key:     "fiddle leaf fig",
		Aliases: []string{"fiddle leaf fig", "ficus lyrata"},
		Monograph: &Monograph{
			Title: "Ficus lyrata - The Fiddle Leaf Fig",
			Intro: "As The Botanist, I'm delighted to share the fascinating details of this Instagram-famous plant!",
			Sections: []Section{
				{
					Heading: "Scientific Classification",
					Points: []string{
						"Scientific Name: Ficus lyrata",
						"Family: Moraceae (Fig family)",
						"Common Names: Fiddle Leaf Fig, Banjo Fig",
						"Origin: Western Africa (Cameroon to Sierra Leone)",
					},
				},
				{
					Heading: "Identification Features",
					Points: []string{
						"Leaves: Large, violin-shaped (hence \"fiddle\"), leathery texture",
						"Size: 6-10 feet indoors, 50+ feet in nature",
						"Veining: Prominent light green veins on dark green leaves",
						"Bark: Smooth, light gray",
					},
				},
				{
					Heading: "Botanical Challenges",
					Points: []string{
						"Sensitive to environmental changes",
						"Prone to leaf drop when stressed",
						"Requires consistent care routine",
						"Native to stable tropical conditions",
					},
				},
				{
					Heading: "Care Requirements",
					Points: []string{
						"Light: Bright, indirect light (6+ hours)",
						"Water: Consistent moisture, not soggy",
						"Humidity: 40-50% minimum",
						"Temperature: 65-75F consistently",
					},
				},
			},
			Closing: "This beauty requires more attention than most houseplants, but the dramatic results are worth it! Would you like detailed care instructions or help finding a healthy specimen?",
		},
	},
}

// Find returns the first plant whose alias appears in the message.
func Find(message string) (*Plant, bool) {
	lower := strings.ToLower(message)
	for i := range plants {
		for _, alias := range plants[i].Aliases {
			if strings.Contains(lower, alias) {
				return &plants[i], true
			}
		}
	}
	return nil, false
}

// All returns every plant in the table, in matching order.
func All() []Plant {
	return plants
}
