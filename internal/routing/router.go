// Package routing classifies free-text plant queries into specialist routes.
//
// Classification is a single ranked keyword scan: the first rule whose
// keyword set matches wins, so "how do I water and where can I buy" resolves
// to care, not marketplace. The general route is an explicit variant returned
// when nothing matches, consumed by the coordinator like any other route.
package routing

import "strings"

// RouteDecision is the specialist category chosen for a message.
// It is decided once per query and never revisited within a request.
type RouteDecision string

const (
	RouteCare             RouteDecision = "care"
	RouteMarketplace      RouteDecision = "marketplace"
	RouteLocalEnvironment RouteDecision = "local_environment"
	RouteIdentification   RouteDecision = "identification"
	RouteGeneral          RouteDecision = "general"
)

// routeRule binds a route to its trigger keywords. Rules are evaluated in
// slice order; order encodes priority.
type routeRule struct {
	route    RouteDecision
	keywords []string
}

// rankedRules is the single source of routing priority:
// care > marketplace > local-environment > identification.
var rankedRules = []routeRule{
	{
		route: RouteCare,
		keywords: []string{
			"care", "water", "fertilize", "grow", "how do i", "how to",
			"yellowing", "brown", "dying", "watering", "light", "humidity",
		},
	},
	{
		route: RouteMarketplace,
		keywords: []string{
			"buy", "purchase", "price", "seller", "where can i",
			"shop", "store", "find", "cost",
		},
	},
	{
		route: RouteLocalEnvironment,
		keywords: []string{
			"native", "local", "zone", "climate", "hardiness", "soil",
		},
	},
	{
		route: RouteIdentification,
		keywords: []string{
			"identify", "what is", "species", "botanical", "tell me about",
		},
	},
}

// Classify maps a free-text message to a RouteDecision. Matching is
// case-insensitive substring containment. An empty or unmatched message
// yields RouteGeneral.
func Classify(message string) RouteDecision {
	lower := strings.ToLower(message)

	for _, rule := range rankedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.route
			}
		}
	}

	return RouteGeneral
}
