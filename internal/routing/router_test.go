package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    RouteDecision
	}{
		{"care keyword", "How do I water my monstera?", RouteCare},
		{"care via symptom", "my plant has yellowing leaves", RouteCare},
		{"care via how-to", "how to repot a ficus", RouteCare},
		{"marketplace keyword", "Where can I buy a fiddle leaf fig?", RouteMarketplace},
		{"marketplace via price", "what does a monstera cost", RouteMarketplace},
		{"local environment", "what plants are native to my area", RouteLocalEnvironment},
		{"local via hardiness", "which hardiness zone am I in", RouteLocalEnvironment},
		{"identification", "identify this plant please", RouteIdentification},
		{"identification via what-is", "what is a sansevieria", RouteIdentification},
		{"general fallback", "hello there", RouteGeneral},
		{"empty message", "", RouteGeneral},
		{"case insensitive", "WHERE CAN I BUY A PLANT", RouteMarketplace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

// Care keywords outrank marketplace keywords no matter where they appear in
// the message.
func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		message string
		want    RouteDecision
	}{
		{"how do I water and where can I buy one", RouteCare},
		// "fertilizer" contains the care keyword "fertilize", so substring
		// matching routes this to care even though it mentions buying.
		{"buy fertilizer for my plant", RouteCare},
		{"fertilize before you buy", RouteCare},
		{"soil for sale in my store", RouteMarketplace},
		{"what is the best soil", RouteLocalEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}
