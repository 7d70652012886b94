// Package coordinator routes incoming chat messages to the specialist
// handlers and assembles the final answer.
package coordinator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/plantworks/plantworks/internal/generate"
	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/metrics"
	"github.com/plantworks/plantworks/internal/routing"
	"github.com/plantworks/plantworks/internal/specialist"
)

const welcomeMenu = `Welcome to Plantworks!

I'm your plant expert team, ready to help with:

Plant Identification (The Botanist)
- Identify plants from descriptions
- Learn botanical facts and care basics

Plant Care (The Gardener)
- Personalized care schedules
- Troubleshoot plant problems
- Seasonal care adjustments

Local Environment (The Ecologist)
- Find native plants for your area
- Soil and climate recommendations

Plant Shopping (The Merchant)
- Compare prices across retailers
- Find trusted sellers

How can I help you today? Just ask about:
- "What is [plant name]?" for identification
- "How do I care for [plant]?" for growing tips
- "Where can I buy [plant]?" for shopping help
- "What native plants grow in [location]?" for local recommendations

I'm here to help you succeed with plants!`

// Coordinator classifies each message once and dispatches it to the matching
// specialist. An optional generate provider may reword the assembled text;
// provider failures fall back to the deterministic answer.
type Coordinator struct {
	botanist  *specialist.Botanist
	gardener  *specialist.Gardener
	ecologist *specialist.Ecologist
	merchant  *specialist.Merchant
	polisher  generate.Provider
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	logger    *logging.Logger
}

// Option configures optional coordinator behavior.
type Option func(*Coordinator)

// WithPolisher enables the generate polish pass.
func WithPolisher(p generate.Provider) Option {
	return func(c *Coordinator) { c.polisher = p }
}

// WithMetrics enables per-route request instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithTracer overrides the tracer used for chat spans. The default comes
// from the global tracer provider and is a no-op until tracing is enabled.
func WithTracer(t trace.Tracer) Option {
	return func(c *Coordinator) { c.tracer = t }
}

// New builds a coordinator over the four specialists.
func New(botanist *specialist.Botanist, gardener *specialist.Gardener, ecologist *specialist.Ecologist, merchant *specialist.Merchant, opts ...Option) *Coordinator {
	c := &Coordinator{
		botanist:  botanist,
		gardener:  gardener,
		ecologist: ecologist,
		merchant:  merchant,
		tracer:    otel.GetTracerProvider().Tracer("plantworks.coordinator"),
		logger:    logging.GetLogger("coordinator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Respond classifies the message and returns the specialist's answer. It
// always returns non-empty text.
func (c *Coordinator) Respond(ctx context.Context, message string) string {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "coordinator.Respond")
	defer span.End()

	route := routing.Classify(message)
	span.SetAttributes(attribute.String("chat.route", string(route)))
	c.logger.Debug("routed message to %s", route)

	var text string
	switch route {
	case routing.RouteIdentification:
		text = c.botanist.Respond(ctx, message)
	case routing.RouteCare:
		text = c.gardener.Respond(ctx, message)
	case routing.RouteLocalEnvironment:
		text = c.ecologist.Respond(ctx, message)
	case routing.RouteMarketplace:
		text = c.merchant.Respond(ctx, message)
	default:
		text = welcomeMenu
	}

	if c.polisher != nil {
		polished, err := c.polisher.Rewrite(ctx, message, text)
		if err != nil {
			c.logger.Warn("polish pass failed, using deterministic text: %v", err)
		} else if polished != "" {
			text = polished
		}
	}

	span.SetAttributes(attribute.Int("chat.response_chars", len(text)))

	if c.metrics != nil {
		c.metrics.RecordChatRequest(string(route), time.Since(start))
	}
	return text
}
