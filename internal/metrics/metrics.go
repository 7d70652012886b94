// Package metrics holds the Prometheus instrumentation for the chat service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	ChatRequestsTotal   *prometheus.CounterVec   // Chat requests by resolved route
	ChatDuration        prometheus.Histogram     // End-to-end chat handling time
	ToolExecutionsTotal *prometheus.CounterVec   // Tool executions by tool and outcome
	ToolDuration        *prometheus.HistogramVec // Tool execution time by tool
}

// New creates and registers the service metrics with the given registerer.
// Passing a fresh registry keeps tests isolated from the global one.
func New(reg prometheus.Registerer) *Metrics {
	chatRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plantworks_chat_requests_total",
		Help: "Total chat requests by resolved route",
	}, []string{"route"})

	chatDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plantworks_chat_duration_seconds",
		Help:    "End-to-end chat request handling time",
		Buckets: prometheus.DefBuckets,
	})

	toolExecutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plantworks_tool_executions_total",
		Help: "Total tool executions by tool name and outcome",
	}, []string{"tool", "success"})

	toolDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plantworks_tool_duration_seconds",
		Help:    "Tool execution time by tool name",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})

	reg.MustRegister(chatRequests)
	reg.MustRegister(chatDuration)
	reg.MustRegister(toolExecutions)
	reg.MustRegister(toolDuration)

	return &Metrics{
		ChatRequestsTotal:   chatRequests,
		ChatDuration:        chatDuration,
		ToolExecutionsTotal: toolExecutions,
		ToolDuration:        toolDuration,
	}
}

// RecordChatRequest counts one chat request for the given route and observes
// its handling time.
func (m *Metrics) RecordChatRequest(route string, duration time.Duration) {
	m.ChatRequestsTotal.WithLabelValues(route).Inc()
	m.ChatDuration.Observe(duration.Seconds())
}

// RecordToolExecution implements the tool registry's recorder hook.
func (m *Metrics) RecordToolExecution(tool string, success bool, duration time.Duration) {
	outcome := "false"
	if success {
		outcome = "true"
	}
	m.ToolExecutionsTotal.WithLabelValues(tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}
