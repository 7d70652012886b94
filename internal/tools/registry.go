// Package tools provides the tool registry and the ten plant tools the
// specialists dispatch to. Tools are deterministic: they compute over static
// tables or call an external provider with a mock fallback. Soft failures are
// carried in Result.Error; a tool never panics across the registry boundary.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plantworks/plantworks/internal/logging"
)

// Tool defines the interface for plant tools.
type Tool interface {
	// Name returns the tool's unique identifier.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// InputSchema returns JSON Schema for input validation.
	InputSchema() map[string]interface{}

	// Execute runs the tool with given input.
	Execute(ctx context.Context, input json.RawMessage) (*Result, error)
}

// Result represents the output of a tool execution.
type Result struct {
	// Success indicates if the tool executed successfully
	Success bool `json:"success"`

	// Data contains the tool's output (tool-specific structure)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details if Success is false
	Error string `json:"error,omitempty"`

	// Summary is a brief description of what happened (for display)
	Summary string `json:"summary,omitempty"`

	// ExecutionTimeMs is how long the tool took to run
	ExecutionTimeMs int64 `json:"executionTimeMs"`
}

// ExecutionRecorder receives a sample per registry execution. Implemented by
// the metrics package; nil disables recording.
type ExecutionRecorder interface {
	RecordToolExecution(tool string, success bool, duration time.Duration)
}

// Registry manages tool registration and discovery.
type Registry struct {
	tools    map[string]Tool
	mu       sync.RWMutex
	logger   *logging.Logger
	recorder ExecutionRecorder
	tracer   trace.Tracer
}

// NewRegistry creates an empty tool registry. The execution tracer comes
// from the global tracer provider and is a no-op until tracing is enabled.
func NewRegistry(recorder ExecutionRecorder) *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		logger:   logging.GetLogger("tools.registry"),
		recorder: recorder,
		tracer:   otel.GetTracerProvider().Tracer("plantworks.tools"),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
	r.logger.Debug("registered tool %s", tool.Name())
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// Execute runs a tool by name with the given input. Tool errors are folded
// into the Result rather than returned, so callers always get a Result.
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) *Result {
	tool, ok := r.Get(name)
	if !ok {
		return &Result{
			Success: false,
			Error:   fmt.Sprintf("tool %q not found", name),
		}
	}

	ctx, span := r.tracer.Start(ctx, "registry.Execute",
		trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		result = &Result{
			Success: false,
			Error:   err.Error(),
		}
	}
	result.ExecutionTimeMs = elapsed.Milliseconds()

	span.SetAttributes(
		attribute.Bool("tool.success", result.Success),
		attribute.Int64("tool.duration_ms", result.ExecutionTimeMs),
	)
	if !result.Success {
		span.SetStatus(codes.Error, result.Error)
	}

	r.logger.DebugWithFields("tool executed",
		logging.Field("tool", name),
		logging.Field("success", result.Success),
		logging.Field("duration_ms", result.ExecutionTimeMs))

	if r.recorder != nil {
		r.recorder.RecordToolExecution(name, result.Success, elapsed)
	}

	return result
}
