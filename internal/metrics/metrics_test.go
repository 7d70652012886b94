package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantworks/plantworks/internal/tools"
)

func TestRecordChatRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordChatRequest("care", 50*time.Millisecond)
	m.RecordChatRequest("care", 20*time.Millisecond)
	m.RecordChatRequest("general", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChatRequestsTotal.WithLabelValues("care")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatRequestsTotal.WithLabelValues("general")))
}

func TestRecordToolExecution(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordToolExecution("soil_analyzer", true, 10*time.Millisecond)
	m.RecordToolExecution("soil_analyzer", true, 15*time.Millisecond)
	m.RecordToolExecution("weather_lookup", false, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolExecutionsTotal.WithLabelValues("soil_analyzer", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolExecutionsTotal.WithLabelValues("weather_lookup", "false")))
}

func TestMetricsSatisfyRecorderInterface(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	var recorder tools.ExecutionRecorder = m
	require.NotNil(t, recorder)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
