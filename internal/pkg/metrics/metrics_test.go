package metrics

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fixedCount int

func (f fixedCount) Count() int       { return int(f) }
func (f fixedCount) ActiveCount() int { return int(f) }

func TestCollector(t *testing.T) {
	c := NewCollector(fixedCount(15), fixedCount(3), fixedCount(2), time.Now())

	expected := `
# HELP counselor_catalog_courses Number of courses in the catalog
# TYPE counselor_catalog_courses gauge
counselor_catalog_courses 15
# HELP counselor_voice_call_logs Number of completed voice calls recorded
# TYPE counselor_voice_call_logs counter
counselor_voice_call_logs 3
# HELP counselor_active_calls Number of voice calls currently connecting or in progress
# TYPE counselor_active_calls gauge
counselor_active_calls 2
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"counselor_catalog_courses", "counselor_voice_call_logs", "counselor_active_calls")
	if err != nil {
		t.Error(err)
	}
}

func TestWebhookMetrics(t *testing.T) {
	m := NewWebhookMetrics([]string{"function-call", "call-ended"}, []string{"getCourseInfo"})
	reg := prometheus.NewRegistry()
	if err := Register(reg, m.Collectors()...); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m.ObserveEvent("function-call")
	m.ObserveEvent("function-call")
	m.ObserveEvent("")
	m.ObserveFunctionCall("getCourseInfo", true)
	m.ObserveFunctionCall("getCourseInfo", false)

	if got := testutil.ToFloat64(m.events.WithLabelValues("function-call")); got != 2 {
		t.Errorf("function-call events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.events.WithLabelValues("unknown")); got != 1 {
		t.Errorf("unknown events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.functionCalls.WithLabelValues("getCourseInfo", "fallback")); got != 1 {
		t.Errorf("fallback calls = %v, want 1", got)
	}
}

func TestWebhookMetricsBoundsLabels(t *testing.T) {
	m := NewWebhookMetrics([]string{"function-call"}, []string{"getCourseInfo"})
	reg := prometheus.NewRegistry()
	if err := Register(reg, m.Collectors()...); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for i := 0; i < 500; i++ {
		m.ObserveEvent(fmt.Sprintf("made-up-%d", i))
		m.ObserveFunctionCall(fmt.Sprintf("fn-%d", i), false)
	}
	m.ObserveEvent("function-call")
	m.ObserveFunctionCall("getCourseInfo", true)

	if n := testutil.CollectAndCount(m.events); n != 2 {
		t.Errorf("event series = %d, want 2", n)
	}
	if n := testutil.CollectAndCount(m.functionCalls); n != 2 {
		t.Errorf("function-call series = %d, want 2", n)
	}
	if got := testutil.ToFloat64(m.events.WithLabelValues("unknown")); got != 500 {
		t.Errorf("unknown events = %v, want 500", got)
	}
	if got := testutil.ToFloat64(m.functionCalls.WithLabelValues("unknown", "fallback")); got != 500 {
		t.Errorf("unknown function calls = %v, want 500", got)
	}
}

func TestNilWebhookMetrics(t *testing.T) {
	var m *WebhookMetrics
	m.ObserveEvent("x")
	m.ObserveFunctionCall("y", true)
}
