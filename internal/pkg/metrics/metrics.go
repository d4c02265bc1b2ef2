// Package metrics exposes counselor activity to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter is anything that can report how many records it holds.
type Counter interface {
	Count() int
}

// ActiveCallsProvider exposes the number of calls in progress.
type ActiveCallsProvider interface {
	ActiveCount() int
}

// Collector is a prometheus.Collector that reads store sizes at scrape time.
type Collector struct {
	courses     Counter
	callLogs    Counter
	activeCalls ActiveCallsProvider
	startTime   time.Time

	coursesDesc     *prometheus.Desc
	callLogsDesc    *prometheus.Desc
	activeCallsDesc *prometheus.Desc
	uptimeDesc      *prometheus.Desc
}

// NewCollector creates a new metrics collector. Any provider may be nil.
func NewCollector(courses, callLogs Counter, activeCalls ActiveCallsProvider, startTime time.Time) *Collector {
	return &Collector{
		courses:     courses,
		callLogs:    callLogs,
		activeCalls: activeCalls,
		startTime:   startTime,

		coursesDesc: prometheus.NewDesc(
			"counselor_catalog_courses",
			"Number of courses in the catalog",
			nil, nil,
		),
		callLogsDesc: prometheus.NewDesc(
			"counselor_voice_call_logs",
			"Number of completed voice calls recorded",
			nil, nil,
		),
		activeCallsDesc: prometheus.NewDesc(
			"counselor_active_calls",
			"Number of voice calls currently connecting or in progress",
			nil, nil,
		),
		uptimeDesc: prometheus.NewDesc(
			"counselor_uptime_seconds",
			"Seconds since the process started",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.coursesDesc
	ch <- c.callLogsDesc
	ch <- c.activeCallsDesc
	ch <- c.uptimeDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.courses != nil {
		ch <- prometheus.MustNewConstMetric(c.coursesDesc, prometheus.GaugeValue, float64(c.courses.Count()))
	}
	if c.callLogs != nil {
		ch <- prometheus.MustNewConstMetric(c.callLogsDesc, prometheus.CounterValue, float64(c.callLogs.Count()))
	}
	if c.activeCalls != nil {
		ch <- prometheus.MustNewConstMetric(c.activeCallsDesc, prometheus.GaugeValue, float64(c.activeCalls.ActiveCount()))
	}
	ch <- prometheus.MustNewConstMetric(c.uptimeDesc, prometheus.GaugeValue, time.Since(c.startTime).Seconds())
}

// unknownLabel replaces label values outside the known set.
const unknownLabel = "unknown"

// WebhookMetrics counts what the voice service sends us. Label values are
// limited to the event types and function names it was built with.
type WebhookMetrics struct {
	events        *prometheus.CounterVec
	functionCalls *prometheus.CounterVec

	eventTypes map[string]struct{}
	functions  map[string]struct{}
}

// NewWebhookMetrics creates the webhook counters. They are not registered.
func NewWebhookMetrics(eventTypes, functions []string) *WebhookMetrics {
	return &WebhookMetrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counselor_webhook_events_total",
			Help: "Webhook events received from the voice service, by type",
		}, []string{"type"}),
		functionCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counselor_function_calls_total",
			Help: "Assistant function calls handled, by function and outcome",
		}, []string{"function", "outcome"}),
		eventTypes: labelSet(eventTypes),
		functions:  labelSet(functions),
	}
}

func labelSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func knownOr(set map[string]struct{}, v string) string {
	if _, ok := set[v]; ok {
		return v
	}
	return unknownLabel
}

// ObserveEvent counts one webhook event of eventType.
func (m *WebhookMetrics) ObserveEvent(eventType string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(knownOr(m.eventTypes, eventType)).Inc()
}

// ObserveFunctionCall counts one function call; found reports whether the
// catalog had an answer.
func (m *WebhookMetrics) ObserveFunctionCall(name string, found bool) {
	if m == nil {
		return
	}
	outcome := "fallback"
	if found {
		outcome = "answered"
	}
	m.functionCalls.WithLabelValues(knownOr(m.functions, name), outcome).Inc()
}

// Collectors returns the counters for registration.
func (m *WebhookMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.events, m.functionCalls}
}

// Register registers every collector with reg.
func Register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
