// Package prometheus exposes service metrics with the Prometheus client.
package prometheus

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/articlecheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "articlecheck"

// Completion outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CompletionsTotal    *prometheus.CounterVec
	CompletionDuration  *prometheus.HistogramVec
	AnalysesTotal       *prometheus.CounterVec
	AnalysisScore       *prometheus.HistogramVec
}

// NewMetrics creates a registry with Go runtime collectors and all service
// metrics registered on it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
		},
		[]string{"method", "route"},
	)

	m.CompletionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "completions_total",
			Help:      "Total number of language model completions",
		},
		[]string{"analysis", "outcome"},
	)

	m.CompletionDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "completion_duration_seconds",
			Help:      "Language model completion duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2min
		},
		[]string{"analysis"},
	)

	m.AnalysesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "analyses_total",
			Help:      "Total number of article analyses by result code",
		},
		[]string{"code"},
	)

	m.AnalysisScore = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "analysis_score",
			Help:      "Distribution of analysis scores",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"analysis"},
	)

	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Ensure InstrumentedCompleter implements articlecheck.Completer at compile time.
var _ articlecheck.Completer = (*InstrumentedCompleter)(nil)

// InstrumentedCompleter counts and times completions for one analysis.
type InstrumentedCompleter struct {
	next     articlecheck.Completer
	metrics  *Metrics
	analysis string
}

// InstrumentCompleter wraps next so its calls are recorded under the
// given analysis label.
func (m *Metrics) InstrumentCompleter(analysis string, next articlecheck.Completer) *InstrumentedCompleter {
	return &InstrumentedCompleter{next: next, metrics: m, analysis: analysis}
}

// Complete delegates to the wrapped completer and records the call.
func (c *InstrumentedCompleter) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (string, error) {
	begin := time.Now()
	reply, err := c.next.Complete(ctx, req)
	c.metrics.CompletionDuration.WithLabelValues(c.analysis).Observe(time.Since(begin).Seconds())

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	c.metrics.CompletionsTotal.WithLabelValues(c.analysis, outcome).Inc()
	return reply, err
}

// Ensure InstrumentedService implements articlecheck.AnalysisService at compile time.
var _ articlecheck.AnalysisService = (*InstrumentedService)(nil)

// InstrumentedService records analysis outcomes and scores.
type InstrumentedService struct {
	next    articlecheck.AnalysisService
	metrics *Metrics
}

// InstrumentService wraps next so each analysis is recorded.
func (m *Metrics) InstrumentService(next articlecheck.AnalysisService) *InstrumentedService {
	return &InstrumentedService{next: next, metrics: m}
}

// Analyze delegates to the wrapped service and records the result.
func (s *InstrumentedService) Analyze(ctx context.Context, url string) (*articlecheck.AnalysisResult, error) {
	result, err := s.next.Analyze(ctx, url)
	if err != nil {
		s.metrics.AnalysesTotal.WithLabelValues(articlecheck.ErrorCode(err)).Inc()
		return nil, err
	}
	s.metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	s.metrics.AnalysisScore.WithLabelValues("seo").Observe(float64(result.SEO.Score))
	s.metrics.AnalysisScore.WithLabelValues("factual").Observe(float64(result.Factual.Score))
	return result, nil
}
