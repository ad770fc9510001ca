// Package metrics exposes the auth flow counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"gestor/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gestor"

// Collector implements service.AuthMetrics on Prometheus metrics.
type Collector struct {
	logins           *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	profilesCreated  prometheus.Counter
	limiterRejection prometheus.Counter
}

var _ service.AuthMetrics = (*Collector)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates the auth metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "auth_provider_request_duration_seconds",
			Help:      "Latency of auth provider calls by operation and result.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "result"}),
		profilesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_created_total",
			Help:      "Profiles inserted by reconciliation or registration.",
		}),
		limiterRejection: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_rate_limited_total",
			Help:      "Login attempts rejected by the attempt limiter.",
		}),
	}

	reg.MustRegister(c.logins, c.providerLatency, c.profilesCreated, c.limiterRejection)

	return c
}

func (c *Collector) ObserveLogin(method, outcome string) {
	c.logins.WithLabelValues(method, outcome).Inc()
}

// ObserveProviderCall records the call latency labelled with "ok" or the provider error kind.
func (c *Collector) ObserveProviderCall(operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		if kind, ok := service.ProviderErrorKindOf(err); ok {
			result = kind.String()
		}
	}
	c.providerLatency.WithLabelValues(operation, result).Observe(duration.Seconds())
}

func (c *Collector) ObserveProfileCreated() {
	c.profilesCreated.Inc()
}

func (c *Collector) ObserveRateLimited() {
	c.limiterRejection.Inc()
}

// Handler serves the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
