package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps the prometheus collectors for the decision engine.
type Metrics struct {
	registry *prometheus.Registry

	decisionsTotal     *prometheus.CounterVec
	cacheHitsTotal     *prometheus.CounterVec
	cacheMissesTotal   *prometheus.CounterVec
	quotaDenialsTotal  *prometheus.CounterVec
	rateLimitedTotal   *prometheus.CounterVec
	tenantLookupsTotal *prometheus.CounterVec
}

var metrics *Metrics

// Init initializes the prometheus metrics subsystem.
func Init(namespace string) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Authorization decisions by matched precedence tier and outcome",
			},
			[]string{"tier", "outcome"},
		),

		cacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Decision cache hits by cache name",
			},
			[]string{"cache"},
		),

		cacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Decision cache misses by cache name",
			},
			[]string{"cache"},
		),

		quotaDenialsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quota_denials_total",
				Help:      "Quota check denials by plan tier and feature",
			},
			[]string{"tier", "feature"},
		),

		rateLimitedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests denied by the rate limiter, by operation",
			},
			[]string{"operation"},
		),

		tenantLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tenant_lookups_total",
				Help:      "Tenant registry lookups by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.decisionsTotal,
		m.cacheHitsTotal,
		m.cacheMissesTotal,
		m.quotaDenialsTotal,
		m.rateLimitedTotal,
		m.tenantLookupsTotal,
	)

	metrics = m
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	if metrics == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})
}

func RecordDecision(tier string, granted bool) {
	if metrics == nil {
		return
	}
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	metrics.decisionsTotal.WithLabelValues(tier, outcome).Inc()
}

func RecordCacheHit(cache string) {
	if metrics == nil {
		return
	}
	metrics.cacheHitsTotal.WithLabelValues(cache).Inc()
}

func RecordCacheMiss(cache string) {
	if metrics == nil {
		return
	}
	metrics.cacheMissesTotal.WithLabelValues(cache).Inc()
}

func RecordQuotaDenial(tier, feature string) {
	if metrics == nil {
		return
	}
	metrics.quotaDenialsTotal.WithLabelValues(tier, feature).Inc()
}

func RecordRateLimited(operation string) {
	if metrics == nil {
		return
	}
	metrics.rateLimitedTotal.WithLabelValues(operation).Inc()
}

func RecordTenantLookup(outcome string) {
	if metrics == nil {
		return
	}
	metrics.tenantLookupsTotal.WithLabelValues(outcome).Inc()
}
