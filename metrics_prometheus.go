package primeasn

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements MetricsCollector with client_golang metrics
// registered on its own registry.
type PrometheusCollector struct {
	registry *prometheus.Registry

	opLatency  *prometheus.HistogramVec
	fetchBytes *prometheus.CounterVec
	lines      *prometheus.CounterVec
	candidates prometheus.Counter
	primes     prometheus.Counter
	bound      prometheus.Gauge
	errors     *prometheus.CounterVec
}

// NewPrometheusCollector creates a collector backed by a fresh registry.
func NewPrometheusCollector() *PrometheusCollector {
	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "primeasn_operation_latency_seconds",
			Help:    "Latency of pipeline operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		fetchBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primeasn_fetch_bytes_total",
			Help: "Raw bytes read per source",
		}, []string{"source"}),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primeasn_parsed_lines_total",
			Help: "Dataset lines consumed per source",
		}, []string{"source"}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primeasn_candidates_total",
			Help: "Candidate AS numbers selected from all sources",
		}),
		primes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primeasn_primes_total",
			Help: "Candidates found to be prime",
		}),
		bound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "primeasn_sieve_bound",
			Help: "Upper bound of the last sieve built",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primeasn_errors_total",
			Help: "Failed operations",
		}, []string{"op"}),
	}

	p.registry.MustRegister(p.opLatency, p.fetchBytes, p.lines, p.candidates, p.primes, p.bound, p.errors)
	return p
}

// Registry returns the registry the metrics live on.
func (p *PrometheusCollector) Registry() *prometheus.Registry {
	return p.registry
}

// WriteToTextfile writes the current metrics in the node-exporter textfile format.
func (p *PrometheusCollector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordFetch implements MetricsCollector.
func (p *PrometheusCollector) RecordFetch(source string, bytes int64, d time.Duration, err error) {
	p.opLatency.WithLabelValues("fetch", status(err)).Observe(d.Seconds())
	p.fetchBytes.WithLabelValues(source).Add(float64(bytes))
	if err != nil {
		p.errors.WithLabelValues("fetch").Inc()
	}
}

// RecordParse implements MetricsCollector.
func (p *PrometheusCollector) RecordParse(source string, lines, candidates int, err error) {
	p.lines.WithLabelValues(source).Add(float64(lines))
	if err != nil {
		p.errors.WithLabelValues("parse").Inc()
		return
	}
	p.candidates.Add(float64(candidates))
}

// RecordSieve implements MetricsCollector.
func (p *PrometheusCollector) RecordSieve(bound int, d time.Duration, err error) {
	p.opLatency.WithLabelValues("sieve", status(err)).Observe(d.Seconds())
	if err != nil {
		p.errors.WithLabelValues("sieve").Inc()
		return
	}
	p.bound.Set(float64(bound))
}

// RecordFilter implements MetricsCollector.
func (p *PrometheusCollector) RecordFilter(candidates, primes int, err error) {
	if err != nil {
		p.errors.WithLabelValues("filter").Inc()
		return
	}
	p.primes.Add(float64(primes))
}
