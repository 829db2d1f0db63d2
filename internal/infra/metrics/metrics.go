// Package metrics exposes flow outcomes as Prometheus metrics.
package metrics

import (
	"net/http"

	"firelink/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "firelink"

// Collector records flow outcomes into Prometheus metrics.
type Collector struct {
	linkOutcomes        *prometheus.CounterVec
	passwordAttempts    prometheus.Histogram
	redirectCompletions *prometheus.CounterVec
	rollbacks           *prometheus.CounterVec
}

var _ service.FlowMetrics = (*Collector)(nil)

// NewRegistry creates a registry with the process and Go runtime collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		linkOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_outcomes_total",
			Help:      "Finished account-linking attempts by outcome.",
		}, []string{"outcome"}),
		passwordAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "link_password_attempts",
			Help:      "Password attempts used by one linking attempt.",
			Buckets:   []float64{0, 1, 2, 3, 5},
		}),
		redirectCompletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirect_completions_total",
			Help:      "Processed provider callbacks by outcome.",
		}, []string{"outcome"}),
		rollbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_rollbacks_total",
			Help:      "Accounts deleted after an unintended sign-up.",
		}, []string{"reason"}),
	}

	reg.MustRegister(c.linkOutcomes, c.passwordAttempts, c.redirectCompletions, c.rollbacks)

	return c
}

// NewFlowMetrics registers the collector with reg for injection as service.FlowMetrics.
func NewFlowMetrics(reg *prometheus.Registry) service.FlowMetrics {
	return NewCollector(reg)
}

func (c *Collector) LinkOutcome(outcome string) {
	c.linkOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) PasswordAttempts(attempts int) {
	c.passwordAttempts.Observe(float64(attempts))
}

func (c *Collector) RedirectCompletion(outcome string) {
	c.redirectCompletions.WithLabelValues(outcome).Inc()
}

func (c *Collector) Rollback(reason string) {
	c.rollbacks.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) LinkOutcome(string)        {}
func (Nop) PasswordAttempts(int)      {}
func (Nop) RedirectCompletion(string) {}
func (Nop) Rollback(string)           {}
