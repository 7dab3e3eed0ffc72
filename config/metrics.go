package config

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Lukazoid/log4rs/errors"
)

// Metrics tracks configuration load outcomes. Parse itself stays pure;
// only the Load entry points observe metrics.
type Metrics struct {
	// LoadsTotal counts configuration loads by format and outcome:
	// "ok" (no errors), "partial" (recoverable errors), "fatal".
	LoadsTotal *prometheus.CounterVec
	// ComponentErrorsTotal counts recoverable errors by class.
	ComponentErrorsTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "log4rs",
				Subsystem: "config",
				Name:      "loads_total",
				Help:      "Total configuration loads by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		ComponentErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "log4rs",
				Subsystem: "config",
				Name:      "component_errors_total",
				Help:      "Total recoverable configuration errors by class",
			},
			[]string{"class"},
		),
	}
}

// Register registers all metrics with the given registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.LoadsTotal, m.ComponentErrorsTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// observeLoad records the outcome of one load.
func (m *Metrics) observeLoad(format Format, cfg *Config, err error) {
	switch {
	case err != nil:
		m.LoadsTotal.WithLabelValues(format.String(), "fatal").Inc()
	case len(cfg.Errors) > 0:
		m.LoadsTotal.WithLabelValues(format.String(), "partial").Inc()
	default:
		m.LoadsTotal.WithLabelValues(format.String(), "ok").Inc()
	}
	if cfg != nil {
		for _, e := range cfg.Errors {
			m.ComponentErrorsTotal.WithLabelValues(errors.Classify(e).String()).Inc()
		}
	}
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level Metrics instance used by Load.
// Host programs expose it by registering it with their prometheus
// registerer; unregistered, it is a cheap no-op sink.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics()
	})
	return defaultMetrics
}
