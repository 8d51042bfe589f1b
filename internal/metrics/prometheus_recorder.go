package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	loads              *prom.CounterVec
	loadDuration       prom.Histogram
	headerCreated      prom.Counter
	validationFailures prom.Counter
	configWrites       *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "loads_total",
			Help:      "Configuration loads by result",
		}, []string{"result"}),
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteconf",
			Name:      "load_duration_seconds",
			Help:      "Duration of configuration loads including header I/O",
			Buckets:   prom.DefBuckets,
		}),
		headerCreated: prom.NewCounter(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "header_created_total",
			Help:      "Times the header snippet was missing and created empty",
		}),
		validationFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "validation_failures_total",
			Help:      "Configuration loads rejected by validation",
		}),
		configWrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "config_writes_total",
			Help:      "Engine config files written by format",
		}, []string{"format"}),
	}
	reg.MustRegister(pr.loads, pr.loadDuration, pr.headerCreated, pr.validationFailures, pr.configWrites)
	return pr
}

func (p *PrometheusRecorder) IncLoad(result ResultLabel) {
	if p == nil || p.loads == nil {
		return
	}
	p.loads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil || p.loadDuration == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHeaderCreated() {
	if p == nil || p.headerCreated == nil {
		return
	}
	p.headerCreated.Inc()
}

func (p *PrometheusRecorder) IncValidationFailure() {
	if p == nil || p.validationFailures == nil {
		return
	}
	p.validationFailures.Inc()
}

func (p *PrometheusRecorder) IncConfigWrite(format string) {
	if p == nil || p.configWrites == nil {
		return
	}
	p.configWrites.WithLabelValues(format).Inc()
}
