package monitor

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestLabels describe one BlindPay API round trip.
type RequestLabels struct {
	Method string
	Status string
	Host   string
}

func (l RequestLabels) ToMap() map[string]string {
	return map[string]string{
		"method": l.Method,
		"status": l.Status,
		"host":   l.Host,
	}
}

var requestLabelNames = []string{"method", "status", "host"}

type prometheusMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

func newPrometheusMetrics(registerer prometheus.Registerer) (*prometheusMetrics, error) {
	m := &prometheusMetrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blindpay", Subsystem: "api", Name: "request_duration_seconds",
			Help: "A histogram of the BlindPay API request durations",
		},
			requestLabelNames,
		),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blindpay", Subsystem: "api", Name: "requests_total",
			Help: "A counter of the BlindPay API requests",
		},
			requestLabelNames,
		),
	}

	for _, collector := range []prometheus.Collector{m.requestDuration, m.requestsTotal} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("registering prometheus collector: %w", err)
		}
	}

	return m, nil
}

func (m *prometheusMetrics) observeRequest(duration time.Duration, labels RequestLabels) {
	m.requestDuration.With(labels.ToMap()).Observe(duration.Seconds())
	m.requestsTotal.With(labels.ToMap()).Inc()
}
