package admin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pn_tool",
			Subsystem: "admin",
			Name:      "requests_total",
			Help:      "Upstream admin API calls by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
)

func observe(endpoint string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case IsTimeout(err):
		outcome = "timeout"
	case IsNotFound(err):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	upstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}
