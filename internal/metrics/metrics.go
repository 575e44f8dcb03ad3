package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	downstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paypaladapter",
			Name:      "downstream_requests_total",
			Help:      "Total requests issued to the payment provider per client",
		},
		[]string{"client", "method", "status"},
	)

	downstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "paypaladapter",
			Name:      "downstream_request_duration_seconds",
			Help:      "Duration of requests issued to the payment provider per client",
			Buckets: []float64{
				0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10,
			},
		},
		[]string{"client", "method"},
	)

	inboundRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paypaladapter",
			Name:      "requests_total",
			Help:      "Total inbound requests per method and status",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(downstreamRequestsTotal, downstreamRequestDuration, inboundRequestsTotal)
}

func ObserveDownstream(client string, method string, status int, seconds float64) {
	downstreamRequestsTotal.WithLabelValues(client, method, strconv.Itoa(status)).Inc()
	downstreamRequestDuration.WithLabelValues(client, method).Observe(seconds)
}

func CountInboundRequest(method string, status int) {
	inboundRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
