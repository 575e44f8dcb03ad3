package middleware

import (
	"net/http"

	"github.com/eurofurence/reg-paypal-adapter/internal/metrics"
)

// statusRecorder remembers the status code written to the response, so the
// metrics middleware can count requests by outcome.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestMetricsHandler(next http.Handler) func(w http.ResponseWriter, r *http.Request) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		metrics.CountInboundRequest(r.Method, recorder.status)
	}
	return handlerFunc
}

func RequestMetricsMiddleware() func(http.Handler) http.Handler {
	middlewareCreator := func(next http.Handler) http.Handler {
		return http.HandlerFunc(requestMetricsHandler(next))
	}
	return middlewareCreator
}
