package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	bookinfoOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_manager",
		Name:      "bookinfo_operations_total",
		Help:      "ISBN repository operations by operation and result",
	}, []string{"op", "result"})
	metaboxOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_manager",
		Name:      "isbn_form_outcomes_total",
		Help:      "ISBN form submissions by outcome",
	}, []string{"outcome"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_manager",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status code",
	}, []string{"method", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "book_manager",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(bookinfoOps, metaboxOutcomes, httpRequests, httpDuration)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookinfoOp(op, result string) { bookinfoOps.WithLabelValues(op, result).Inc() }

func IncFormOutcome(outcome string) { metaboxOutcomes.WithLabelValues(outcome).Inc() }

func ObserveHTTPRequest(method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(d.Seconds())
}
