package metrics

import (
	"strconv"
	"sync"
	"time"

	"nft-marketplace/internal/marketerrors"

	"github.com/prometheus/client_golang/prometheus"
)

// MarketMetrics tracks engine transitions and HTTP traffic
type MarketMetrics struct {
	operations      *prometheus.CounterVec
	finalized       prometheus.Counter
	borrowed        prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

var (
	marketOnce     sync.Once
	marketRegistry *MarketMetrics
)

// Market returns the process-wide metrics, registering them on first use.
func Market() *MarketMetrics {
	marketOnce.Do(func() {
		marketRegistry = &MarketMetrics{
			operations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "market_operations_total",
				Help: "Engine operations by name and result kind.",
			}, []string{"operation", "result"}),
			finalized: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "market_auctions_finalized_total",
				Help: "Auctions whose asset transfer committed.",
			}),
			borrowed: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "market_lendings_borrowed_total",
				Help: "Lending records taken by a borrower.",
			}),
			requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "market_http_request_duration_seconds",
				Help:    "HTTP request latency by method, route and status.",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "route", "status"}),
		}
		prometheus.MustRegister(
			marketRegistry.operations,
			marketRegistry.finalized,
			marketRegistry.borrowed,
			marketRegistry.requestDuration,
		)
	})
	return marketRegistry
}

// ObserveOperation counts one engine call; a nil error counts as "ok".
func (m *MarketMetrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = marketerrors.Kind(err)
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *MarketMetrics) ObserveFinalized() {
	if m == nil {
		return
	}
	m.finalized.Inc()
}

func (m *MarketMetrics) ObserveBorrowed() {
	if m == nil {
		return
	}
	m.borrowed.Inc()
}

// ObserveRequest records the latency of one HTTP request
func (m *MarketMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
