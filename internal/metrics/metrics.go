package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelease",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelease",
			Name:      "bookings_created_total",
			Help:      "Bookings created by inventory variant.",
		},
		[]string{"type"},
	)

	settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelease",
			Name:      "settlements_total",
			Help:      "Payment settlement attempts by result.",
		},
		[]string{"result"},
	)

	payoutsScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travelease",
			Name:      "payouts_scheduled_total",
			Help:      "Payouts scheduled by settlement.",
		},
	)

	payoutsSettled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travelease",
			Name:      "payouts_settled_total",
			Help:      "Payouts flipped to completed by provider withdrawals.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, settlements, payoutsScheduled, payoutsSettled)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncBookingCreated(kind string) {
	bookingsCreated.WithLabelValues(kind).Inc()
}

func IncSettlement(result string) {
	settlements.WithLabelValues(result).Inc()
}

func AddPayoutsScheduled(n int) {
	payoutsScheduled.Add(float64(n))
}

func AddPayoutsSettled(n int) {
	payoutsSettled.Add(float64(n))
}
