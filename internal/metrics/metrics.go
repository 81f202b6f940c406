package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estate_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Domain counters, incremented by the services and nightly jobs
	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estate_booking_conflicts_total",
			Help: "Rental create/update attempts rejected for overlapping dates",
		},
	)

	PaymentsMarkedOverdue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estate_payments_marked_overdue_total",
			Help: "Scheduled payments flipped to overdue by the nightly job",
		},
	)

	RentalsNearExpiration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estate_rentals_near_expiration",
			Help: "Rentals inside the renewal window as of the last nightly scan",
		},
	)

	OnlinePaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_online_payments_total",
			Help: "Razorpay transactions by final status",
		},
		[]string{"status"},
	)
)
