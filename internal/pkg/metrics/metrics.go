package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartwash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartwash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartwash_bookings_total",
			Help: "Total number of bookings by final status",
		},
		[]string{"status"},
	)

	RechargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartwash_recharges_total",
			Help: "Total number of recharge requests by decision",
		},
		[]string{"status"},
	)

	OTPVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartwash_otp_verifications_total",
			Help: "Total number of OTP verification attempts",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordRecharge(status string) {
	RechargesTotal.WithLabelValues(status).Inc()
}

func RecordOTPVerification(result string) {
	OTPVerificationsTotal.WithLabelValues(result).Inc()
}
