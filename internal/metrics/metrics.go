package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPaymentsRecordedTotal returns a Prometheus counter for successfully recorded payments
func NewPaymentsRecordedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payments_recorded_total",
		Help: "Total number of successfully recorded payments",
	})
}

// NewPaymentsReconciledTotal returns a Prometheus counter for pending payments finished by the reconciler
func NewPaymentsReconciledTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payments_reconciled_total",
		Help: "Total number of pending payments finished by the reconciler",
	})
}
