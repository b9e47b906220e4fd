// Package metrics defines the Prometheus instruments exported by the service.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// Result labels for ledger operations.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics holds ledger and HTTP instruments.
type Metrics struct {
	// Registration ledger operations by op and result
	RegistrationOps *prometheus.CounterVec

	// Attendance ledger operations by op and result
	AttendanceOps *prometheus.CounterVec

	// HTTP latency by method, route pattern and status
	HTTPDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RegistrationOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codeclub_registration_ops_total",
			Help: "Registration ledger operations by operation and result",
		}, []string{"op", "result"}),

		AttendanceOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codeclub_attendance_ops_total",
			Help: "Attendance ledger operations by operation and result",
		}, []string{"op", "result"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codeclub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// Result classifies an operation error into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrAlreadyRegistered), errors.Is(err, domain.ErrAlreadyAttended):
		return ResultConflict
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrValidation):
		return ResultInvalid
	default:
		return ResultError
	}
}

// RecordRegistration counts a registration ledger operation.
func (m *Metrics) RecordRegistration(op string, err error) {
	if m != nil {
		m.RegistrationOps.WithLabelValues(op, Result(err)).Inc()
	}
}

// RecordAttendance counts an attendance ledger operation.
func (m *Metrics) RecordAttendance(op string, err error) {
	if m != nil {
		m.AttendanceOps.WithLabelValues(op, Result(err)).Inc()
	}
}

// ObserveHTTP records one HTTP request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
