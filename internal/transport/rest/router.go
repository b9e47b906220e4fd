package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/codeclub-backend/internal/config"
	"github.com/heartmarshall/codeclub-backend/internal/metrics"
	"github.com/heartmarshall/codeclub-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Registrations *RegistrationHandler
	Attendance    *AttendanceHandler
	Reports       *ReportHandler
	Health        *HealthHandler

	// Auth verifies bearer tokens and stores the caller identity.
	Auth middleware.Middleware
	// RateLimit is applied to /api. Nil disables limiting.
	RateLimit middleware.Middleware
	// MetricsHandler serves the Prometheus scrape endpoint. Nil disables it.
	MetricsHandler http.Handler

	Metrics *metrics.Metrics
	Config  config.Config
	Logger  *slog.Logger
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.Config.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, d.Config.Metrics.Path, d.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}
		r.Use(d.Auth, middleware.RequireIdentity)

		r.Route("/events/{eventID}", func(r chi.Router) {
			r.Post("/registration", d.Registrations.Register)
			r.Delete("/registration", d.Registrations.Cancel)
			r.Get("/registration", d.Registrations.Status)
			r.Get("/registration/qr", d.Registrations.QRCode)

			r.Post("/attendance", d.Attendance.CheckIn)
			r.Post("/attendance/checkout", d.Attendance.CheckOut)
			r.Get("/attendance", d.Attendance.Status)
		})

		r.Route("/me", func(r chi.Router) {
			r.Get("/registrations", d.Registrations.ListMine)
			r.Get("/attendance", d.Attendance.ListMine)
			r.Get("/stats", d.Reports.MyStats)
			r.Get("/history", d.Reports.MyHistory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)

			r.Get("/events/attendance", d.Reports.EventSummaries)
			r.Get("/events/{eventID}/attendance", d.Attendance.ListForEvent)
			r.Get("/events/{eventID}/registrations", d.Registrations.ListForEvent)
			r.Post("/events/{eventID}/attendance", d.Attendance.Mark)
			r.Post("/events/{eventID}/attendance/{userID}/checkout", d.Attendance.CheckOutUser)
			r.Post("/checkin", d.Attendance.CheckInByCode)
			r.Get("/users/{userID}/stats", d.Reports.UserStats)
		})
	})

	return r
}
