package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	redisadapter "github.com/heartmarshall/codeclub-backend/internal/adapter/redis"
	"github.com/heartmarshall/codeclub-backend/internal/auth"
	"github.com/heartmarshall/codeclub-backend/internal/config"
	"github.com/heartmarshall/codeclub-backend/internal/metrics"
	"github.com/heartmarshall/codeclub-backend/internal/service/attendance"
	"github.com/heartmarshall/codeclub-backend/internal/service/registration"
	"github.com/heartmarshall/codeclub-backend/internal/service/report"
	"github.com/heartmarshall/codeclub-backend/internal/transport/middleware"
	"github.com/heartmarshall/codeclub-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens storage and
// the optional cache, wires services into the HTTP API and serves until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, err := openLedgers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.close()

	rc, err := redisadapter.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rc != nil {
		defer rc.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	cache, cachePing := summaryCacheFor(rc, cfg.Redis.SummaryTTL)
	if cache != nil {
		logger.Info("summary cache enabled", slog.Duration("ttl", cfg.Redis.SummaryTTL))
	}

	regSvc := registration.NewService(logger, store.registrations, cache, m)
	attSvc := attendance.NewService(logger, store.attendance, store.registrations, store.tx, cache, m)
	reportSvc := report.NewService(logger, store.registrations, store.attendance, cache)
	health := rest.NewHealthHandler(rest.PingFunc(store.ping), cachePing, BuildVersion())

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.DevTokenTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Registrations: rest.NewRegistrationHandler(regSvc, cfg.CheckIn, logger),
		Attendance:    rest.NewAttendanceHandler(attSvc, logger),
		Reports:       rest.NewReportHandler(reportSvc, logger),
		Health:        health,
		Auth:          middleware.Auth(jwtManager, cfg.Auth.IsAdmin),
		RateLimit:     limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		Metrics:       m,
		Config:        *cfg,
		Logger:        logger,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// summaryCacheFor returns the report cache and its health pinger, or nil
// interfaces (never typed nils) when redis is disabled.
func summaryCacheFor(rc *redisadapter.Client, ttl time.Duration) (summaryCache, interface{ Ping(ctx context.Context) error }) {
	if rc == nil {
		return nil, nil
	}
	return redisadapter.NewSummaryCache(rc, ttl), rest.PingFunc(rc.Health)
}

// serve runs srv until ctx is cancelled or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
