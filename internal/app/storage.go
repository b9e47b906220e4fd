package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/codeclub-backend/internal/adapter/memory"
	"github.com/heartmarshall/codeclub-backend/internal/adapter/postgres"
	pgattendance "github.com/heartmarshall/codeclub-backend/internal/adapter/postgres/attendance"
	pgregistration "github.com/heartmarshall/codeclub-backend/internal/adapter/postgres/registration"
	"github.com/heartmarshall/codeclub-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/codeclub-backend/internal/config"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

type registrationStore interface {
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
	ExistsActive(ctx context.Context, userID, eventID string) (bool, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	ListActiveByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
	ListActive(ctx context.Context) ([]domain.Registration, error)
	GetActiveByCode(ctx context.Context, code string) (*domain.Registration, error)
}

type attendanceStore interface {
	Create(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error)
	CheckOut(ctx context.Context, userID, eventID string, at time.Time) error
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Attendance, error)
	ListAll(ctx context.Context) ([]domain.Attendance, error)
	ListByUserAndEvents(ctx context.Context, userID string, eventIDs []string) ([]domain.Attendance, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// summaryCache is read by reporting and invalidated by both ledgers.
type summaryCache interface {
	GetSummaries(ctx context.Context) ([]domain.EventAttendanceSummary, int64, bool, error)
	SetSummaries(ctx context.Context, version int64, summaries []domain.EventAttendanceSummary) error
	InvalidateSummaries(ctx context.Context) error
}

// ledgers is the storage backend selected by config.StorageConfig.Driver.
type ledgers struct {
	registrations registrationStore
	attendance    attendanceStore
	tx            txRunner
	ping          func(ctx context.Context) error
	close         func()
}

// openLedgers connects the configured backend. PostgreSQL schemas are
// managed by cmd/migrate; SQLite files are migrated on open.
func openLedgers(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ledgers, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Info("storage ready", slog.String("driver", config.DriverPostgres))
		return &ledgers{
			registrations: pgregistration.New(pool),
			attendance:    pgattendance.New(pool),
			tx:            postgres.NewTxManager(pool),
			ping:          pool.Ping,
			close:         pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		logger.Info("storage ready",
			slog.String("driver", config.DriverSQLite),
			slog.String("path", cfg.Storage.SQLitePath),
		)
		return &ledgers{
			registrations: sqlite.NewRegistrationRepo(db),
			attendance:    sqlite.NewAttendanceRepo(db),
			tx:            sqlite.NewTxManager(db),
			ping:          db.PingContext,
			close:         func() { db.Close() },
		}, nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		return &ledgers{
			registrations: memory.NewRegistrationStore(),
			attendance:    memory.NewAttendanceStore(),
			tx:            memory.NewTxManager(),
			ping:          memory.Ping,
			close:         func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
