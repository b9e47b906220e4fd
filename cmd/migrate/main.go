// Command migrate applies the embedded SQL migrations to the configured
// storage backend.
//
// Usage:
//
//	migrate up|down|status
//
// The driver and connection come from the regular configuration
// (STORAGE_DRIVER, DATABASE_DSN, STORAGE_SQLITE_PATH).
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/codeclub-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/codeclub-backend/internal/app"
	"github.com/heartmarshall/codeclub-backend/internal/config"
	"github.com/heartmarshall/codeclub-backend/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--timeout=5m] up|down|status")
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, command, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("driver", cfg.Storage.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	dialect, fsys, err := migrations.For(cfg.Storage.Driver)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			logResult(logger, r)
		}
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))

	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			logResult(logger, result)
		}
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return db, nil
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.Storage.SQLitePath)
	default:
		return nil, fmt.Errorf("driver %q has no schema to migrate", cfg.Storage.Driver)
	}
}

func logResult(logger *slog.Logger, r *goose.MigrationResult) {
	attrs := []any{
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Source != nil {
		attrs = append(attrs,
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
		)
	}
	if r.Error != nil {
		attrs = append(attrs, slog.String("error", r.Error.Error()))
		logger.Error("migration failed", attrs...)
		return
	}
	logger.Info("migration", attrs...)
}
