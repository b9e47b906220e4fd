package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// MapError converts pgx/pgconn errors to domain errors.
// A unique violation becomes conflict (the caller's domain conflict error).
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
// Anything unrecognised is wrapped with domain.ErrStorage.
func MapError(err error, entity, key string, conflict error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if conflict != nil {
				return fmt.Errorf("%s %s: %w", entity, key, conflict)
			}
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorage, err)
}
