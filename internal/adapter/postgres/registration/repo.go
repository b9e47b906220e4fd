// Package registration implements the registration ledger on PostgreSQL.
// Uniqueness of active registrations is enforced by the
// registrations_active_uniq partial index.
package registration

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/codeclub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/codeclub-backend/internal/adapter/ledgersql"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const entity = "registration"

// Repo provides registration persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	stmt ledgersql.Statements
}

// New creates a new registration repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, stmt: ledgersql.Postgres()}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new registration. Returns domain.ErrAlreadyRegistered if
// the user already holds an active registration for the event.
func (r *Repo) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	query, args, err := r.stmt.InsertRegistration(reg)
	if err != nil {
		return nil, fmt.Errorf("build insert registration: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, pairKey(reg.UserID, reg.EventID), domain.ErrAlreadyRegistered)
	}

	created := *reg
	return &created, nil
}

// Cancel flips the active registration to cancelled in one conditional update.
// Returns domain.ErrNotFound if there is no active registration.
func (r *Repo) Cancel(ctx context.Context, userID, eventID string) error {
	query, args, err := r.stmt.CancelRegistration(userID, eventID)
	if err != nil {
		return fmt.Errorf("build cancel registration: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, pairKey(userID, eventID), nil)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, pairKey(userID, eventID), domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ExistsActive reports whether the user holds an active registration for the event.
func (r *Repo) ExistsActive(ctx context.Context, userID, eventID string) (bool, error) {
	query, args, err := r.stmt.CountActiveRegistrations(userID, eventID)
	if err != nil {
		return false, fmt.Errorf("build count registrations: %w", err)
	}

	var n int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, entity, pairKey(userID, eventID), nil)
	}

	return n > 0, nil
}

// ListActiveByUser returns the user's active registrations, oldest first.
func (r *Repo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, "user "+userID)
}

// ListActiveByEvent returns the event's active registrations, oldest first.
func (r *Repo) ListActiveByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return r.list(ctx, sq.Eq{"event_id": eventID}, "event "+eventID)
}

// ListActive returns every active registration.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Registration, error) {
	return r.list(ctx, nil, "all")
}

// GetActiveByCode returns the active registration holding a check-in code.
// Inside a transaction the row stays locked until commit.
func (r *Repo) GetActiveByCode(ctx context.Context, code string) (*domain.Registration, error) {
	query, args, err := r.stmt.ActiveRegistrationByCode(code, true)
	if err != nil {
		return nil, fmt.Errorf("build registration by code: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	reg, err := ledgersql.ScanRegistration(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, "code", nil)
	}

	return &reg, nil
}

func (r *Repo) list(ctx context.Context, filter sq.Eq, key string) ([]domain.Registration, error) {
	query, args, err := r.stmt.ActiveRegistrations(filter)
	if err != nil {
		return nil, fmt.Errorf("build list registrations: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, key, nil)
	}
	defer rows.Close()

	result := make([]domain.Registration, 0)
	for rows.Next() {
		reg, err := ledgersql.ScanRegistration(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, key, nil)
		}
		result = append(result, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, key, nil)
	}

	return result, nil
}

func pairKey(userID, eventID string) string {
	return userID + "/" + eventID
}
