package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/codeclub-backend/internal/adapter/ledgersql"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const registrationEntity = "registration"

// RegistrationRepo provides registration persistence backed by SQLite.
type RegistrationRepo struct {
	db   *sql.DB
	stmt ledgersql.Statements
}

// NewRegistrationRepo creates a new registration repository.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo {
	return &RegistrationRepo{db: db, stmt: ledgersql.SQLite()}
}

// Create inserts a new registration. Returns domain.ErrAlreadyRegistered if
// the user already holds an active registration for the event.
func (r *RegistrationRepo) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	query, args, err := r.stmt.InsertRegistration(reg)
	if err != nil {
		return nil, fmt.Errorf("build insert registration: %w", err)
	}

	q := QuerierFromCtx(ctx, r.db)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, registrationEntity, pairKey(reg.UserID, reg.EventID), domain.ErrAlreadyRegistered)
	}

	created := *reg
	return &created, nil
}

// Cancel flips the active registration to cancelled.
// Returns domain.ErrNotFound if there is no active registration.
func (r *RegistrationRepo) Cancel(ctx context.Context, userID, eventID string) error {
	query, args, err := r.stmt.CancelRegistration(userID, eventID)
	if err != nil {
		return fmt.Errorf("build cancel registration: %w", err)
	}

	q := QuerierFromCtx(ctx, r.db)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, registrationEntity, pairKey(userID, eventID), nil)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, registrationEntity, pairKey(userID, eventID), nil)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", registrationEntity, pairKey(userID, eventID), domain.ErrNotFound)
	}

	return nil
}

// ExistsActive reports whether the user holds an active registration for the event.
func (r *RegistrationRepo) ExistsActive(ctx context.Context, userID, eventID string) (bool, error) {
	query, args, err := r.stmt.CountActiveRegistrations(userID, eventID)
	if err != nil {
		return false, fmt.Errorf("build count registrations: %w", err)
	}

	var n int
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, mapError(err, registrationEntity, pairKey(userID, eventID), nil)
	}

	return n > 0, nil
}

// ListActiveByUser returns the user's active registrations, oldest first.
func (r *RegistrationRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, "user "+userID)
}

// ListActiveByEvent returns the event's active registrations, oldest first.
func (r *RegistrationRepo) ListActiveByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return r.list(ctx, sq.Eq{"event_id": eventID}, "event "+eventID)
}

// ListActive returns every active registration.
func (r *RegistrationRepo) ListActive(ctx context.Context) ([]domain.Registration, error) {
	return r.list(ctx, nil, "all")
}

// GetActiveByCode returns the active registration holding a check-in code.
func (r *RegistrationRepo) GetActiveByCode(ctx context.Context, code string) (*domain.Registration, error) {
	query, args, err := r.stmt.ActiveRegistrationByCode(code, true)
	if err != nil {
		return nil, fmt.Errorf("build registration by code: %w", err)
	}

	reg, err := ledgersql.ScanRegistration(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, registrationEntity, "code", nil)
	}

	return &reg, nil
}

func (r *RegistrationRepo) list(ctx context.Context, filter sq.Eq, key string) ([]domain.Registration, error) {
	query, args, err := r.stmt.ActiveRegistrations(filter)
	if err != nil {
		return nil, fmt.Errorf("build list registrations: %w", err)
	}

	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, registrationEntity, key, nil)
	}
	defer rows.Close()

	result := make([]domain.Registration, 0)
	for rows.Next() {
		reg, err := ledgersql.ScanRegistration(rows)
		if err != nil {
			return nil, mapError(err, registrationEntity, key, nil)
		}
		result = append(result, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, registrationEntity, key, nil)
	}

	return result, nil
}
