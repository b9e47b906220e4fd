// Package attendance implements the attendance ledger on PostgreSQL.
// One record per (user, event) is enforced by attendance_user_event_key.
package attendance

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/codeclub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/codeclub-backend/internal/adapter/ledgersql"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const entity = "attendance"

// Repo provides attendance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	stmt ledgersql.Statements
}

// New creates a new attendance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, stmt: ledgersql.Postgres()}
}

// Create inserts a new attendance record. Returns domain.ErrAlreadyAttended
// if any record already exists for the pair, whatever its status.
func (r *Repo) Create(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	query, args, err := r.stmt.InsertAttendance(a)
	if err != nil {
		return nil, fmt.Errorf("build insert attendance: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, pairKey(a.UserID, a.EventID), domain.ErrAlreadyAttended)
	}

	created := *a
	return &created, nil
}

// CheckOut closes a checked-in record in one conditional update.
// Returns domain.ErrNotFound if nothing is checked in.
func (r *Repo) CheckOut(ctx context.Context, userID, eventID string, at time.Time) error {
	query, args, err := r.stmt.CheckOutAttendance(userID, eventID, at)
	if err != nil {
		return fmt.Errorf("build check out: %w", err)
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

// Exists reports whether any attendance record exists for the pair.
func (r *Repo) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	query, args, err := r.stmt.CountAttendance(userID, eventID)
	if err != nil {
		return false, fmt.Errorf("build count attendance: %w", err)
	}

	var n int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, entity, pairKey(userID, eventID), nil)
	}

	return n > 0, nil
}

// ListByUser returns the user's attendance records in check-in order.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, "user "+userID)
}

// ListByEvent returns the event's attendance records in check-in order.
func (r *Repo) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	return r.list(ctx, sq.Eq{"event_id": eventID}, "event "+eventID)
}

// ListAll returns every attendance record.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	return r.list(ctx, nil, "all")
}

// ListByUserAndEvents returns the user's records for any of eventIDs.
func (r *Repo) ListByUserAndEvents(ctx context.Context, userID string, eventIDs []string) ([]domain.Attendance, error) {
	if len(eventIDs) == 0 {
		return []domain.Attendance{}, nil
	}
	return r.list(ctx, sq.Eq{"user_id": userID, "event_id": eventIDs}, "user "+userID)
}

func (r *Repo) list(ctx context.Context, filter sq.Eq, key string) ([]domain.Attendance, error) {
	query, args, err := r.stmt.Attendance(filter)
	if err != nil {
		return nil, fmt.Errorf("build list attendance: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, key, nil)
	}
	defer rows.Close()

	result := make([]domain.Attendance, 0)
	for rows.Next() {
		a, err := ledgersql.ScanAttendance(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, key, nil)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, key, nil)
	}

	return result, nil
}

func pairKey(userID, eventID string) string {
	return userID + "/" + eventID
}
