package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/codeclub-backend/internal/adapter/ledgersql"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const attendanceEntity = "attendance"

// AttendanceRepo provides attendance persistence backed by SQLite.
type AttendanceRepo struct {
	db   *sql.DB
	stmt ledgersql.Statements
}

// NewAttendanceRepo creates a new attendance repository.
func NewAttendanceRepo(db *sql.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db, stmt: ledgersql.SQLite()}
}

// Create inserts a new attendance record. Returns domain.ErrAlreadyAttended
// if any record already exists for the pair.
func (r *AttendanceRepo) Create(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	query, args, err := r.stmt.InsertAttendance(a)
	if err != nil {
		return nil, fmt.Errorf("build insert attendance: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, attendanceEntity, pairKey(a.UserID, a.EventID), domain.ErrAlreadyAttended)
	}

	created := *a
	return &created, nil
}

// CheckOut closes a checked-in record.
// Returns domain.ErrNotFound if nothing is checked in.
func (r *AttendanceRepo) CheckOut(ctx context.Context, userID, eventID string, at time.Time) error {
	query, args, err := r.stmt.CheckOutAttendance(userID, eventID, at)
	if err != nil {
		return fmt.Errorf("build check out: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, attendanceEntity, pairKey(userID, eventID), nil)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, attendanceEntity, pairKey(userID, eventID), nil)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", attendanceEntity, pairKey(userID, eventID), domain.ErrNotFound)
	}

	return nil
}

// Exists reports whether any attendance record exists for the pair.
func (r *AttendanceRepo) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	query, args, err := r.stmt.CountAttendance(userID, eventID)
	if err != nil {
		return false, fmt.Errorf("build count attendance: %w", err)
	}

	var n int
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, mapError(err, attendanceEntity, pairKey(userID, eventID), nil)
	}

	return n > 0, nil
}

// ListByUser returns the user's attendance records in check-in order.
func (r *AttendanceRepo) ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, "user "+userID)
}

// ListByEvent returns the event's attendance records in check-in order.
func (r *AttendanceRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	return r.list(ctx, sq.Eq{"event_id": eventID}, "event "+eventID)
}

// ListAll returns every attendance record.
func (r *AttendanceRepo) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	return r.list(ctx, nil, "all")
}

// ListByUserAndEvents returns the user's records for any of eventIDs.
func (r *AttendanceRepo) ListByUserAndEvents(ctx context.Context, userID string, eventIDs []string) ([]domain.Attendance, error) {
	if len(eventIDs) == 0 {
		return []domain.Attendance{}, nil
	}
	return r.list(ctx, sq.Eq{"user_id": userID, "event_id": eventIDs}, "user "+userID)
}

func (r *AttendanceRepo) list(ctx context.Context, filter sq.Eq, key string) ([]domain.Attendance, error) {
	query, args, err := r.stmt.Attendance(filter)
	if err != nil {
		return nil, fmt.Errorf("build list attendance: %w", err)
	}

	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, attendanceEntity, key, nil)
	}
	defer rows.Close()

	result := make([]domain.Attendance, 0)
	for rows.Next() {
		a, err := ledgersql.ScanAttendance(rows)
		if err != nil {
			return nil, mapError(err, attendanceEntity, key, nil)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, attendanceEntity, key, nil)
	}

	return result, nil
}
