// Package ledgersql builds the SQL statements and row scanners shared by the
// PostgreSQL and SQLite ledger adapters. Both backends store the same
// registrations and attendance tables; only placeholders and row locking differ.
package ledgersql

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const (
	registrationsTable = "registrations"
	attendanceTable    = "attendance"
)

var registrationColumns = []string{
	"id", "user_id", "user_name", "user_email",
	"event_id", "event_title", "event_date",
	"registration_date", "status", "check_in_code",
}

var attendanceColumns = []string{
	"id", "user_id", "user_name", "user_email",
	"event_id", "event_title", "event_date",
	"check_in_time", "check_out_time", "status", "notes",
	"created_at", "updated_at",
}

// Row is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type Row interface {
	Scan(dest ...any) error
}

// Statements builds ledger SQL for one dialect.
type Statements struct {
	sb       sq.StatementBuilderType
	rowLocks bool
}

// Postgres returns statements using $N placeholders and SELECT ... FOR UPDATE.
func Postgres() Statements {
	return Statements{sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), rowLocks: true}
}

// SQLite returns statements using ? placeholders. SQLite has no row locks;
// its write transactions are serialized by the database lock instead.
func SQLite() Statements {
	return Statements{sb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

// ---------------------------------------------------------------------------
// Registrations
// ---------------------------------------------------------------------------

// InsertRegistration inserts a full registration row.
func (s Statements) InsertRegistration(r *domain.Registration) (string, []any, error) {
	return s.sb.Insert(registrationsTable).
		Columns(registrationColumns...).
		Values(
			r.ID, r.UserID, r.UserName, r.UserEmail,
			r.EventID, r.EventTitle, r.EventDate,
			r.RegistrationDate, string(r.Status), r.CheckInCode,
		).
		ToSql()
}

// CancelRegistration flips the active registration of (userID, eventID) to
// cancelled. Zero affected rows means there was no active registration.
func (s Statements) CancelRegistration(userID, eventID string) (string, []any, error) {
	return s.sb.Update(registrationsTable).
		Set("status", string(domain.RegistrationStatusCancelled)).
		Where(sq.Eq{
			"user_id":  userID,
			"event_id": eventID,
			"status":   string(domain.RegistrationStatusRegistered),
		}).
		ToSql()
}

// CountActiveRegistrations counts active registrations of (userID, eventID).
func (s Statements) CountActiveRegistrations(userID, eventID string) (string, []any, error) {
	return s.sb.Select("COUNT(*)").
		From(registrationsTable).
		Where(sq.Eq{
			"user_id":  userID,
			"event_id": eventID,
			"status":   string(domain.RegistrationStatusRegistered),
		}).
		ToSql()
}

// ActiveRegistrations selects active registrations matching filter, oldest
// first. A nil filter selects every active registration.
func (s Statements) ActiveRegistrations(filter sq.Eq) (string, []any, error) {
	where := sq.Eq{"status": string(domain.RegistrationStatusRegistered)}
	for k, v := range filter {
		where[k] = v
	}

	return s.sb.Select(registrationColumns...).
		From(registrationsTable).
		Where(where).
		OrderBy("registration_date", "id").
		ToSql()
}

// ActiveRegistrationByCode selects the active registration holding code.
// With lock set, the row is locked for the rest of the transaction where
// the dialect supports it.
func (s Statements) ActiveRegistrationByCode(code string, lock bool) (string, []any, error) {
	q := s.sb.Select(registrationColumns...).
		From(registrationsTable).
		Where(sq.Eq{
			"check_in_code": code,
			"status":        string(domain.RegistrationStatusRegistered),
		})
	if lock && s.rowLocks {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

// ScanRegistration reads one row selected with the registration columns.
func ScanRegistration(row Row) (domain.Registration, error) {
	var (
		r      domain.Registration
		status string
	)
	err := row.Scan(
		&r.ID, &r.UserID, &r.UserName, &r.UserEmail,
		&r.EventID, &r.EventTitle, &r.EventDate,
		&r.RegistrationDate, &status, &r.CheckInCode,
	)
	if err != nil {
		return domain.Registration{}, err
	}

	r.Status = domain.RegistrationStatus(status)
	if !r.Status.IsValid() {
		return domain.Registration{}, fmt.Errorf("registration %s: unknown status %q", r.ID, status)
	}
	r.RegistrationDate = r.RegistrationDate.UTC()

	return r, nil
}

// ---------------------------------------------------------------------------
// Attendance
// ---------------------------------------------------------------------------

// InsertAttendance inserts a full attendance row.
func (s Statements) InsertAttendance(a *domain.Attendance) (string, []any, error) {
	return s.sb.Insert(attendanceTable).
		Columns(attendanceColumns...).
		Values(
			a.ID, a.UserID, a.UserName, a.UserEmail,
			a.EventID, a.EventTitle, a.EventDate,
			a.CheckInTime, a.CheckOutTime, string(a.Status), a.Notes,
			a.CreatedAt, a.UpdatedAt,
		).
		ToSql()
}

// CheckOutAttendance moves the checked-in record of (userID, eventID) to
// checked-out. Zero affected rows means no checked-in record exists.
func (s Statements) CheckOutAttendance(userID, eventID string, at time.Time) (string, []any, error) {
	return s.sb.Update(attendanceTable).
		Set("check_out_time", at).
		Set("status", string(domain.AttendanceStatusCheckedOut)).
		Set("updated_at", at).
		Where(sq.Eq{
			"user_id":  userID,
			"event_id": eventID,
			"status":   string(domain.AttendanceStatusCheckedIn),
		}).
		ToSql()
}

// CountAttendance counts attendance records of (userID, eventID) in any status.
func (s Statements) CountAttendance(userID, eventID string) (string, []any, error) {
	return s.sb.Select("COUNT(*)").
		From(attendanceTable).
		Where(sq.Eq{"user_id": userID, "event_id": eventID}).
		ToSql()
}

// Attendance selects attendance records matching filter in check-in order.
// A nil filter selects every record. Slice values expand to IN lists.
func (s Statements) Attendance(filter sq.Eq) (string, []any, error) {
	q := s.sb.Select(attendanceColumns...).From(attendanceTable)
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	return q.OrderBy("check_in_time", "id").ToSql()
}

// ScanAttendance reads one row selected with the attendance columns.
func ScanAttendance(row Row) (domain.Attendance, error) {
	var (
		a      domain.Attendance
		status string
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.UserName, &a.UserEmail,
		&a.EventID, &a.EventTitle, &a.EventDate,
		&a.CheckInTime, &a.CheckOutTime, &status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Attendance{}, err
	}

	a.Status = domain.AttendanceStatus(status)
	if !a.Status.IsValid() {
		return domain.Attendance{}, fmt.Errorf("attendance %s: unknown status %q", a.ID, status)
	}
	a.CheckInTime = a.CheckInTime.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	if a.CheckOutTime != nil {
		t := a.CheckOutTime.UTC()
		a.CheckOutTime = &t
	}

	return a, nil
}
