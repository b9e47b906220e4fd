package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a user ID no other test uses.
func NewUserID() string {
	return "user-" + uniqueSuffix()
}

// NewEventID returns an event ID no other test uses.
func NewEventID() string {
	return "event-" + uniqueSuffix()
}

// SeedRegistration inserts an active registration for (userID, eventID).
// Returns a filled domain.Registration.
func SeedRegistration(t *testing.T, pool *pgxpool.Pool, userID, eventID string) domain.Registration {
	t.Helper()

	suffix := uniqueSuffix()
	reg := domain.Registration{
		ID:               uuid.New(),
		UserID:           userID,
		UserName:         "Test User " + suffix,
		UserEmail:        "testuser-" + suffix + "@example.com",
		EventID:          eventID,
		EventTitle:       "Event " + suffix,
		EventDate:        "2025-08-08",
		RegistrationDate: time.Now().UTC().Truncate(time.Microsecond),
		Status:           domain.RegistrationStatusRegistered,
		CheckInCode:      "code-" + uuid.New().String(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO registrations (id, user_id, user_name, user_email, event_id, event_title, event_date, registration_date, status, check_in_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		reg.ID, reg.UserID, reg.UserName, reg.UserEmail, reg.EventID, reg.EventTitle, reg.EventDate,
		reg.RegistrationDate, string(reg.Status), reg.CheckInCode,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegistration: %v", err)
	}

	return reg
}

// SeedAttendance inserts a checked-in attendance record for (userID, eventID).
func SeedAttendance(t *testing.T, pool *pgxpool.Pool, userID, eventID string) domain.Attendance {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Attendance{
		ID:          uuid.New(),
		UserID:      userID,
		UserName:    "Test User " + suffix,
		UserEmail:   "testuser-" + suffix + "@example.com",
		EventID:     eventID,
		EventTitle:  "Event " + suffix,
		EventDate:   "2025-08-08",
		CheckInTime: now,
		Status:      domain.AttendanceStatusCheckedIn,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO attendance (id, user_id, user_name, user_email, event_id, event_title, event_date, check_in_time, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.UserID, a.UserName, a.UserEmail, a.EventID, a.EventTitle, a.EventDate,
		a.CheckInTime, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttendance: %v", err)
	}

	return a
}
