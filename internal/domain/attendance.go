package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is a user's recorded presence at an event. At most one exists
// per (UserID, EventID), and it is never removed.
type Attendance struct {
	ID           uuid.UUID
	UserID       string
	UserName     string
	UserEmail    string
	EventID      string
	EventTitle   string
	EventDate    string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       AttendanceStatus
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCheckedIn reports whether the record can still be checked out.
func (a *Attendance) IsCheckedIn() bool {
	return a.Status == AttendanceStatusCheckedIn
}
