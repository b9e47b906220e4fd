package domain

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a user's stated intent to attend an event.
// UserName, UserEmail, EventTitle and EventDate are snapshots taken at
// registration time and are never re-synced.
type Registration struct {
	ID               uuid.UUID
	UserID           string
	UserName         string
	UserEmail        string
	EventID          string
	EventTitle       string
	EventDate        string
	RegistrationDate time.Time
	Status           RegistrationStatus
	CheckInCode      string
}

// IsActive reports whether the registration still counts toward the event.
func (r *Registration) IsActive() bool {
	return r.Status == RegistrationStatusRegistered
}
