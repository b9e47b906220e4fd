package registration

import (
	"strings"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const (
	maxIDLength    = 128
	maxTextLength  = 500
	maxDateLength  = 64
	maxEmailLength = 320
)

// RegisterInput holds the parameters for registering a user for an event.
// Name, email, title and date are snapshots stored with the record.
type RegisterInput struct {
	UserID     string
	UserName   string
	UserEmail  string
	EventID    string
	EventTitle string
	EventDate  string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateKey("user_id", i.UserID)...)
	errs = append(errs, validateKey("event_id", i.EventID)...)

	if len(i.UserName) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "max 500 characters"})
	}
	if len(i.UserEmail) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "user_email", Message: "max 320 characters"})
	}
	if len(i.EventTitle) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "event_title", Message: "max 500 characters"})
	}
	if len(i.EventDate) > maxDateLength {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validatePair checks a (user, event) key pair.
func validatePair(userID, eventID string) error {
	errs := append(validateKey("user_id", userID), validateKey("event_id", eventID)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateKey(field, value string) []domain.FieldError {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(value) > maxIDLength:
		return []domain.FieldError{{Field: field, Message: "max 128 characters"}}
	}
	return nil
}
