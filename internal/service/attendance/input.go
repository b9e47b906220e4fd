package attendance

import (
	"strings"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const (
	maxIDLength    = 128
	maxTextLength  = 500
	maxDateLength  = 64
	maxEmailLength = 320
	maxNotesLength = 2000
	maxCodeLength  = 256
)

// MarkInput holds the parameters for checking a user in to an event.
type MarkInput struct {
	UserID     string
	UserName   string
	UserEmail  string
	EventID    string
	EventTitle string
	EventDate  string
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i MarkInput) Validate() error {
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
	errs = append(errs, validateNotes(i.Notes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CheckInByCodeInput holds a scanned check-in code and optional staff notes.
type CheckInByCodeInput struct {
	Code  string
	Notes *string
}

// Validate checks all fields and collects all errors.
func (i CheckInByCodeInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > maxCodeLength {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 256 characters"})
	}
	errs = append(errs, validateNotes(i.Notes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

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

func validateNotes(notes *string) []domain.FieldError {
	if notes != nil && len(strings.TrimSpace(*notes)) > maxNotesLength {
		return []domain.FieldError{{Field: "notes", Message: "max 2000 characters"}}
	}
	return nil
}
