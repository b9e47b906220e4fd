package attendance

import (
	"context"
	"fmt"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// HasAttended reports whether the user has any attendance record for the event.
func (s *Service) HasAttended(ctx context.Context, userID, eventID string) (bool, error) {
	if err := validatePair(userID, eventID); err != nil {
		return false, err
	}

	ok, err := s.attendance.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("check attendance: %w", err)
	}
	return ok, nil
}

// ListForUser returns the user's attendance records in check-in order.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Attendance, error) {
	if errs := validateKey("user_id", userID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	list, err := s.attendance.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user attendance: %w", err)
	}
	return list, nil
}

// ListForEvent returns the event's attendance records in check-in order.
func (s *Service) ListForEvent(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	if errs := validateKey("event_id", eventID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	list, err := s.attendance.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event attendance: %w", err)
	}
	return list, nil
}
