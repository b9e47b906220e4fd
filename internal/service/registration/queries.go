package registration

import (
	"context"
	"fmt"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// IsRegistered reports whether the user holds an active registration for the event.
func (s *Service) IsRegistered(ctx context.Context, userID, eventID string) (bool, error) {
	if err := validatePair(userID, eventID); err != nil {
		return false, err
	}

	ok, err := s.regs.ExistsActive(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return ok, nil
}

// ActiveRegistration returns the user's active registration for the event.
// Returns domain.ErrNotFound if there is none.
func (s *Service) ActiveRegistration(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	regs, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range regs {
		if regs[i].EventID == eventID {
			return &regs[i], nil
		}
	}

	return nil, fmt.Errorf("registration %s/%s: %w", userID, eventID, domain.ErrNotFound)
}

// ListForUser returns the user's active registrations in storage order.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	if errs := validateKey("user_id", userID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	regs, err := s.regs.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}
	return regs, nil
}

// ListForEvent returns the event's active registrations in storage order.
func (s *Service) ListForEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	if errs := validateKey("event_id", eventID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	regs, err := s.regs.ListActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event registrations: %w", err)
	}
	return regs, nil
}
