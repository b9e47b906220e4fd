package registration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// Register appends a new active registration. Returns domain.ErrAlreadyRegistered
// if the user already holds one for the event.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Registration, error) {
	reg, err := s.register(ctx, input)
	s.metrics.RecordRegistration("register", err)
	if err == nil {
		s.invalidateSummaries(ctx)
	}
	return reg, err
}

func (s *Service) register(ctx context.Context, input RegisterInput) (*domain.Registration, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code, err := s.newCode()
	if err != nil {
		return nil, err
	}

	reg, err := s.regs.Create(ctx, &domain.Registration{
		ID:               uuid.New(),
		UserID:           input.UserID,
		UserName:         strings.TrimSpace(input.UserName),
		UserEmail:        strings.TrimSpace(input.UserEmail),
		EventID:          input.EventID,
		EventTitle:       strings.TrimSpace(input.EventTitle),
		EventDate:        strings.TrimSpace(input.EventDate),
		RegistrationDate: s.now(),
		Status:           domain.RegistrationStatusRegistered,
		CheckInCode:      code,
	})
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", reg.UserID),
		slog.String("event_id", reg.EventID),
		slog.String("registration_id", reg.ID.String()),
	)

	return reg, nil
}

// Cancel marks the user's active registration for the event as cancelled.
// The record is kept. Returns domain.ErrNotFound if nothing is active.
func (s *Service) Cancel(ctx context.Context, userID, eventID string) error {
	err := s.cancel(ctx, userID, eventID)
	s.metrics.RecordRegistration("cancel", err)
	if err == nil {
		s.invalidateSummaries(ctx)
	}
	return err
}

func (s *Service) cancel(ctx context.Context, userID, eventID string) error {
	if err := validatePair(userID, eventID); err != nil {
		return err
	}

	if err := s.regs.Cancel(ctx, userID, eventID); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.log.InfoContext(ctx, "registration cancelled",
		slog.String("user_id", userID),
		slog.String("event_id", eventID),
	)

	return nil
}
