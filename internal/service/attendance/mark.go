package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// MarkAttendance records a check-in. Returns domain.ErrAlreadyAttended if the
// user has any attendance record for the event, checked out or not.
func (s *Service) MarkAttendance(ctx context.Context, input MarkInput) (*domain.Attendance, error) {
	a, err := s.mark(ctx, input)
	s.metrics.RecordAttendance("mark", err)
	if err == nil {
		s.invalidateSummaries(ctx)
	}
	return a, err
}

func (s *Service) mark(ctx context.Context, input MarkInput) (*domain.Attendance, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	a, err := s.attendance.Create(ctx, &domain.Attendance{
		ID:          uuid.New(),
		UserID:      input.UserID,
		UserName:    strings.TrimSpace(input.UserName),
		UserEmail:   strings.TrimSpace(input.UserEmail),
		EventID:     input.EventID,
		EventTitle:  strings.TrimSpace(input.EventTitle),
		EventDate:   strings.TrimSpace(input.EventDate),
		CheckInTime: now,
		Status:      domain.AttendanceStatusCheckedIn,
		Notes:       trimOrNil(input.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	s.log.InfoContext(ctx, "user checked in",
		slog.String("user_id", a.UserID),
		slog.String("event_id", a.EventID),
		slog.String("attendance_id", a.ID.String()),
	)

	return a, nil
}

// CheckOut closes the user's checked-in record for the event. Returns
// domain.ErrNotFound if the user never checked in or already checked out.
func (s *Service) CheckOut(ctx context.Context, userID, eventID string) error {
	err := s.checkOut(ctx, userID, eventID)
	s.metrics.RecordAttendance("checkout", err)
	if err == nil {
		s.invalidateSummaries(ctx)
	}
	return err
}

func (s *Service) checkOut(ctx context.Context, userID, eventID string) error {
	if err := validatePair(userID, eventID); err != nil {
		return err
	}

	if err := s.attendance.CheckOut(ctx, userID, eventID, s.now()); err != nil {
		return fmt.Errorf("check out: %w", err)
	}

	s.log.InfoContext(ctx, "user checked out",
		slog.String("user_id", userID),
		slog.String("event_id", eventID),
	)

	return nil
}

// CheckInByCode checks in the holder of an active registration's check-in
// code, copying the registration's user and event snapshot. The registration
// lookup and the insert share one transaction. Returns domain.ErrNotFound for
// unknown or cancelled codes and domain.ErrAlreadyAttended for repeat scans.
func (s *Service) CheckInByCode(ctx context.Context, input CheckInByCodeInput) (*domain.Attendance, error) {
	a, err := s.checkInByCode(ctx, input)
	s.metrics.RecordAttendance("checkin_code", err)
	if err == nil {
		s.invalidateSummaries(ctx)
	}
	return a, err
}

func (s *Service) checkInByCode(ctx context.Context, input CheckInByCodeInput) (*domain.Attendance, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		reg, err := s.regs.GetActiveByCode(ctx, strings.TrimSpace(input.Code))
		if err != nil {
			return fmt.Errorf("lookup check-in code: %w", err)
		}

		result, err = s.mark(ctx, MarkInput{
			UserID:     reg.UserID,
			UserName:   reg.UserName,
			UserEmail:  reg.UserEmail,
			EventID:    reg.EventID,
			EventTitle: reg.EventTitle,
			EventDate:  reg.EventDate,
			Notes:      input.Notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
