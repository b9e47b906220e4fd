package report

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// UserStats computes a user's attendance statistics. TotalEvents counts
// active registrations, AttendedEvents counts attendance records of any
// status. MissedEvents is their difference and is negative for walk-ins
// who attended without registering.
func (s *Service) UserStats(ctx context.Context, userID string) (domain.UserAttendanceStats, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.UserAttendanceStats{}, domain.NewValidationError("user_id", "required")
	}

	var (
		regs []domain.Registration
		atts []domain.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regs, err = s.regs.ListActiveByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list user registrations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		atts, err = s.atts.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list user attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.UserAttendanceStats{}, err
	}

	return computeStats(len(regs), len(atts)), nil
}

func computeStats(total, attended int) domain.UserAttendanceStats {
	return domain.UserAttendanceStats{
		TotalEvents:    total,
		AttendedEvents: attended,
		MissedEvents:   total - attended,
		AttendanceRate: domain.Rate(attended, total),
	}
}
