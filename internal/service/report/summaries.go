package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// AllEventAttendance returns one summary per event that appears in either
// ledger, newest EventDate first. EventDate is compared as a string, so the
// catalog's ISO dates sort chronologically. Ties break on EventID.
//
// A cached report is served only while no ledger write has happened since
// it was computed. Cache failures are logged and never fail the request;
// after a failed read the fresh report is not stored.
func (s *Service) AllEventAttendance(ctx context.Context) ([]domain.EventAttendanceSummary, error) {
	var (
		version  int64
		storable bool
	)
	if s.cache != nil {
		cached, v, ok, err := s.cache.GetSummaries(ctx)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "summary cache read failed", slog.String("error", err.Error()))
		case ok:
			return cached, nil
		default:
			version, storable = v, true
		}
	}

	var (
		regs []domain.Registration
		atts []domain.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regs, err = s.regs.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("list registrations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		atts, err = s.atts.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := summarize(regs, atts)

	if storable {
		if err := s.cache.SetSummaries(ctx, version, summaries); err != nil {
			s.log.WarnContext(ctx, "summary cache write failed", slog.String("error", err.Error()))
		}
	}

	return summaries, nil
}

// summarize groups both ledgers by event. Title and date come from the first
// registration seen for the event, falling back to its first attendance record.
func summarize(regs []domain.Registration, atts []domain.Attendance) []domain.EventAttendanceSummary {
	byEvent := make(map[string]*domain.EventAttendanceSummary)
	get := func(eventID, title, date string) *domain.EventAttendanceSummary {
		sum, ok := byEvent[eventID]
		if !ok {
			sum = &domain.EventAttendanceSummary{
				EventID:    eventID,
				EventTitle: title,
				EventDate:  date,
				Attendees:  []domain.Attendance{},
			}
			byEvent[eventID] = sum
		}
		return sum
	}

	for _, r := range regs {
		get(r.EventID, r.EventTitle, r.EventDate).TotalRegistered++
	}
	for _, a := range atts {
		sum := get(a.EventID, a.EventTitle, a.EventDate)
		sum.TotalCheckedIn++
		sum.Attendees = append(sum.Attendees, a)
	}

	result := make([]domain.EventAttendanceSummary, 0, len(byEvent))
	for _, sum := range byEvent {
		sum.AttendanceRate = domain.Rate(sum.TotalCheckedIn, sum.TotalRegistered)
		result = append(result, *sum)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].EventDate != result[j].EventDate {
			return result[i].EventDate > result[j].EventDate
		}
		return result[i].EventID < result[j].EventID
	})

	return result
}
