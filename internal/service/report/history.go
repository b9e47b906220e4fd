package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// maxBatch caps the event IDs per ListByUserAndEvents call, bounding the
// SQL IN list.
const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// UserHistory pairs each of the user's active registrations with the user's
// attendance record for that event, if any. Attendance lookups go through a
// per-call loader that batches them into ListByUserAndEvents calls.
func (s *Service) UserHistory(ctx context.Context, userID string) ([]domain.EventHistoryEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("user_id", "required")
	}

	regs, err := s.regs.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}

	loader := newLoader(newAttendanceBatchFn(s.atts, userID))

	thunks := make([]dataloader.Thunk[*domain.Attendance], len(regs))
	for i, r := range regs {
		thunks[i] = loader.Load(ctx, r.EventID)
	}

	history := make([]domain.EventHistoryEntry, len(regs))
	for i, r := range regs {
		a, err := thunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load attendance for event %s: %w", r.EventID, err)
		}
		history[i] = domain.EventHistoryEntry{Registration: r, Attendance: a}
	}

	return history, nil
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// newAttendanceBatchFn loads one user's attendance for a batch of event IDs.
// Events without a record resolve to nil.
func newAttendanceBatchFn(repo attendanceReader, userID string) dataloader.BatchFunc[string, *domain.Attendance] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Attendance] {
		rows, err := repo.ListByUserAndEvents(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.Attendance](len(keys), err)
		}

		byEvent := make(map[string]*domain.Attendance, len(rows))
		for i := range rows {
			a := rows[i] // copy to avoid aliasing
			byEvent[a.EventID] = &a
		}

		results := make([]*dataloader.Result[*domain.Attendance], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Attendance]{Data: byEvent[key]}
		}
		return results
	}
}

// errorResults creates n error results for a failed batch.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
