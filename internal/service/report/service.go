// Package report derives attendance statistics from the registration and
// attendance ledgers. It never writes; reads from the two ledgers run
// concurrently and are not a single snapshot.
package report

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

type registrationReader interface {
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	ListActive(ctx context.Context) ([]domain.Registration, error)
}

type attendanceReader interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error)
	ListAll(ctx context.Context) ([]domain.Attendance, error)
	ListByUserAndEvents(ctx context.Context, userID string, eventIDs []string) ([]domain.Attendance, error)
}

// summaryCache holds the all-events report. version is the cache generation
// observed by GetSummaries; ledger writes advance it, so an entry stored
// under an older version is never served.
type summaryCache interface {
	GetSummaries(ctx context.Context) (summaries []domain.EventAttendanceSummary, version int64, ok bool, err error)
	SetSummaries(ctx context.Context, version int64, summaries []domain.EventAttendanceSummary) error
}

// Service provides reporting operations.
type Service struct {
	regs  registrationReader
	atts  attendanceReader
	cache summaryCache
	log   *slog.Logger
}

// NewService creates a new report service. cache may be nil to disable
// caching of the all-events report.
func NewService(
	log *slog.Logger,
	regs registrationReader,
	atts attendanceReader,
	cache summaryCache,
) *Service {
	return &Service{
		regs:  regs,
		atts:  atts,
		cache: cache,
		log:   log.With("service", "report"),
	}
}
