// Package attendance implements the attendance ledger: check-in, check-out
// and the queries over attendance records, plus QR code check-in against
// the registration ledger.
package attendance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
	"github.com/heartmarshall/codeclub-backend/internal/metrics"
)

type attendanceRepo interface {
	Create(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error)
	CheckOut(ctx context.Context, userID, eventID string, at time.Time) error
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Attendance, error)
}

type registrationLookup interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.Registration, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type summaryInvalidator interface {
	InvalidateSummaries(ctx context.Context) error
}

// Service provides attendance operations.
type Service struct {
	attendance attendanceRepo
	regs       registrationLookup
	tx         txManager
	cache      summaryInvalidator
	metrics    *metrics.Metrics
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new attendance service. cache and m may be nil.
func NewService(
	log *slog.Logger,
	attendance attendanceRepo,
	regs registrationLookup,
	tx txManager,
	cache summaryInvalidator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		attendance: attendance,
		regs:       regs,
		tx:         tx,
		cache:      cache,
		metrics:    m,
		log:        log.With("service", "attendance"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// invalidateSummaries drops the cached all-events report after a write.
// A failure leaves the old report until its TTL expires.
func (s *Service) invalidateSummaries(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSummaries(ctx); err != nil {
		s.log.WarnContext(ctx, "summary cache invalidation failed", slog.String("error", err.Error()))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
