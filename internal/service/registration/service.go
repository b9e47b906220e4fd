// Package registration implements the registration ledger: members
// registering for events, cancelling, and the queries over active
// registrations.
package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
	"github.com/heartmarshall/codeclub-backend/internal/metrics"
)

type registrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
	ExistsActive(ctx context.Context, userID, eventID string) (bool, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	ListActiveByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
}

type summaryInvalidator interface {
	InvalidateSummaries(ctx context.Context) error
}

// Service provides registration operations.
type Service struct {
	regs    registrationRepo
	cache   summaryInvalidator
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
	newCode func() (string, error)
}

// NewService creates a new registration service. cache and m may be nil.
func NewService(
	log *slog.Logger,
	regs registrationRepo,
	cache summaryInvalidator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		regs:    regs,
		cache:   cache,
		metrics: m,
		log:     log.With("service", "registration"),
		now:     func() time.Time { return time.Now().UTC() },
		newCode: NewCheckInCode,
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
