// Package memory implements the registration and attendance ledgers in
// process memory. Each check-and-write runs under the store mutex, which
// gives the same uniqueness guarantees as the SQL indexes.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

func pairKey(userID, eventID string) string {
	return userID + "/" + eventID
}

// Ping reports the in-process store as healthy unless ctx is done.
func Ping(ctx context.Context) error {
	return ctx.Err()
}

// TxManager runs fn directly. Store operations are individually atomic and
// the ledgers' uniqueness rules hold without a surrounding transaction.
type TxManager struct{}

// NewTxManager creates a new TxManager.
func NewTxManager() TxManager { return TxManager{} }

// RunInTx executes fn with ctx unchanged.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Registrations
// ---------------------------------------------------------------------------

// RegistrationStore keeps registrations in insertion order.
type RegistrationStore struct {
	mu   sync.RWMutex
	rows []domain.Registration
}

// NewRegistrationStore creates an empty registration store.
func NewRegistrationStore() *RegistrationStore {
	return &RegistrationStore{}
}

// Create appends reg unless the pair already has an active registration.
func (s *RegistrationStore) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.UserID == reg.UserID && r.EventID == reg.EventID && r.IsActive() {
			return nil, fmt.Errorf("registration %s: %w", pairKey(reg.UserID, reg.EventID), domain.ErrAlreadyRegistered)
		}
	}

	s.rows = append(s.rows, *reg)
	created := *reg
	return &created, nil
}

// Cancel flips the pair's active registration to cancelled.
func (s *RegistrationStore) Cancel(ctx context.Context, userID, eventID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		r := &s.rows[i]
		if r.UserID == userID && r.EventID == eventID && r.IsActive() {
			r.Status = domain.RegistrationStatusCancelled
			return nil
		}
	}

	return fmt.Errorf("registration %s: %w", pairKey(userID, eventID), domain.ErrNotFound)
}

// ExistsActive reports whether the pair has an active registration.
func (s *RegistrationStore) ExistsActive(ctx context.Context, userID, eventID string) (bool, error) {
	list, err := s.filter(ctx, func(r domain.Registration) bool {
		return r.UserID == userID && r.EventID == eventID
	})
	return len(list) > 0, err
}

// ListActiveByUser returns the user's active registrations in insertion order.
func (s *RegistrationStore) ListActiveByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	return s.filter(ctx, func(r domain.Registration) bool { return r.UserID == userID })
}

// ListActiveByEvent returns the event's active registrations in insertion order.
func (s *RegistrationStore) ListActiveByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return s.filter(ctx, func(r domain.Registration) bool { return r.EventID == eventID })
}

// ListActive returns every active registration.
func (s *RegistrationStore) ListActive(ctx context.Context) ([]domain.Registration, error) {
	return s.filter(ctx, func(domain.Registration) bool { return true })
}

// GetActiveByCode returns the active registration holding code.
func (s *RegistrationStore) GetActiveByCode(ctx context.Context, code string) (*domain.Registration, error) {
	list, err := s.filter(ctx, func(r domain.Registration) bool { return r.CheckInCode == code })
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("registration code: %w", domain.ErrNotFound)
	}
	return &list[0], nil
}

// All returns every registration including cancelled ones.
func (s *RegistrationStore) All() []domain.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rows)
}

func (s *RegistrationStore) filter(ctx context.Context, keep func(domain.Registration) bool) ([]domain.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Registration, 0)
	for _, r := range s.rows {
		if r.IsActive() && keep(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Attendance
// ---------------------------------------------------------------------------

// AttendanceStore keeps attendance records in insertion order.
type AttendanceStore struct {
	mu   sync.RWMutex
	rows []domain.Attendance
}

// NewAttendanceStore creates an empty attendance store.
func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{}
}

// Create appends a unless the pair already has any record.
func (s *AttendanceStore) Create(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.UserID == a.UserID && r.EventID == a.EventID {
			return nil, fmt.Errorf("attendance %s: %w", pairKey(a.UserID, a.EventID), domain.ErrAlreadyAttended)
		}
	}

	s.rows = append(s.rows, cloneAttendance(*a))
	created := cloneAttendance(*a)
	return &created, nil
}

// CheckOut closes the pair's checked-in record.
func (s *AttendanceStore) CheckOut(ctx context.Context, userID, eventID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		r := &s.rows[i]
		if r.UserID == userID && r.EventID == eventID && r.IsCheckedIn() {
			out := at
			r.CheckOutTime = &out
			r.Status = domain.AttendanceStatusCheckedOut
			r.UpdatedAt = at
			return nil
		}
	}

	return fmt.Errorf("attendance %s: %w", pairKey(userID, eventID), domain.ErrNotFound)
}

// Exists reports whether the pair has any record.
func (s *AttendanceStore) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	list, err := s.filter(ctx, func(a domain.Attendance) bool {
		return a.UserID == userID && a.EventID == eventID
	})
	return len(list) > 0, err
}

// ListByUser returns the user's records in insertion order.
func (s *AttendanceStore) ListByUser(ctx context.Context, userID string) ([]domain.Attendance, error) {
	return s.filter(ctx, func(a domain.Attendance) bool { return a.UserID == userID })
}

// ListByEvent returns the event's records in insertion order.
func (s *AttendanceStore) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	return s.filter(ctx, func(a domain.Attendance) bool { return a.EventID == eventID })
}

// ListAll returns every record.
func (s *AttendanceStore) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	return s.filter(ctx, func(domain.Attendance) bool { return true })
}

// ListByUserAndEvents returns the user's records for any of eventIDs.
func (s *AttendanceStore) ListByUserAndEvents(ctx context.Context, userID string, eventIDs []string) ([]domain.Attendance, error) {
	return s.filter(ctx, func(a domain.Attendance) bool {
		return a.UserID == userID && slices.Contains(eventIDs, a.EventID)
	})
}

func (s *AttendanceStore) filter(ctx context.Context, keep func(domain.Attendance) bool) ([]domain.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Attendance, 0)
	for _, a := range s.rows {
		if keep(a) {
			result = append(result, cloneAttendance(a))
		}
	}
	return result, nil
}

// cloneAttendance copies pointer fields so callers cannot mutate stored rows.
func cloneAttendance(a domain.Attendance) domain.Attendance {
	if a.CheckOutTime != nil {
		t := *a.CheckOutTime
		a.CheckOutTime = &t
	}
	if a.Notes != nil {
		n := *a.Notes
		a.Notes = &n
	}
	return a
}
