package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
	"github.com/heartmarshall/codeclub-backend/internal/service/attendance"
)

type attendanceService interface {
	MarkAttendance(ctx context.Context, input attendance.MarkInput) (*domain.Attendance, error)
	CheckOut(ctx context.Context, userID, eventID string) error
	CheckInByCode(ctx context.Context, input attendance.CheckInByCodeInput) (*domain.Attendance, error)
	HasAttended(ctx context.Context, userID, eventID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Attendance, error)
	ListForEvent(ctx context.Context, eventID string) ([]domain.Attendance, error)
}

// AttendanceHandler serves attendance endpoints for members and staff.
type AttendanceHandler struct {
	svc attendanceService
	log *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc attendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: logger.With("handler", "attendance")}
}

// CheckIn handles POST /api/events/{eventID}/attendance (self check-in).
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req selfCheckInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.MarkAttendance(r.Context(), attendance.MarkInput{
		UserID:     id.UserID,
		UserName:   id.Name,
		UserEmail:  id.Email,
		EventID:    eventIDParam(r),
		EventTitle: req.EventTitle,
		EventDate:  req.EventDate,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttendanceResponse(*a))
}

// CheckOut handles POST /api/events/{eventID}/attendance/checkout.
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.svc.CheckOut(r.Context(), id.UserID, eventIDParam(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Status handles GET /api/events/{eventID}/attendance.
func (h *AttendanceHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	attended, err := h.svc.HasAttended(r.Context(), id.UserID, eventIDParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, attendedResponse{Attended: attended})
}

// ListMine handles GET /api/me/attendance.
func (h *AttendanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListForUser(r.Context(), id.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceList(list))
}

// ListForEvent handles GET /api/admin/events/{eventID}/attendance.
func (h *AttendanceHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListForEvent(r.Context(), eventIDParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceList(list))
}

// Mark handles POST /api/admin/events/{eventID}/attendance, recording a
// check-in on behalf of a member.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req adminMarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.MarkAttendance(r.Context(), attendance.MarkInput{
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		EventID:    eventIDParam(r),
		EventTitle: req.EventTitle,
		EventDate:  req.EventDate,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttendanceResponse(*a))
}

// CheckOutUser handles POST /api/admin/events/{eventID}/attendance/{userID}/checkout.
func (h *AttendanceHandler) CheckOutUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CheckOut(r.Context(), userIDParam(r), eventIDParam(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckInByCode handles POST /api/admin/checkin with a scanned QR code.
func (h *AttendanceHandler) CheckInByCode(w http.ResponseWriter, r *http.Request) {
	var req checkInByCodeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.CheckInByCode(r.Context(), attendance.CheckInByCodeInput{
		Code:  req.Code,
		Notes: req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttendanceResponse(*a))
}
