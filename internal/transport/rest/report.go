package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

type reportService interface {
	UserStats(ctx context.Context, userID string) (domain.UserAttendanceStats, error)
	UserHistory(ctx context.Context, userID string) ([]domain.EventHistoryEntry, error)
	AllEventAttendance(ctx context.Context) ([]domain.EventAttendanceSummary, error)
}

// ReportHandler serves statistics and summaries.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// MyStats handles GET /api/me/stats.
func (h *ReportHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	h.writeStats(w, r, id.UserID)
}

// UserStats handles GET /api/admin/users/{userID}/stats.
func (h *ReportHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	h.writeStats(w, r, userIDParam(r))
}

// MyHistory handles GET /api/me/history.
func (h *ReportHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	history, err := h.svc.UserHistory(r.Context(), id.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryList(history))
}

// EventSummaries handles GET /api/admin/events/attendance.
func (h *ReportHandler) EventSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.AllEventAttendance(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryList(summaries))
}

func (h *ReportHandler) writeStats(w http.ResponseWriter, r *http.Request, userID string) {
	stats, err := h.svc.UserStats(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
