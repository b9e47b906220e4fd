package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/skip2/go-qrcode"

	"github.com/heartmarshall/codeclub-backend/internal/config"
	"github.com/heartmarshall/codeclub-backend/internal/domain"
	"github.com/heartmarshall/codeclub-backend/internal/service/registration"
)

type registrationService interface {
	Register(ctx context.Context, input registration.RegisterInput) (*domain.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
	IsRegistered(ctx context.Context, userID, eventID string) (bool, error)
	ActiveRegistration(ctx context.Context, userID, eventID string) (*domain.Registration, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Registration, error)
	ListForEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
}

// RegistrationHandler serves registration endpoints.
type RegistrationHandler struct {
	svc     registrationService
	checkIn config.CheckInConfig
	log     *slog.Logger
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(svc registrationService, checkIn config.CheckInConfig, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		svc:     svc,
		checkIn: checkIn,
		log:     logger.With("handler", "registration"),
	}
}

// Register handles POST /api/events/{eventID}/registration.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req eventSnapshotRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.svc.Register(r.Context(), registration.RegisterInput{
		UserID:     id.UserID,
		UserName:   id.Name,
		UserEmail:  id.Email,
		EventID:    eventIDParam(r),
		EventTitle: req.EventTitle,
		EventDate:  req.EventDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRegistrationResponse(*reg))
}

// Cancel handles DELETE /api/events/{eventID}/registration.
func (h *RegistrationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Cancel(r.Context(), id.UserID, eventIDParam(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Status handles GET /api/events/{eventID}/registration.
func (h *RegistrationHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	registered, err := h.svc.IsRegistered(r.Context(), id.UserID, eventIDParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, registeredResponse{Registered: registered})
}

// QRCode handles GET /api/events/{eventID}/registration/qr and returns a PNG
// encoding the check-in URL for the caller's active registration.
func (h *RegistrationHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	reg, err := h.svc.ActiveRegistration(r.Context(), id.UserID, eventIDParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	png, err := qrcode.Encode(h.checkInURL(reg.CheckInCode), qrcode.Medium, h.checkIn.QRSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png) //nolint:errcheck
}

// ListMine handles GET /api/me/registrations.
func (h *RegistrationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListForUser(r.Context(), id.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationList(list))
}

// ListForEvent handles GET /api/admin/events/{eventID}/registrations.
func (h *RegistrationHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListForEvent(r.Context(), eventIDParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationList(list))
}

func (h *RegistrationHandler) checkInURL(code string) string {
	q := url.Values{"code": {code}}
	return h.checkIn.QRBaseURL + "?" + q.Encode()
}
