package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type AdminHandler struct {
	admin   ports.AdminService
	booking ports.BookingService
	logger  *logging.Logger
}

func NewAdminHandler(admin ports.AdminService, booking ports.BookingService, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{admin: admin, booking: booking, logger: logger}
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.admin.Analytics(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, analytics)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.Users(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, users)
}

func (h *AdminHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.UserActive)
}

func (h *AdminHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.UserInactive)
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, r *http.Request, status domain.UserStatus) {
	user, err := h.admin.SetUserStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.booking.AllAppointments(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, appointments)
}
