package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/middleware"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *logging.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError translates a service error into its HTTP status and user-facing message.
func writeError(w http.ResponseWriter, r *http.Request, logger *logging.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
	case domain.IsValidation(err):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: userMessage(err)})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, logger, http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, logger, http.StatusConflict, errorResponse{Error: "Email already registered"})
	case errors.Is(err, domain.ErrEmailNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "No account found with that email"})
	case errors.Is(err, domain.ErrTherapistNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "Therapist not found"})
	case errors.Is(err, domain.ErrPostNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "Post not found"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, domain.ErrRemote):
		logger.Error("remote call failed", "path", r.URL.Path, "error", err)
		writeJSON(w, logger, http.StatusBadGateway, errorResponse{Error: "Something went wrong. Please try again later."})
	default:
		logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, logger, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrIncompleteBooking):
		return "Please complete all required fields"
	case errors.Is(err, domain.ErrDateOutOfRange):
		return "Please choose a date within the next 30 days"
	case errors.Is(err, domain.ErrSlotUnavailable):
		return "That time slot is not available"
	default:
		return err.Error()
	}
}

// decode reads a JSON body into v, writing a 400 when it cannot.
func decode(w http.ResponseWriter, r *http.Request, logger *logging.Logger, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

// currentUser returns the identity placed on the context by the session middleware.
// Routes using it are mounted behind RequireAuth, so a missing session is a wiring error.
func currentUser(w http.ResponseWriter, r *http.Request, logger *logging.Logger) (domain.Identity, bool) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeJSON(w, logger, http.StatusUnauthorized, errorResponse{Error: "Authentication required"})
		return domain.Identity{}, false
	}
	return session.User, true
}

func intParam(w http.ResponseWriter, r *http.Request, logger *logging.Logger, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return v, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
