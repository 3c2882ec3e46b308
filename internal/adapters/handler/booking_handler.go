package handler

import (
	"net/http"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type BookingHandler struct {
	booking ports.BookingService
	logger  *logging.Logger
}

func NewBookingHandler(booking ports.BookingService, logger *logging.Logger) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{booking: booking, logger: logger}
}

type appointmentsView struct {
	Draft        *domain.BookingDraft `json:"draft"`
	Therapists   []domain.Therapist   `json:"therapists"`
	Appointments []domain.Appointment `json:"appointments"`
}

type selectTherapistRequest struct {
	TherapistID int `json:"therapistId"`
}

type selectDateRequest struct {
	Date string `json:"date"`
}

type selectSlotRequest struct {
	Time string `json:"time"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type slotsResponse struct {
	TherapistID int      `json:"therapistId"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
}

// Page renders the booking workflow together with the user's existing appointments.
func (h *BookingHandler) Page(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	ctx := r.Context()

	draft, err := h.booking.Draft(ctx, user.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	therapists, err := h.booking.Therapists(ctx)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	appointments, err := h.booking.Appointments(ctx, user.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, appointmentsView{
		Draft:        draft,
		Therapists:   therapists,
		Appointments: appointments,
	})
}

func (h *BookingHandler) Therapists(w http.ResponseWriter, r *http.Request) {
	therapists, err := h.booking.Therapists(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, therapists)
}

func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, h.logger, "id")
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	slots, err := h.booking.AvailableSlots(r.Context(), id, date)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, slotsResponse{TherapistID: id, Date: date, Slots: slots})
}

func (h *BookingHandler) SelectTherapist(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req selectTherapistRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	h.respondDraft(w, r)(h.booking.SelectTherapist(r.Context(), user.ID, req.TherapistID))
}

func (h *BookingHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req selectDateRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	h.respondDraft(w, r)(h.booking.SelectDate(r.Context(), user.ID, req.Date))
}

func (h *BookingHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req selectSlotRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	h.respondDraft(w, r)(h.booking.SelectSlot(r.Context(), user.ID, req.Time))
}

func (h *BookingHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req notesRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	h.respondDraft(w, r)(h.booking.SetNotes(r.Context(), user.ID, req.Notes))
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	result, err := h.booking.Confirm(r.Context(), user)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

func (h *BookingHandler) respondDraft(w http.ResponseWriter, r *http.Request) func(*domain.BookingDraft, error) {
	return func(draft *domain.BookingDraft, err error) {
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, draft)
	}
}
