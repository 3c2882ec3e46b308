package handler

import (
	"net/http"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type MoodHandler struct {
	mood   ports.MoodService
	logger *logging.Logger
}

func NewMoodHandler(mood ports.MoodService, logger *logging.Logger) *MoodHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &MoodHandler{mood: mood, logger: logger}
}

// Page renders the tracker: all entries, the 14-point trend, history and averages.
func (h *MoodHandler) Page(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	insights, err := h.mood.Insights(r.Context(), user.ID, services.TrackerTrendWindow)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, insights)
}

func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var input domain.MoodInput
	if !decode(w, r, h.logger, &input) {
		return
	}

	if _, err := h.mood.Record(r.Context(), user.ID, input); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	insights, err := h.mood.Insights(r.Context(), user.ID, services.TrackerTrendWindow)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, insights)
}
