package handler

import (
	"net/http"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
	logger    *logging.Logger
}

func NewDashboardHandler(dashboard ports.DashboardService, logger *logging.Logger) *DashboardHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	view, err := h.dashboard.Overview(r.Context(), user)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}
