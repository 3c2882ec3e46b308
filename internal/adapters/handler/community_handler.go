package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type CommunityHandler struct {
	community ports.CommunityService
	logger    *logging.Logger
}

func NewCommunityHandler(community ports.CommunityService, logger *logging.Logger) *CommunityHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommunityHandler{community: community, logger: logger}
}

type contentRequest struct {
	Content string `json:"content"`
}

func (h *CommunityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit := min(queryInt(r, "limit", services.DefaultFeedLimit), services.MaxFeedLimit)
	posts, err := h.community.Feed(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, posts)
}

func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req contentRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	post, err := h.community.CreatePost(r.Context(), user, req.Content)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, post)
}

func (h *CommunityHandler) Like(w http.ResponseWriter, r *http.Request) {
	post, err := h.community.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, post)
}

func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	var req contentRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	comment, err := h.community.AddComment(r.Context(), chi.URLParam(r, "id"), user, req.Content)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, comment)
}

func (h *CommunityHandler) Report(w http.ResponseWriter, r *http.Request) {
	if err := h.community.Report(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, messageResponse{
		Message: "Post reported. Thank you for helping keep our community safe.",
	})
}
