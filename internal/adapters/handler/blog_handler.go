package handler

import (
	"net/http"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type BlogHandler struct {
	blog   ports.BlogService
	logger *logging.Logger
}

func NewBlogHandler(blog ports.BlogService, logger *logging.Logger) *BlogHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BlogHandler{blog: blog, logger: logger}
}

type blogListView struct {
	Posts      []domain.BlogPost `json:"posts"`
	Categories []string          `json:"categories"`
	Query      string            `json:"query,omitempty"`
	Category   string            `json:"category"`
}

type blogPostView struct {
	Post     *domain.BlogPost `json:"post"`
	Comments []domain.Comment `json:"comments"`
}

type commentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

// List serves GET /blog?q=&category=&limit=.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = "all"
	}

	posts, err := h.blog.Posts(r.Context(), queryInt(r, "limit", services.DefaultBlogLimit), q.Get("q"), category)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, blogListView{
		Posts:      posts,
		Categories: services.BlogCategories,
		Query:      q.Get("q"),
		Category:   category,
	})
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, h.logger, "id")
	if !ok {
		return
	}
	post, err := h.blog.Post(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	// the article still renders when its comments cannot be loaded
	comments, err := h.blog.Comments(r.Context(), id)
	if err != nil {
		h.logger.Warn("blog comments unavailable", "post_id", id, "error", err)
		comments = []domain.Comment{}
	}
	writeJSON(w, h.logger, http.StatusOK, blogPostView{Post: post, Comments: comments})
}

func (h *BlogHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, h.logger, "id")
	if !ok {
		return
	}
	comments, err := h.blog.Comments(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, comments)
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, h.logger, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	comment, err := h.blog.AddComment(r.Context(), id, req.Name, req.Email, req.Comment)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, comment)
}
