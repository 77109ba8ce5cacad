package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/go-chi/chi/v5"
)

// BlogHandler serves the blog post fixtures
type BlogHandler struct {
	repo repository.BlogRepository
	log  *slog.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(repo repository.BlogRepository, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		repo: repo,
		log:  log,
	}
}

// ListPosts handles GET /api/blog
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.log.Error("failed to list blog posts", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, posts, h.log)
}

// GetPost handles GET /api/blog/{slug}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == repository.ErrPostNotFound {
			h.log.Info("blog post not found", "slug", slug)
			WriteError(w, http.StatusNotFound, "Post not found", h.log)
			return
		}
		h.log.Error("failed to get blog post", "slug", slug, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, post, h.log)
}
