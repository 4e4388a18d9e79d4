package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type BlogHandler struct {
	Repo entity.BlogRepositoryInterface
}

func NewBlogHandler(repo entity.BlogRepositoryInterface) *BlogHandler {
	return &BlogHandler{Repo: repo}
}

func (h *BlogHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.ListPublished(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.Repo.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

type blogPostRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"cover_image"`
	Content    string `json:"content"`
	Published  bool   `json:"published"`
}

// Admin routes below.

func (h *BlogHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	post := entity.NewBlogPost(req.Title, req.Slug, req.Excerpt, req.CoverImage, req.Content, req.Published)
	if err := h.Repo.Create(r.Context(), post); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req blogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	post := &entity.BlogPost{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Content:    req.Content,
		Published:  req.Published,
	}
	if post.Slug == "" {
		post.Slug = entity.Slugify(post.Title)
	}

	if err := h.Repo.Update(r.Context(), post); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
