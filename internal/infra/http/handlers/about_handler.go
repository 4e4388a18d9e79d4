package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type AboutHandler struct {
	Repo entity.AboutRepositoryInterface
}

func NewAboutHandler(repo entity.AboutRepositoryInterface) *AboutHandler {
	return &AboutHandler{Repo: repo}
}

func (h *AboutHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	content, err := h.Repo.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load about content")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *AboutHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var content entity.AboutContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Repo.Put(r.Context(), &content); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save about content")
		return
	}
	writeJSON(w, http.StatusOK, content)
}
