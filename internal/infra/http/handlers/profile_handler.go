package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

type ProfileHandler struct {
	signupUC *usecase.SignupUseCase
	users    entity.UserRepositoryInterface
}

func NewProfileHandler(signupUC *usecase.SignupUseCase, users entity.UserRepositoryInterface) *ProfileHandler {
	return &ProfileHandler{signupUC: signupUC, users: users}
}

type signupRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// HandleSignup runs after the auth provider created the identity: it
// bootstraps the profile, consuming a pending invite when one matches.
func (h *ProfileHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.signupUC.Execute(r.Context(), req.UID, req.Email)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	profile, err := h.users.FindByUID(r.Context(), uid)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
