package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses. Store and
// relay failures stay 5xx and keep their message generic; validation and
// schedule input problems surface as 400s with the reason.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	if usecase.IsDomainError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if usecase.IsRelayError(err) {
		writeError(w, http.StatusBadGateway, "relay failed, please retry")
		return
	}

	writeError(w, http.StatusInternalServerError, "something went wrong, please retry")
}
