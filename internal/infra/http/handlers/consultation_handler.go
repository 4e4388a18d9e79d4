package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/infra/http/middleware"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

type ConsultationHandler struct {
	submitUC    *usecase.SubmitConsultationUseCase
	rateLimiter *RateLimiter
}

func NewConsultationHandler(submitUC *usecase.SubmitConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{
		submitUC:    submitUC,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *ConsultationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitConsultationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.submitUC.Execute(ctx, input)
	if err != nil {
		middleware.RecordSubmission("consultation", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSubmission("consultation", "ok")
	writeJSON(w, http.StatusCreated, out)
}
