package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/infra/http/middleware"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

type LeadHandler struct {
	submitUC    *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(submitUC *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		submitUC:    submitUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.submitUC.Execute(ctx, input)
	if err != nil {
		middleware.RecordSubmission("lead", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSubmission("lead", "ok")
	writeJSON(w, http.StatusCreated, out)
}
