package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/infra/http/middleware"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

const maxResumeSize = 10 << 20 // 10MB

type ApplicationHandler struct {
	submitUC    *usecase.SubmitApplicationUseCase
	relayUC     *usecase.RelayApplicationUseCase
	rateLimiter *RateLimiter
}

func NewApplicationHandler(submitUC *usecase.SubmitApplicationUseCase, relayUC *usecase.RelayApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		submitUC:    submitUC,
		relayUC:     relayUC,
		rateLimiter: NewRateLimiter(5, time.Minute),
	}
}

// HandleApply is the multipart intake variant: form fields plus an optional
// resume file that lands in blob storage.
func (h *ApplicationHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form (max 10MB)")
		return
	}

	input := usecase.SubmitApplicationInput{
		FullName:       r.FormValue("full_name"),
		Email:          r.FormValue("email"),
		PortfolioURL:   r.FormValue("portfolio_url"),
		FavoriteAITool: r.FormValue("favorite_ai_tool"),
		Experience:     r.FormValue("experience"),
		MessageToCEO:   r.FormValue("message_to_ceo"),
		RoleAppliedFor: r.FormValue("role_applied_for"),
	}

	resume, ok, err := readResume(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ok {
		input.Resume = resume
	}

	h.submit(ctx, w, input)
}

// HandleApplyLink is the JSON intake variant: no file, at most an external
// resume link.
func (h *ApplicationHandler) HandleApplyLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.Resume = nil // this variant never carries a file

	h.submit(ctx, w, input)
}

func (h *ApplicationHandler) submit(ctx context.Context, w http.ResponseWriter, input usecase.SubmitApplicationInput) {
	out, err := h.submitUC.Execute(ctx, input)
	if err != nil {
		middleware.RecordSubmission("career_application", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSubmission("career_application", "ok")
	if out.RelayError != "" {
		middleware.RecordRelay("error")
	} else if out.Relayed {
		middleware.RecordRelay("ok")
	}

	writeJSON(w, http.StatusCreated, out)
}

// HandleRelayProxy forwards the raw multipart payload to the configured
// webhook without writing anything to the store. This variant exists
// alongside the save-then-relay intake and is kept separate on purpose.
func (h *ApplicationHandler) HandleRelayProxy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form (max 10MB)")
		return
	}

	payload := usecase.RelayPayload{Fields: map[string]string{}}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			payload.Fields[key] = values[0]
		}
	}

	resume, ok, err := readResume(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ok {
		payload.Resume = &usecase.RelayAttachment{
			Filename:    resume.Filename,
			ContentType: resume.ContentType,
			Data:        resume.Data,
		}
	}

	if err := h.relayUC.Execute(ctx, payload); err != nil {
		middleware.RecordRelay("error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordRelay("ok")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

type badResumeError string

func (e badResumeError) Error() string { return string(e) }

func readResume(r *http.Request) (*usecase.ResumeUpload, bool, error) {
	file, header, err := r.FormFile("resume")
	if err == http.ErrMissingFile {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, badResumeError("invalid resume upload")
	}
	defer file.Close()

	if !resumeExtensions[strings.ToLower(filepath.Ext(header.Filename))] {
		return nil, false, badResumeError("invalid resume type (supported: PDF, DOC, DOCX, TXT)")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		return nil, false, badResumeError("failed to read resume upload")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &usecase.ResumeUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, true, nil
}
