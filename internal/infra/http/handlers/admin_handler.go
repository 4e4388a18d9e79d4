package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/http/middleware"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

// AdminHandler is the back-office surface: submission lists, status
// transitions, interview scheduling and record deletion.
type AdminHandler struct {
	Leads         entity.LeadRepositoryInterface
	Consultations entity.ConsultationRepositoryInterface
	Applications  entity.ApplicationRepositoryInterface
	Settings      entity.SettingsRepositoryInterface
	StatusUC      *usecase.UpdateStatusUseCase
	ScheduleUC    *usecase.ScheduleInterviewUseCase
}

func NewAdminHandler(
	leads entity.LeadRepositoryInterface,
	consultations entity.ConsultationRepositoryInterface,
	applications entity.ApplicationRepositoryInterface,
	settings entity.SettingsRepositoryInterface,
	statusUC *usecase.UpdateStatusUseCase,
	scheduleUC *usecase.ScheduleInterviewUseCase,
) *AdminHandler {
	return &AdminHandler{
		Leads:         leads,
		Consultations: consultations,
		Applications:  applications,
		Settings:      settings,
		StatusUC:      statusUC,
		ScheduleUC:    scheduleUC,
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type scheduleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, empty clears
	Time string `json:"time"` // HH:MM, empty clears
}

func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *AdminHandler) HandleListConsultations(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Consultations.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list consultations")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Applications.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *AdminHandler) HandleLeadStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.StatusUC.UpdateLead(r.Context(), id, req.Status); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordStatusTransition("lead", req.Status)
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *AdminHandler) HandleConsultationStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.StatusUC.UpdateConsultation(r.Context(), id, req.Status); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordStatusTransition("consultation", req.Status)
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *AdminHandler) HandleApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.StatusUC.UpdateApplication(r.Context(), id, req.Status); err != nil {
		writeUseCaseError(w, err)
		return
	}

	canonical := string(entity.CanonicalStatus(req.Status))
	middleware.RecordStatusTransition("career_application", canonical)
	writeJSON(w, http.StatusOK, map[string]string{"status": canonical})
}

func (h *AdminHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.ScheduleUC.Schedule(r.Context(), id, req.Date, req.Time); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) HandleUpcomingInterviews(w http.ResponseWriter, r *http.Request) {
	upcoming, err := h.ScheduleUC.ListUpcoming(r.Context(), time.Now())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, upcoming)
}

func (h *AdminHandler) HandleDeleteLead(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Leads.Delete)
}

func (h *AdminHandler) HandleDeleteConsultation(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Consultations.Delete)
}

func (h *AdminHandler) HandleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Applications.Delete)
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id string) error) {
	id := chi.URLParam(r, "id")
	if err := del(r.Context(), id); err != nil {
		if err == entity.ErrNotFound {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) HandlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings entity.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Settings.Put(r.Context(), &settings); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
