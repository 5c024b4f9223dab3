package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sitelabor/backend/internal/health"
	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// ProjectHandler exposes project CRUD, daily work submission, and the
// per-project summary views.
type ProjectHandler struct {
	projects service.ProjectService
	users    service.UserService
	health   service.HealthService
}

func NewProjectHandler(projects service.ProjectService, users service.UserService, health service.HealthService) *ProjectHandler {
	return &ProjectHandler{projects: projects, users: users, health: health}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

type projectListResponse struct {
	Projects []*model.Project `json:"projects"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projectListResponse{Projects: projects})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.Get(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type createProjectRequest struct {
	Name      string            `json:"name"`
	WorkTypes []string          `json:"work_types"`
	Contracts map[string]int    `json:"contracts"`
	Companies map[string]string `json:"companies"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	p, err := h.projects.Create(r.Context(), req.Name, req.WorkTypes, req.Contracts, req.Companies)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), r.PathValue("name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.projects.UpdateStatus(r.Context(), r.PathValue("name"), req.Status); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

type addWorkTypeRequest struct {
	WorkType string `json:"work_type"`
	Company  string `json:"company"`
	Contract int    `json:"contract"`
}

func (h *ProjectHandler) AddWorkType(w http.ResponseWriter, r *http.Request) {
	var req addWorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.projects.AddWorkType(r.Context(), r.PathValue("name"), req.WorkType, req.Company, req.Contract); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ---------------------------------------------------------------------------
// Daily work
// ---------------------------------------------------------------------------

type saveDailyWorkRequest struct {
	Entries map[string]service.DailyWorkInput `json:"entries"`
}

// SaveDailyWork accepts one day's entries for a project. The optional
// X-Username header attributes the submission; non-admin users must be
// assigned to the project.
func (h *ProjectHandler) SaveDailyWork(w http.ResponseWriter, r *http.Request) {
	var req saveDailyWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var user *model.User
	if username := r.Header.Get("X-Username"); username != "" {
		u, err := h.users.Get(r.Context(), username)
		if err != nil {
			writeError(w, err)
			return
		}
		user = u
	}

	name := r.PathValue("name")
	date := r.PathValue("date")
	if err := h.projects.SaveDailyWork(r.Context(), user, name, date, req.Entries); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			writeError(w, err)
			return
		}
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"project": name, "date": date})
}

// ---------------------------------------------------------------------------
// Per-project views
// ---------------------------------------------------------------------------

func (h *ProjectHandler) ProjectHealth(w http.ResponseWriter, r *http.Request) {
	result, err := h.health.ProjectHealth(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ProjectHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	rows, err := h.health.Rollup(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rollup": rows})
}

// DailySummary reports cumulative headcounts and progress up to ?date=
// (defaults to the project's latest recorded date).
func (h *ProjectHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	date := r.URL.Query().Get("date")
	if date == "" {
		p, err := h.projects.Get(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		latest, ok := p.LatestDate()
		if !ok {
			writeJSON(w, http.StatusOK, map[string]any{"date": "", "summary": []health.DailySummaryRow{}})
			return
		}
		date = latest
	}

	rows, err := h.health.DailySummary(r.Context(), name, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "summary": rows})
}
