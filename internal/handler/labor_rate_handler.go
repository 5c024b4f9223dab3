package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// LaborRateHandler manages the per-work-type daily rate table.
type LaborRateHandler struct {
	rates service.LaborRateService
}

func NewLaborRateHandler(rates service.LaborRateService) *LaborRateHandler {
	return &LaborRateHandler{rates: rates}
}

type laborRateListResponse struct {
	Rates map[string]model.LaborRate `json:"rates"`
}

func (h *LaborRateHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rates == nil {
		rates = map[string]model.LaborRate{}
	}
	writeJSON(w, http.StatusOK, laborRateListResponse{Rates: rates})
}

type bulkUpsertRequest struct {
	Rates []model.LaborRate `json:"rates"`
}

type bulkUpsertResponse struct {
	Skipped []string `json:"skipped"`
}

// BulkUpsert writes the submitted rates. Locked work types are left
// untouched and reported back so the admin screen can flag them.
func (h *LaborRateHandler) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req bulkUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	skipped, err := h.rates.BulkUpsert(r.Context(), req.Rates)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if skipped == nil {
		skipped = []string{}
	}
	writeJSON(w, http.StatusOK, bulkUpsertResponse{Skipped: skipped})
}

type setLockedRequest struct {
	Locked bool `json:"locked"`
}

func (h *LaborRateHandler) SetLocked(w http.ResponseWriter, r *http.Request) {
	var req setLockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	workType := r.PathValue("workType")
	if err := h.rates.SetLocked(r.Context(), workType, req.Locked); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"work_type": workType, "locked": req.Locked})
}
