package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// PolicyHandler exposes the health threshold policy for admin review and
// tuning.
type PolicyHandler struct {
	policy service.PolicyService
}

func NewPolicyHandler(policy service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policy: policy}
}

func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.policy.Snapshot())
}

// Update applies a partial threshold patch. Invalid combinations are
// rejected as a whole; the stored policy is never left half-updated.
func (h *PolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.HealthPolicyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.policy.Update(r.Context(), patch)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
