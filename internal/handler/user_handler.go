package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// UserHandler manages user records and project assignments.
type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userListResponse struct {
	Users []*model.User `json:"users"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	writeJSON(w, http.StatusOK, userListResponse{Users: users})
}

type createUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	u, err := h.users.Create(r.Context(), req.Username, req.Role)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

type assignProjectRequest struct {
	Project string `json:"project"`
}

func (h *UserHandler) AssignProject(w http.ResponseWriter, r *http.Request) {
	var req assignProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Project == "" {
		writeBadRequest(w, "project is required")
		return
	}

	if err := h.users.AssignProject(r.Context(), r.PathValue("username"), req.Project); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
