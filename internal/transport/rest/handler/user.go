package handler

import (
	"encoding/json"
	"net/http"

	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest/middleware"
)

// UserHandler serves profile endpoints.
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me handles GET /v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	user, err := h.userSvc.Me(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// LocationRequest is the body for PUT /v1/users/me/location.
type LocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// UpdateLocation handles PUT /v1/users/me/location.
func (h *UserHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	username := middleware.GetUsername(r.Context())
	if err := h.userSvc.SetLocation(r.Context(), username, *req.Lat, *req.Lng); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
