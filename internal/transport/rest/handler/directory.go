package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"careerdisha/internal/model"
	"careerdisha/internal/service"
)

// DirectoryHandler serves the course, college and timeline collections.
type DirectoryHandler struct {
	dirSvc *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(dirSvc *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{dirSvc: dirSvc}
}

// ListCourses handles GET /v1/courses.
func (h *DirectoryHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.dirSvc.ListCourses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// CreateCourse handles POST /v1/courses.
func (h *DirectoryHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course model.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.dirSvc.AddCourse(r.Context(), &course); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// ListColleges handles GET /v1/colleges.
func (h *DirectoryHandler) ListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.dirSvc.ListColleges(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"colleges": colleges})
}

// CreateCollege handles POST /v1/colleges.
func (h *DirectoryHandler) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var college model.College
	if err := json.NewDecoder(r.Body).Decode(&college); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.dirSvc.AddCollege(r.Context(), &college); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, college)
}

// ListEvents handles GET /v1/timeline.
func (h *DirectoryHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.dirSvc.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

// CreateEvent handles POST /v1/timeline.
func (h *DirectoryHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event model.TimelineEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.dirSvc.AddEvent(r.Context(), &event); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// Nearby handles GET /v1/colleges/nearby?lat=&lng=&radius=. All three
// parameters are required and must parse as numbers.
func (h *DirectoryHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, err1 := parseFloatParam(r, "lat")
	lng, err2 := parseFloatParam(r, "lng")
	radius, err3 := parseFloatParam(r, "radius")
	if err1 != nil || err2 != nil || err3 != nil {
		writeError(w, http.StatusBadRequest, "lat, lng and radius are required numeric parameters")
		return
	}

	colleges, err := h.dirSvc.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"colleges": colleges})
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(raw, 64)
}
