package handler

import (
	"net/http"

	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest/middleware"
)

// RecommendHandler serves composed recommendation bundles.
type RecommendHandler struct {
	recommendSvc *service.RecommendService
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(recommendSvc *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendSvc: recommendSvc}
}

// Get handles GET /v1/recommendations.
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	bundle, err := h.recommendSvc.Recommend(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Users without a quiz result get just the advisory message.
	if bundle.Message != "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  bundle.Message,
			"courses":  bundle.Courses,
			"colleges": bundle.Colleges,
			"events":   bundle.Events,
			"careers":  bundle.Careers,
		})
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}
