package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"careerdisha/internal/metrics"
	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest/middleware"
)

// QuizHandler serves the assessment catalog and scores submissions.
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// Questions handles GET /v1/quiz/questions.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.quizSvc.Questions(),
	})
}

// Submit handles POST /v1/quiz/submit. The body must be a flat JSON array
// of answer values aligned positionally to the question catalog.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	// A bare `null` unmarshals into a nil slice without error; only a real
	// JSON array is an acceptable answer vector.
	var answers []interface{}
	if err := json.Unmarshal(body, &answers); err != nil || answers == nil {
		writeError(w, http.StatusBadRequest, "answer payload must be a JSON array")
		return
	}

	username := middleware.GetUsername(r.Context())
	result, err := h.quizSvc.Submit(r.Context(), username, answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	metrics.QuizSubmissions.WithLabelValues(string(result.RecommendedStream)).Inc()
	writeJSON(w, http.StatusOK, result)
}
