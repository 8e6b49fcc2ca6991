package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerdisha/internal/model"
	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest/middleware"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) UpdateQuizResult(ctx context.Context, username string, result *model.QuizResult) error {
	return nil
}

func (r *fakeUserRepo) UpdateLocation(ctx context.Context, username string, lat, lng float64) error {
	return nil
}

type fakeBundleCache struct{}

func (fakeBundleCache) Get(ctx context.Context, username string) (*model.Bundle, error) {
	return nil, nil
}
func (fakeBundleCache) Set(ctx context.Context, username string, bundle *model.Bundle) error {
	return nil
}
func (fakeBundleCache) Invalidate(ctx context.Context, username string) error { return nil }

func newQuizHandler() *QuizHandler {
	repo := &fakeUserRepo{users: map[string]*model.User{
		"asha": {Username: "asha", ClassLevel: model.ClassLevel12},
	}}
	return NewQuizHandler(service.NewQuizService(repo, fakeBundleCache{}))
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), middleware.UsernameKey, "asha")
	return r.WithContext(ctx)
}

func TestQuizSubmitRejectsNonArrayBody(t *testing.T) {
	h := newQuizHandler()

	for _, body := range []string{
		`{"answers": ["science"]}`,
		`"science"`,
		`not json`,
		`null`,
	} {
		rec := httptest.NewRecorder()
		h.Submit(rec, authedRequest(http.MethodPost, "/v1/quiz/submit", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestQuizSubmitScoresArrayBody(t *testing.T) {
	h := newQuizHandler()

	rec := httptest.NewRecorder()
	h.Submit(rec, authedRequest(http.MethodPost, "/v1/quiz/submit", `["science", "science", "science"]`))

	require.Equal(t, http.StatusOK, rec.Code)
	var result model.QuizResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.StreamScience, result.RecommendedStream)
	assert.Equal(t, 3, result.StreamScores[model.StreamScience])
}

func TestQuizQuestionsEndpoint(t *testing.T) {
	h := newQuizHandler()

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/v1/quiz/questions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Questions []model.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload.Questions, 20)
}
