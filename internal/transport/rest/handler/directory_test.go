package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerdisha/internal/model"
	"careerdisha/internal/service"
)

type fakeCourseRepo struct{ courses []model.Course }

func (r *fakeCourseRepo) Create(ctx context.Context, course *model.Course) error { return nil }
func (r *fakeCourseRepo) GetAll(ctx context.Context) ([]model.Course, error)     { return r.courses, nil }

type fakeCollegeRepo struct{ colleges []model.College }

func (r *fakeCollegeRepo) Create(ctx context.Context, college *model.College) error { return nil }
func (r *fakeCollegeRepo) GetAll(ctx context.Context) ([]model.College, error) {
	return r.colleges, nil
}

type fakeTimelineRepo struct{ events []model.TimelineEvent }

func (r *fakeTimelineRepo) Create(ctx context.Context, event *model.TimelineEvent) error { return nil }
func (r *fakeTimelineRepo) GetAll(ctx context.Context) ([]model.TimelineEvent, error) {
	return r.events, nil
}

func newDirectoryHandler(colleges ...model.College) *DirectoryHandler {
	svc := service.NewDirectoryService(&fakeCourseRepo{}, &fakeCollegeRepo{colleges: colleges}, &fakeTimelineRepo{})
	return NewDirectoryHandler(svc)
}

func TestNearbyRequiresAllParams(t *testing.T) {
	h := newDirectoryHandler()

	for _, target := range []string{
		"/v1/colleges/nearby",
		"/v1/colleges/nearby?lat=28.6",
		"/v1/colleges/nearby?lat=28.6&lng=77.2",
		"/v1/colleges/nearby?lat=abc&lng=77.2&radius=50",
	} {
		rec := httptest.NewRecorder()
		h.Nearby(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestNearbyReturnsCollegesWithinRadius(t *testing.T) {
	near, far := 28.7041, 19.0760
	nearLng, farLng := 77.1025, 72.8777
	h := newDirectoryHandler(
		model.College{Name: "Near", Latitude: &near, Longitude: &nearLng},
		model.College{Name: "Far", Latitude: &far, Longitude: &farLng},
	)

	rec := httptest.NewRecorder()
	h.Nearby(rec, httptest.NewRequest(http.MethodGet, "/v1/colleges/nearby?lat=28.6139&lng=77.2090&radius=50", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Colleges []model.NearbyCollege `json:"colleges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Colleges, 1)
	assert.Equal(t, "Near", payload.Colleges[0].Name)
	assert.Greater(t, payload.Colleges[0].DistanceKm, 0.0)
}

func TestCreateEventRejectsInvalidBody(t *testing.T) {
	h := newDirectoryHandler()

	rec := httptest.NewRecorder()
	h.CreateEvent(rec, authedRequest(http.MethodPost, "/v1/timeline", `{"title":"","type":"admission"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
