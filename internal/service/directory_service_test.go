package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerdisha/internal/apperr"
	"careerdisha/internal/model"
)

func fptr(f float64) *float64 { return &f }

func TestNearbyFiltersAndSorts(t *testing.T) {
	colleges := &stubCollegeRepo{colleges: []model.College{
		{Name: "Near", Latitude: fptr(28.7041), Longitude: fptr(77.1025)}, // ~15 km from Delhi
		{Name: "Far", Latitude: fptr(19.0760), Longitude: fptr(72.8777)},  // Mumbai, ~1150 km
		{Name: "Mid", Latitude: fptr(28.4595), Longitude: fptr(77.0266)},  // Gurugram, ~25 km
		{Name: "Unplaced"}, // no coordinates
		{Name: "Nested", Location: &model.GeoPoint{Lat: fptr(28.61), Lng: fptr(77.21)}}, // wrong shape for this query
	}}
	svc := NewDirectoryService(&stubCourseRepo{}, colleges, &stubTimelineRepo{})

	got, err := svc.Nearby(context.Background(), 28.6139, 77.2090, 50)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Near", got[0].Name)
	assert.Equal(t, "Mid", got[1].Name)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestNearbyRejectsBadInput(t *testing.T) {
	svc := NewDirectoryService(&stubCourseRepo{}, &stubCollegeRepo{}, &stubTimelineRepo{})
	ctx := context.Background()

	for _, args := range [][3]float64{
		{math.NaN(), 77, 50},
		{28, math.NaN(), 50},
		{28, 77, math.NaN()},
	} {
		_, err := svc.Nearby(ctx, args[0], args[1], args[2])
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve, "args %v", args)
	}
}

func TestNearbyNonPositiveRadiusMatchesNothing(t *testing.T) {
	// Numeric but useless radii are not an input error; they just select no
	// colleges.
	lat, lng := 28.7041, 77.1025
	colleges := &stubCollegeRepo{colleges: []model.College{
		{Name: "Near", Latitude: &lat, Longitude: &lng},
	}}
	svc := NewDirectoryService(&stubCourseRepo{}, colleges, &stubTimelineRepo{})

	for _, radius := range []float64{-10, -0.5} {
		got, err := svc.Nearby(context.Background(), 28.6139, 77.2090, radius)
		require.NoError(t, err, "radius %v", radius)
		assert.Empty(t, got, "radius %v", radius)
	}
}

func TestAddEventValidation(t *testing.T) {
	svc := NewDirectoryService(&stubCourseRepo{}, &stubCollegeRepo{}, &stubTimelineRepo{})
	ctx := context.Background()
	date := time.Now().AddDate(0, 1, 0)

	cases := []*model.TimelineEvent{
		{Title: "", Date: date, Type: model.EventAdmission},
		{Title: "Window", Type: model.EventAdmission},
		{Title: "Window", Date: date, Type: "festival"},
	}
	for _, ev := range cases {
		err := svc.AddEvent(ctx, ev)
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve, "event %+v", ev)
	}

	assert.NoError(t, svc.AddEvent(ctx, &model.TimelineEvent{
		Title: "Window", Date: date, Type: model.EventScholarship,
	}))
}
