package service

import (
	"context"
	"math"
	"sort"

	"careerdisha/internal/apperr"
	"careerdisha/internal/geo"
	"careerdisha/internal/model"
	"careerdisha/internal/repository"
)

// DirectoryService serves the course, college and timeline collections and
// the nearby-college radius query.
type DirectoryService struct {
	courses  repository.CourseRepo
	colleges repository.CollegeRepo
	timeline repository.TimelineRepo
}

func NewDirectoryService(
	courses repository.CourseRepo,
	colleges repository.CollegeRepo,
	timeline repository.TimelineRepo,
) *DirectoryService {
	return &DirectoryService{
		courses:  courses,
		colleges: colleges,
		timeline: timeline,
	}
}

func (s *DirectoryService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage("courses.GetAll", err)
	}
	return courses, nil
}

func (s *DirectoryService) AddCourse(ctx context.Context, course *model.Course) error {
	if course.Course == "" {
		return apperr.Validation("course name is required")
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return apperr.Storage("courses.Create", err)
	}
	return nil
}

func (s *DirectoryService) ListColleges(ctx context.Context) ([]model.College, error) {
	colleges, err := s.colleges.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage("colleges.GetAll", err)
	}
	return colleges, nil
}

func (s *DirectoryService) AddCollege(ctx context.Context, college *model.College) error {
	if college.Name == "" {
		return apperr.Validation("college name is required")
	}
	if err := s.colleges.Create(ctx, college); err != nil {
		return apperr.Storage("colleges.Create", err)
	}
	return nil
}

func (s *DirectoryService) ListEvents(ctx context.Context) ([]model.TimelineEvent, error) {
	events, err := s.timeline.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage("timeline.GetAll", err)
	}
	return events, nil
}

func (s *DirectoryService) AddEvent(ctx context.Context, event *model.TimelineEvent) error {
	if event.Title == "" || event.Date.IsZero() {
		return apperr.Validation("event title and date are required")
	}
	if event.Type != model.EventAdmission && event.Type != model.EventScholarship {
		return apperr.Validation("event type must be admission or scholarship")
	}
	if err := s.timeline.Create(ctx, event); err != nil {
		return apperr.Storage("timeline.Create", err)
	}
	return nil
}

// Nearby filters colleges within radiusKm of the given point, closest
// first. Only the top-level latitude/longitude document shape participates;
// colleges without it, or with a NaN distance, are excluded.
func (s *DirectoryService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]model.NearbyCollege, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsNaN(radiusKm) {
		return nil, apperr.Validation("lat, lng and radius must be numeric")
	}

	colleges, err := s.colleges.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage("colleges.GetAll", err)
	}

	nearby := []model.NearbyCollege{}
	for _, col := range colleges {
		if col.Latitude == nil || col.Longitude == nil {
			continue
		}
		d := geo.Distance(lat, lng, *col.Latitude, *col.Longitude)
		if math.IsNaN(d) || d > radiusKm {
			continue
		}
		nearby = append(nearby, model.NearbyCollege{
			College:    col,
			DistanceKm: math.Round(d*100) / 100,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}
