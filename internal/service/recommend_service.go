package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"careerdisha/internal/apperr"
	"careerdisha/internal/cache"
	"careerdisha/internal/logger"
	"careerdisha/internal/model"
	"careerdisha/internal/recommend"
	"careerdisha/internal/repository"
)

// RecommendService reads the store snapshot and composes recommendation
// bundles.
type RecommendService struct {
	users    repository.UserRepo
	courses  repository.CourseRepo
	colleges repository.CollegeRepo
	timeline repository.TimelineRepo
	bundles  cache.BundleCache
}

func NewRecommendService(
	users repository.UserRepo,
	courses repository.CourseRepo,
	colleges repository.CollegeRepo,
	timeline repository.TimelineRepo,
	bundles cache.BundleCache,
) *RecommendService {
	return &RecommendService{
		users:    users,
		courses:  courses,
		colleges: colleges,
		timeline: timeline,
		bundles:  bundles,
	}
}

// Recommend returns the bundle for a student. Collection reads run in
// parallel; any failed read aborts the request with a StorageError, while
// cache errors are logged and ignored.
func (s *RecommendService) Recommend(ctx context.Context, username string) (*model.Bundle, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Storage("users.GetByUsername", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", username)
	}

	// No-quiz state: terminal for this request, no collection reads needed.
	if user.QuizResult == nil || user.QuizResult.RecommendedStream == "" {
		return recommend.Compose(user, recommend.Snapshot{}, time.Now()), nil
	}

	if cached, err := s.bundles.Get(ctx, username); err != nil {
		logger.Warn("bundle cache read failed",
			zap.String("username", username), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	bundle := recommend.Compose(user, snap, time.Now())

	if err := s.bundles.Set(ctx, username, bundle); err != nil {
		logger.Warn("bundle cache write failed",
			zap.String("username", username), zap.Error(err))
	}

	return bundle, nil
}

// fetchSnapshot reads the three collections concurrently. The reads are
// independent; each goroutine writes a distinct snapshot field, and all must
// finish before the snapshot is used.
func (s *RecommendService) fetchSnapshot(ctx context.Context) (recommend.Snapshot, error) {
	var snap recommend.Snapshot
	errc := make(chan error, 3)

	go func() {
		courses, err := s.courses.GetAll(ctx)
		if err != nil {
			errc <- apperr.Storage("courses.GetAll", err)
			return
		}
		snap.Courses = courses
		errc <- nil
	}()
	go func() {
		colleges, err := s.colleges.GetAll(ctx)
		if err != nil {
			errc <- apperr.Storage("colleges.GetAll", err)
			return
		}
		snap.Colleges = colleges
		errc <- nil
	}()
	go func() {
		events, err := s.timeline.GetAll(ctx)
		if err != nil {
			errc <- apperr.Storage("timeline.GetAll", err)
			return
		}
		snap.Events = events
		errc <- nil
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return recommend.Snapshot{}, firstErr
	}
	return snap, nil
}
