package service

import (
	"context"
	"errors"

	"careerdisha/internal/model"
)

// In-memory stubs for the repository and cache interfaces.

type stubUserRepo struct {
	users          map[string]*model.User
	getErr         error
	updateQuizErr  error
	updatedResults map[string]*model.QuizResult
}

func newStubUserRepo(users ...*model.User) *stubUserRepo {
	r := &stubUserRepo{
		users:          map[string]*model.User{},
		updatedResults: map[string]*model.QuizResult{},
	}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.users[username], nil
}

func (r *stubUserRepo) UpdateQuizResult(ctx context.Context, username string, result *model.QuizResult) error {
	if r.updateQuizErr != nil {
		return r.updateQuizErr
	}
	r.updatedResults[username] = result
	return nil
}

func (r *stubUserRepo) UpdateLocation(ctx context.Context, username string, lat, lng float64) error {
	return nil
}

type stubCourseRepo struct {
	courses []model.Course
	err     error
}

func (r *stubCourseRepo) Create(ctx context.Context, course *model.Course) error { return nil }

func (r *stubCourseRepo) GetAll(ctx context.Context) ([]model.Course, error) {
	return r.courses, r.err
}

type stubCollegeRepo struct {
	colleges []model.College
	err      error
}

func (r *stubCollegeRepo) Create(ctx context.Context, college *model.College) error { return nil }

func (r *stubCollegeRepo) GetAll(ctx context.Context) ([]model.College, error) {
	return r.colleges, r.err
}

type stubTimelineRepo struct {
	events []model.TimelineEvent
	err    error
}

func (r *stubTimelineRepo) Create(ctx context.Context, event *model.TimelineEvent) error { return nil }

func (r *stubTimelineRepo) GetAll(ctx context.Context) ([]model.TimelineEvent, error) {
	return r.events, r.err
}

type stubBundleCache struct {
	bundles map[string]*model.Bundle
	failing bool
}

func newStubBundleCache() *stubBundleCache {
	return &stubBundleCache{bundles: map[string]*model.Bundle{}}
}

var errCacheDown = errors.New("cache down")

func (c *stubBundleCache) Get(ctx context.Context, username string) (*model.Bundle, error) {
	if c.failing {
		return nil, errCacheDown
	}
	return c.bundles[username], nil
}

func (c *stubBundleCache) Set(ctx context.Context, username string, bundle *model.Bundle) error {
	if c.failing {
		return errCacheDown
	}
	c.bundles[username] = bundle
	return nil
}

func (c *stubBundleCache) Invalidate(ctx context.Context, username string) error {
	if c.failing {
		return errCacheDown
	}
	delete(c.bundles, username)
	return nil
}
