package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerdisha/internal/apperr"
	"careerdisha/internal/model"
)

func newRecommendService(repo *stubUserRepo, courses *stubCourseRepo, colleges *stubCollegeRepo, timeline *stubTimelineRepo, bundles *stubBundleCache) *RecommendService {
	return NewRecommendService(repo, courses, colleges, timeline, bundles)
}

func scoredStudent() *model.User {
	return &model.User{
		Username:   "asha",
		ClassLevel: model.ClassLevel12,
		QuizResult: &model.QuizResult{RecommendedStream: model.StreamScience},
	}
}

func TestRecommendUnknownUser(t *testing.T) {
	svc := newRecommendService(newStubUserRepo(), &stubCourseRepo{}, &stubCollegeRepo{}, &stubTimelineRepo{}, newStubBundleCache())

	_, err := svc.Recommend(context.Background(), "nobody")

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Resource)
}

func TestRecommendUserLookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.getErr = errors.New("connection reset")
	svc := newRecommendService(repo, &stubCourseRepo{}, &stubCollegeRepo{}, &stubTimelineRepo{}, newStubBundleCache())

	_, err := svc.Recommend(context.Background(), "asha")

	var se *apperr.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestRecommendNoQuizSkipsCollectionReads(t *testing.T) {
	repo := newStubUserRepo(&model.User{Username: "asha", ClassLevel: model.ClassLevel12})
	// Collection reads would fail; the no-quiz path must never reach them.
	courses := &stubCourseRepo{err: errors.New("down")}
	colleges := &stubCollegeRepo{err: errors.New("down")}
	timeline := &stubTimelineRepo{err: errors.New("down")}
	svc := newRecommendService(repo, courses, colleges, timeline, newStubBundleCache())

	bundle, err := svc.Recommend(context.Background(), "asha")
	require.NoError(t, err)
	assert.NotEmpty(t, bundle.Message)
	assert.Empty(t, bundle.Courses)
}

func TestRecommendCollectionReadFailureAborts(t *testing.T) {
	for name, build := range map[string]func() (*stubCourseRepo, *stubCollegeRepo, *stubTimelineRepo){
		"courses": func() (*stubCourseRepo, *stubCollegeRepo, *stubTimelineRepo) {
			return &stubCourseRepo{err: errors.New("down")}, &stubCollegeRepo{}, &stubTimelineRepo{}
		},
		"colleges": func() (*stubCourseRepo, *stubCollegeRepo, *stubTimelineRepo) {
			return &stubCourseRepo{}, &stubCollegeRepo{err: errors.New("down")}, &stubTimelineRepo{}
		},
		"timeline": func() (*stubCourseRepo, *stubCollegeRepo, *stubTimelineRepo) {
			return &stubCourseRepo{}, &stubCollegeRepo{}, &stubTimelineRepo{err: errors.New("down")}
		},
	} {
		t.Run(name, func(t *testing.T) {
			courses, colleges, timeline := build()
			svc := newRecommendService(newStubUserRepo(scoredStudent()), courses, colleges, timeline, newStubBundleCache())

			_, err := svc.Recommend(context.Background(), "asha")

			var se *apperr.StorageError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestRecommendComposesAndCachesBundle(t *testing.T) {
	courses := &stubCourseRepo{courses: []model.Course{{Course: "B.Tech Computer Science"}}}
	colleges := &stubCollegeRepo{colleges: []model.College{
		{Name: "Degree College", Level: model.CollegeLevelDegree, Courses: []string{"B.Tech Computer Science"}},
	}}
	timeline := &stubTimelineRepo{events: []model.TimelineEvent{
		{Title: "Admission Window", Date: time.Now().AddDate(0, 0, 7), Type: model.EventAdmission},
	}}
	bundles := newStubBundleCache()
	svc := newRecommendService(newStubUserRepo(scoredStudent()), courses, colleges, timeline, bundles)

	bundle, err := svc.Recommend(context.Background(), "asha")
	require.NoError(t, err)

	assert.Equal(t, model.StreamScience, bundle.RecommendedStream)
	assert.NotEmpty(t, bundle.Courses)
	assert.NotEmpty(t, bundle.Careers)
	assert.Same(t, bundle, bundles.bundles["asha"])
}

func TestRecommendCacheHitShortCircuits(t *testing.T) {
	// Failing collection repos prove the cached bundle is served without reads.
	courses := &stubCourseRepo{err: errors.New("down")}
	bundles := newStubBundleCache()
	cached := &model.Bundle{RecommendedStream: model.StreamScience, Careers: []string{"Engineer"}}
	bundles.bundles["asha"] = cached
	svc := newRecommendService(newStubUserRepo(scoredStudent()), courses, &stubCollegeRepo{}, &stubTimelineRepo{}, bundles)

	bundle, err := svc.Recommend(context.Background(), "asha")
	require.NoError(t, err)
	assert.Same(t, cached, bundle)
}

func TestRecommendCacheFailureIsNonFatal(t *testing.T) {
	courses := &stubCourseRepo{courses: []model.Course{{Course: "B.Tech Computer Science"}}}
	bundles := newStubBundleCache()
	bundles.failing = true
	svc := newRecommendService(newStubUserRepo(scoredStudent()), courses, &stubCollegeRepo{}, &stubTimelineRepo{}, bundles)

	bundle, err := svc.Recommend(context.Background(), "asha")
	require.NoError(t, err)
	assert.Equal(t, model.StreamScience, bundle.RecommendedStream)
}
