package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerdisha/internal/model"
	"careerdisha/internal/quiz"
)

func scienceAnswers() []interface{} {
	answers := make([]interface{}, len(quiz.Catalog))
	for i, q := range quiz.Catalog {
		switch q.Section {
		case model.SectionInterest:
			answers[i] = "science"
		case model.SectionAptitude:
			answers[i] = "correct"
		default:
			answers[i] = "5"
		}
	}
	return answers
}

func TestQuizSubmitPersistsResult(t *testing.T) {
	repo := newStubUserRepo(&model.User{Username: "asha", ClassLevel: model.ClassLevel12})
	bundles := newStubBundleCache()
	svc := NewQuizService(repo, bundles)

	result, err := svc.Submit(context.Background(), "asha", scienceAnswers())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, model.StreamScience, result.RecommendedStream)
	assert.False(t, result.SubmittedAt.IsZero())
	assert.Same(t, result, repo.updatedResults["asha"])
}

func TestQuizSubmitInvalidatesCachedBundle(t *testing.T) {
	repo := newStubUserRepo(&model.User{Username: "asha", ClassLevel: model.ClassLevel12})
	bundles := newStubBundleCache()
	bundles.bundles["asha"] = &model.Bundle{RecommendedStream: model.StreamArts}
	svc := NewQuizService(repo, bundles)

	_, err := svc.Submit(context.Background(), "asha", scienceAnswers())
	require.NoError(t, err)
	assert.NotContains(t, bundles.bundles, "asha")
}

func TestQuizSubmitSurvivesStoreFailure(t *testing.T) {
	repo := newStubUserRepo(&model.User{Username: "asha", ClassLevel: model.ClassLevel12})
	repo.updateQuizErr = errors.New("write concern error")
	bundles := newStubBundleCache()
	bundles.failing = true
	svc := NewQuizService(repo, bundles)

	result, err := svc.Submit(context.Background(), "asha", scienceAnswers())

	// Persistence and cache failures are logged, never surfaced.
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, model.StreamScience, result.RecommendedStream)
}

func TestQuizQuestionsReturnsCatalog(t *testing.T) {
	svc := NewQuizService(newStubUserRepo(), newStubBundleCache())
	assert.Len(t, svc.Questions(), len(quiz.Catalog))
}
