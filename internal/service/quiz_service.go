package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"careerdisha/internal/cache"
	"careerdisha/internal/logger"
	"careerdisha/internal/model"
	"careerdisha/internal/quiz"
	"careerdisha/internal/repository"
)

// QuizService scores assessment submissions and persists the result against
// the student.
type QuizService struct {
	scorer  *quiz.Scorer
	users   repository.UserRepo
	bundles cache.BundleCache
}

func NewQuizService(users repository.UserRepo, bundles cache.BundleCache) *QuizService {
	return &QuizService{
		scorer:  quiz.NewScorer(),
		users:   users,
		bundles: bundles,
	}
}

// Questions returns the flattened assessment catalog.
func (s *QuizService) Questions() []model.Question {
	return quiz.Catalog
}

// Submit scores the answer vector and returns the result. Persisting the
// result and invalidating the cached bundle are fire-and-log side effects: a
// store or cache failure never fails the scoring response.
func (s *QuizService) Submit(ctx context.Context, username string, answers []interface{}) (*model.QuizResult, error) {
	result := s.scorer.Score(answers)
	result.SubmittedAt = time.Now()

	if err := s.users.UpdateQuizResult(ctx, username, result); err != nil {
		logger.Error("quiz result persistence failed",
			zap.String("username", username), zap.Error(err))
	}
	if err := s.bundles.Invalidate(ctx, username); err != nil {
		logger.Warn("bundle cache invalidation failed",
			zap.String("username", username), zap.Error(err))
	}

	logger.Info("quiz scored",
		zap.String("username", username),
		zap.String("recommendedStream", string(result.RecommendedStream)),
		zap.Float64("aptitudePercentage", result.AptitudePercentage))

	return result, nil
}
