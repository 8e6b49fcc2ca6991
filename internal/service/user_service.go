package service

import (
	"context"

	"go.uber.org/zap"

	"careerdisha/internal/apperr"
	"careerdisha/internal/cache"
	"careerdisha/internal/logger"
	"careerdisha/internal/model"
	"careerdisha/internal/repository"
)

// UserService serves profile reads and location updates.
type UserService struct {
	users   repository.UserRepo
	bundles cache.BundleCache
}

func NewUserService(users repository.UserRepo, bundles cache.BundleCache) *UserService {
	return &UserService{
		users:   users,
		bundles: bundles,
	}
}

// Me returns the student's profile including any stored quiz result.
func (s *UserService) Me(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Storage("users.GetByUsername", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", username)
	}
	return user, nil
}

// SetLocation stores the coordinates used for geo-ranking. The cached
// bundle is invalidated because ranking depends on them; a cache failure is
// logged and swallowed.
func (s *UserService) SetLocation(ctx context.Context, username string, lat, lng float64) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return apperr.Storage("users.GetByUsername", err)
	}
	if user == nil {
		return apperr.NotFound("user", username)
	}

	if err := s.users.UpdateLocation(ctx, username, lat, lng); err != nil {
		return apperr.Storage("users.UpdateLocation", err)
	}

	if err := s.bundles.Invalidate(ctx, username); err != nil {
		logger.Warn("bundle cache invalidation failed",
			zap.String("username", username), zap.Error(err))
	}
	return nil
}
