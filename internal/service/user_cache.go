package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository"
	"github.com/Vlex127/ukoni/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type userCacheService struct {
	logger *zap.Logger
	repo   *repository.Repository
	cfg    config.CacheConfig
}

func newUserCacheService(logger *zap.Logger, repo *repository.Repository, cfg config.CacheConfig) UserCache {
	return &userCacheService{
		logger: logger,
		repo:   repo,
		cfg:    cfg,
	}
}

// FindByEmail reads through Redis to the users table. Emails match case-insensitively, so the
// cache is keyed by the lowercased address. Unknown emails are cached as misses for UserMissTTL.
// A Redis outage degrades to a direct database lookup.
func (s *userCacheService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	key := redisrepo.UserCacheKey(email)

	cachedUser, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, key)
	if err == nil {
		if cachedUser == nil {
			return nil, ErrUserNotFound
		}
		return cachedUser, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Sugar().Errorf("failed to get cached user(%s) from redis: %s", email, err.Error())
	}

	user, err := s.repo.Postgres.User.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if err := s.repo.Redis.Default.SetJSON(ctx, key, nil, s.cfg.UserMissTTL); err != nil {
				s.logger.Sugar().Errorf("failed to cache missing user(%s) in redis: %s", email, err.Error())
			}
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from postgres: %s", email, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, user, s.cfg.UserTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", email, err.Error())
	}

	return user, nil
}
