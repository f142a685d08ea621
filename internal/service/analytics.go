package service

import (
	"context"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository"
	"go.uber.org/zap"
)

type analyticsService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	timeout time.Duration
}

func newAnalyticsService(logger *zap.Logger, repo *repository.Repository, timeout time.Duration) Analytics {
	return &analyticsService{
		logger:  logger,
		repo:    repo,
		timeout: timeout,
	}
}

// CommentCreated records the comment in the background. It never blocks the caller and
// failures are only logged.
func (s *analyticsService) CommentCreated(comment model.Comment) {
	go s.record(comment)
}

func (s *analyticsService) record(comment model.Comment) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Redis.Analytics.RecordComment(ctx, comment); err != nil {
		s.logger.Sugar().Errorf("failed to record analytics for comment(%d): %s", comment.ID, err.Error())
	}
}

type noopAnalytics struct{}

func (noopAnalytics) CommentCreated(model.Comment) {}
