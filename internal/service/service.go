package service

import (
	"context"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository"
	"go.uber.org/zap"
)

type Comment interface {
	Create(ctx context.Context, caller model.Caller, comment model.Comment, meta model.RequestMeta) (*model.Comment, error)
	Find(ctx context.Context, caller model.Caller, query model.CommentQuery) ([]*model.FullComment, error)
	Count(ctx context.Context, caller model.Caller, query model.CommentQuery) (int64, error)
	FindByID(ctx context.Context, caller model.Caller, id int64, includePost bool) (*model.FullComment, error)
	Update(ctx context.Context, caller model.Caller, id int64, update model.CommentUpdate) (*model.Comment, error)
	Approve(ctx context.Context, caller model.Caller, id int64) (*model.Comment, error)
	Delete(ctx context.Context, caller model.Caller, id int64) error
}

type UserCache interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type Analytics interface {
	CommentCreated(comment model.Comment)
}

type Health interface {
	Check(ctx context.Context) error
}

type Service struct {
	Comment
	UserCache
	Health
}

func New(logger *zap.Logger, repo *repository.Repository, cfg config.ServiceConfig) *Service {
	var analytics Analytics = noopAnalytics{}
	if cfg.Analytics.Enabled {
		analytics = newAnalyticsService(logger, repo, cfg.Analytics.Timeout)
	}

	return &Service{
		Comment:   newCommentService(logger, repo, analytics, cfg.Comments),
		UserCache: newUserCacheService(logger, repo, cfg.Cache),
		Health:    newHealthService(repo),
	}
}
