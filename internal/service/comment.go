package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository"
	"github.com/Vlex127/ukoni/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	analytics Analytics
	cfg       config.CommentsConfig
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, analytics Analytics, cfg config.CommentsConfig) Comment {
	return &commentService{
		logger:    logger,
		repo:      repo,
		analytics: analytics,
		cfg:       cfg,
	}
}

func (s *commentService) Create(ctx context.Context, caller model.Caller, comment model.Comment, meta model.RequestMeta) (*model.Comment, error) {
	authorName, authorEmail, err := normalizeAuthor(comment.AuthorName, comment.AuthorEmail)
	if err != nil {
		return nil, err
	}
	content, err := normalizeContent(comment.Content)
	if err != nil {
		return nil, err
	}

	comment.ID = 0
	comment.AuthorName = authorName
	comment.AuthorEmail = authorEmail
	comment.Content = content
	comment.Status = model.CommentStatusPending
	comment.UserID = nil
	if caller.IsAuthenticated() {
		userID := caller.UserID
		comment.UserID = &userID
	}
	comment.IPAddress = optional(meta.IPAddress)
	comment.UserAgent = optional(meta.UserAgent)

	var created *model.Comment
	err = s.repo.Postgres.WithTx(ctx, func(tx *postgres.PostgresRepository) error {
		exists, err := tx.Post.Exists(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPostNotFound
		}

		if comment.ParentID != nil {
			parent, err := tx.Comment.FindByID(ctx, *comment.ParentID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return ErrParentNotFound
				}
				return err
			}
			if parent.PostID != comment.PostID {
				return ErrParentPostMismatch
			}
		}

		created, err = tx.Comment.Create(ctx, comment)
		return err
	})
	if err != nil {
		return nil, s.internal(err, "failed to create comment on post(%d): %s", comment.PostID)
	}

	s.analytics.CommentCreated(*created)

	return created, nil
}

func (s *commentService) Find(ctx context.Context, caller model.Caller, query model.CommentQuery) ([]*model.FullComment, error) {
	status, err := validateQuery(query, true)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Postgres.Comment.Find(ctx, listFilter(caller, query, status))
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments: %s", err.Error())
		return nil, ErrInternal
	}

	if !query.IncludeReplies {
		full := make([]*model.FullComment, 0, len(comments))
		for _, c := range comments {
			full = append(full, &model.FullComment{Comment: *c})
		}
		return full, nil
	}

	replies, err := s.repo.Postgres.Comment.FindReplies(ctx, parentIDs(comments), replyStatusFilter(caller))
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comment replies: %s", err.Error())
		return nil, ErrInternal
	}

	return attachReplies(comments, replies), nil
}

func (s *commentService) Count(ctx context.Context, caller model.Caller, query model.CommentQuery) (int64, error) {
	status, err := validateQuery(query, false)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.Postgres.Comment.Count(ctx, countFilter(caller, query, status))
	if err != nil {
		s.logger.Sugar().Errorf("failed to count comments: %s", err.Error())
		return 0, ErrInternal
	}

	return count, nil
}

func (s *commentService) FindByID(ctx context.Context, caller model.Caller, id int64, includePost bool) (*model.FullComment, error) {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to find comment(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	if !canView(caller, comment) {
		return nil, ErrCommentNotFound
	}

	replies, err := s.repo.Postgres.Comment.FindReplies(ctx, []int64{comment.ID}, replyStatusFilter(caller))
	if err != nil {
		s.logger.Sugar().Errorf("failed to find replies of comment(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	full := attachReplies([]*model.Comment{comment}, replies)[0]

	if includePost {
		post, err := s.repo.Postgres.Post.FindSummary(ctx, comment.PostID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrPostNotFound
			}

			s.logger.Sugar().Errorf("failed to find post(%d) of comment(%d): %s", comment.PostID, id, err.Error())
			return nil, ErrInternal
		}
		full.Post = post
	}

	return full, nil
}

func (s *commentService) Update(ctx context.Context, caller model.Caller, id int64, update model.CommentUpdate) (*model.Comment, error) {
	var updated *model.Comment
	err := s.repo.Postgres.WithTx(ctx, func(tx *postgres.PostgresRepository) error {
		current, err := tx.Comment.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCommentNotFound
			}
			return err
		}

		if !caller.IsAdmin() && !s.isOwner(caller, current) {
			if !current.IsApproved() {
				return ErrCommentNotFound
			}
			return ErrForbidden
		}

		if update.Content != nil && current.IsGuest() {
			return ErrGuestCommentImmutable
		}

		var status *model.CommentStatus
		if update.Status != nil && caller.IsAdmin() {
			parsed, err := model.ParseCommentStatus(*update.Status)
			if err != nil {
				return newValidationError("status", "must be one of pending, approved, spam, trash")
			}
			status = &parsed
		}

		var content *string
		if update.Content != nil {
			normalized, err := normalizeContent(*update.Content)
			if err != nil {
				return err
			}
			content = &normalized
		}

		if content == nil && status == nil {
			updated = current
			return nil
		}

		updated, err = tx.Comment.Update(ctx, id, content, status)
		return err
	})
	if err != nil {
		return nil, s.internal(err, "failed to update comment(%d): %s", id)
	}

	return updated, nil
}

// Approve is idempotent: approving an approved comment only refreshes updated_at.
func (s *commentService) Approve(ctx context.Context, caller model.Caller, id int64) (*model.Comment, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	var approved *model.Comment
	err := s.repo.Postgres.WithTx(ctx, func(tx *postgres.PostgresRepository) error {
		var err error
		approved, err = tx.Comment.UpdateStatus(ctx, id, model.CommentStatusApproved)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCommentNotFound
		}
		return err
	})
	if err != nil {
		return nil, s.internal(err, "failed to approve comment(%d): %s", id)
	}

	return approved, nil
}

func (s *commentService) Delete(ctx context.Context, caller model.Caller, id int64) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}

	err := s.repo.Postgres.WithTx(ctx, func(tx *postgres.PostgresRepository) error {
		deleted, err := tx.Comment.DeleteTree(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrCommentNotFound
		}

		s.logger.Sugar().Infof("deleted comment(%d) with %d descendant(s)", id, deleted-1)
		return nil
	})
	if err != nil {
		return s.internal(err, "failed to delete comment(%d): %s", id)
	}

	return nil
}

func (s *commentService) isOwner(caller model.Caller, comment *model.Comment) bool {
	if !caller.IsAuthenticated() {
		return false
	}

	if s.cfg.OwnerMatch == config.OwnerMatchEmail {
		return caller.Email != "" && strings.EqualFold(caller.Email, comment.AuthorEmail)
	}

	return comment.UserID != nil && *comment.UserID == caller.UserID
}

// internal passes domain errors through and logs anything else, which then surfaces as ErrInternal.
// format receives id first and the error text second.
func (s *commentService) internal(err error, format string, id int64) error {
	if isDomainError(err) {
		return err
	}

	s.logger.Sugar().Errorf(format, id, err.Error())
	return ErrInternal
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
