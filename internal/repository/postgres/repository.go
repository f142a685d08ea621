package postgres

import (
	"context"
	"errors"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so every repo runs the same
// queries inside or outside a transaction.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Post interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindSummary(ctx context.Context, id int64) (*model.PostSummary, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Comment, error)
	Find(ctx context.Context, filter model.CommentFilter) ([]*model.Comment, error)
	Count(ctx context.Context, filter model.CommentFilter) (int64, error)
	FindReplies(ctx context.Context, parentIDs []int64, status *model.CommentStatus) ([]*model.Comment, error)
	Update(ctx context.Context, id int64, content *string, status *model.CommentStatus) (*model.Comment, error)
	UpdateStatus(ctx context.Context, id int64, status model.CommentStatus) (*model.Comment, error)
	DeleteTree(ctx context.Context, id int64) (int64, error)
}

type User interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type PostgresRepository struct {
	db     DBTX
	logger *zap.Logger
	Post
	Comment
	User
}

func New(db DBTX, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		logger:  logger,
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		User:    newUserRepo(db),
	}
}

// WithTx runs fn against repositories bound to a single transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
func (r *PostgresRepository) WithTx(ctx context.Context, fn func(tx *PostgresRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(New(tx, r.logger)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Sugar().Errorf("failed to rollback transaction: %s", rbErr.Error())
		}
		return err
	}

	return tx.Commit(ctx)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ping reports nil when the underlying DBTX cannot be pinged, as with a transaction.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	p, ok := r.db.(pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}
