package postgres

import (
	"context"

	"github.com/Vlex127/ukoni/internal/model"
)

type postRepo struct {
	db DBTX
}

func newPostRepo(db DBTX) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *postRepo) FindSummary(ctx context.Context, id int64) (*model.PostSummary, error) {
	var post model.PostSummary
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.id, p.title, p.slug FROM posts p WHERE p.id = $1",
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
	); err != nil {
		return nil, err
	}

	return &post, nil
}
