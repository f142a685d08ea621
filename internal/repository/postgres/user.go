package postgres

import (
	"context"

	"github.com/Vlex127/ukoni/internal/model"
)

type userRepo struct {
	db DBTX
}

func newUserRepo(db DBTX) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.email, u.username, u.is_admin FROM users u WHERE lower(u.email) = lower($1) AND u.is_active",
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.IsAdmin,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
