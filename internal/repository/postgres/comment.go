package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/jackc/pgx/v5"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const commentColumns = `c.id, c.post_id, c.parent_id, c.user_id, c.author_name, c.author_email, c.content, c.status, c.ip_address, c.user_agent, c.created_at, c.updated_at`

type commentRepo struct {
	db DBTX
}

func newCommentRepo(db DBTX) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments(post_id, parent_id, user_id, author_name, author_email, content, status, ip_address, user_agent)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		comment.PostID,
		comment.ParentID,
		comment.UserID,
		comment.AuthorName,
		comment.AuthorEmail,
		comment.Content,
		string(comment.Status),
		comment.IPAddress,
		comment.UserAgent,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	return scanComment(r.db.QueryRow(
		ctx,
		"SELECT "+commentColumns+" FROM comments c WHERE c.id = $1",
		id,
	))
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *commentRepo) FindByIDForUpdate(ctx context.Context, id int64) (*model.Comment, error) {
	return scanComment(r.db.QueryRow(
		ctx,
		"SELECT "+commentColumns+" FROM comments c WHERE c.id = $1 FOR UPDATE",
		id,
	))
}

func (r *commentRepo) Find(ctx context.Context, filter model.CommentFilter) ([]*model.Comment, error) {
	where, args := commentWhere(filter)

	query := "SELECT " + commentColumns + " FROM comments c" + where +
		" ORDER BY c.created_at DESC, c.id DESC" +
		" LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectComments(rows)
}

func (r *commentRepo) Count(ctx context.Context, filter model.CommentFilter) (int64, error) {
	where, args := commentWhere(filter)

	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM comments c"+where, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// FindReplies returns the direct replies of parentIDs, oldest first. A nil status returns every status.
func (r *commentRepo) FindReplies(ctx context.Context, parentIDs []int64, status *model.CommentStatus) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	query := "SELECT " + commentColumns + " FROM comments c WHERE c.parent_id = ANY($1)"
	args := []any{parentIDs}
	if status != nil {
		query += " AND c.status = $2"
		args = append(args, string(*status))
	}
	query += " ORDER BY c.id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectComments(rows)
}

// Update overwrites the non-nil fields and bumps updated_at.
func (r *commentRepo) Update(ctx context.Context, id int64, content *string, status *model.CommentStatus) (*model.Comment, error) {
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	return scanComment(r.db.QueryRow(
		ctx,
		`UPDATE comments c SET content = COALESCE($2, c.content), status = COALESCE($3, c.status), updated_at = $4
		WHERE c.id = $1
		RETURNING `+commentColumns,
		id,
		content,
		statusArg,
		time.Now().UTC(),
	))
}

func (r *commentRepo) UpdateStatus(ctx context.Context, id int64, status model.CommentStatus) (*model.Comment, error) {
	return scanComment(r.db.QueryRow(
		ctx,
		`UPDATE comments c SET status = $2, updated_at = $3
		WHERE c.id = $1
		RETURNING `+commentColumns,
		id,
		string(status),
		time.Now().UTC(),
	))
}

// DeleteTree removes the comment and all of its descendants and returns the number of deleted rows.
func (r *commentRepo) DeleteTree(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`WITH RECURSIVE tree AS (
			SELECT id FROM comments WHERE id = $1
			UNION ALL
			SELECT c.id FROM comments c JOIN tree t ON c.parent_id = t.id
		)
		DELETE FROM comments WHERE id IN (SELECT id FROM tree)`,
		id,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func commentWhere(filter model.CommentFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.PostID != nil {
		args = append(args, *filter.PostID)
		conds = append(conds, "c.post_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, "c.status = $"+strconv.Itoa(len(args)))
	}
	if filter.AuthorEmail != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.AuthorEmail)+"%")
		conds = append(conds, "c.author_email ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.TopLevelOnly {
		conds = append(conds, "c.parent_id IS NULL")
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var (
		comment model.Comment
		status  string
	)
	if err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.ParentID,
		&comment.UserID,
		&comment.AuthorName,
		&comment.AuthorEmail,
		&comment.Content,
		&status,
		&comment.IPAddress,
		&comment.UserAgent,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	comment.Status = model.CommentStatus(status)

	return &comment, nil
}

func collectComments(rows pgx.Rows) ([]*model.Comment, error) {
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
