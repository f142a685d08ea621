package model

import (
	"errors"
	"time"
)

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusSpam     CommentStatus = "spam"
	CommentStatusTrash    CommentStatus = "trash"
)

var ErrUnknownCommentStatus = errors.New("unknown comment status")

// ParseCommentStatus accepts only the exact lowercase status names.
func ParseCommentStatus(s string) (CommentStatus, error) {
	switch status := CommentStatus(s); status {
	case CommentStatusPending, CommentStatusApproved, CommentStatusSpam, CommentStatusTrash:
		return status, nil
	default:
		return "", ErrUnknownCommentStatus
	}
}

type Comment struct {
	ID          int64         `json:"id"`
	PostID      int64         `json:"post_id"`
	ParentID    *int64        `json:"parent_id"`
	UserID      *int64        `json:"user_id"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail string        `json:"author_email"`
	Content     string        `json:"content"`
	Status      CommentStatus `json:"status"`
	IPAddress   *string       `json:"ip_address"`
	UserAgent   *string       `json:"user_agent"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsGuest reports whether the comment was left without an authenticated user.
func (c *Comment) IsGuest() bool {
	return c.UserID == nil
}

func (c *Comment) IsApproved() bool {
	return c.Status == CommentStatusApproved
}

// FullComment is a comment with its direct replies and, when requested, a summary of its post.
type FullComment struct {
	Comment Comment      `json:"comment"`
	Replies []*Comment   `json:"replies"`
	Post    *PostSummary `json:"post,omitempty"`
}

// CommentFilter narrows a comment query. A nil field is not filtered on. AuthorEmail is a
// case-insensitive substring match.
type CommentFilter struct {
	PostID       *int64
	Status       *CommentStatus
	AuthorEmail  string
	TopLevelOnly bool
	Limit        int
	Offset       int
}

// RequestMeta is what the transport knows about the submitter of a comment.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// CommentQuery is a listing request as the caller phrased it, before visibility rules apply.
type CommentQuery struct {
	PostID         *int64
	Status         string
	AuthorEmail    string
	IncludeReplies bool
	Skip           int
	Limit          int
}

// CommentUpdate carries the fields a caller asked to change. Nil fields are left untouched.
type CommentUpdate struct {
	Content *string
	Status  *string
}
