package dto

import (
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/jinzhu/copier"
)

type CommentResponse struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"post_id"`
	ParentID    *int64    `json:"parent_id"`
	UserID      *int64    `json:"user_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	IPAddress   *string   `json:"ip_address,omitempty"`
	UserAgent   *string   `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PostSummaryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type CommentWithRepliesResponse struct {
	CommentResponse
	Replies []CommentResponse    `json:"replies"`
	Post    *PostSummaryResponse `json:"post,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// NewCommentResponse maps a comment for the wire. Request metadata is only exposed to moderators.
func NewCommentResponse(comment *model.Comment, moderator bool) CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, comment)
	resp.Status = string(comment.Status)

	if !moderator {
		resp.IPAddress = nil
		resp.UserAgent = nil
	}

	return resp
}

func NewCommentWithRepliesResponse(full *model.FullComment, moderator bool) CommentWithRepliesResponse {
	resp := CommentWithRepliesResponse{
		CommentResponse: NewCommentResponse(&full.Comment, moderator),
		Replies:         make([]CommentResponse, 0, len(full.Replies)),
	}
	for _, reply := range full.Replies {
		resp.Replies = append(resp.Replies, NewCommentResponse(reply, moderator))
	}

	if full.Post != nil {
		var post PostSummaryResponse
		_ = copier.Copy(&post, full.Post)
		resp.Post = &post
	}

	return resp
}
