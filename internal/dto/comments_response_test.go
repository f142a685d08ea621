package dto

import (
	"testing"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewCommentResponseHidesRequestMeta(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	comment := &model.Comment{
		ID:          3,
		PostID:      1,
		ParentID:    ptr(int64(2)),
		UserID:      ptr(int64(7)),
		AuthorName:  "Jane Doe",
		AuthorEmail: "jane@x.com",
		Content:     "Hello",
		Status:      model.CommentStatusApproved,
		IPAddress:   ptr("203.0.113.9"),
		UserAgent:   ptr("curl/8"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	public := NewCommentResponse(comment, false)
	if public.IPAddress != nil || public.UserAgent != nil {
		t.Fatalf("request meta leaked: %+v", public)
	}
	if public.ID != 3 || *public.ParentID != 2 || *public.UserID != 7 || public.Status != "approved" || !public.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapping: %+v", public)
	}
	if comment.IPAddress == nil {
		t.Fatal("mapping must not modify the comment")
	}

	moderated := NewCommentResponse(comment, true)
	if moderated.IPAddress == nil || *moderated.IPAddress != "203.0.113.9" || *moderated.UserAgent != "curl/8" {
		t.Fatalf("moderators should see request meta: %+v", moderated)
	}
}

func TestNewCommentWithRepliesResponse(t *testing.T) {
	full := &model.FullComment{Comment: model.Comment{ID: 1, Status: model.CommentStatusApproved}}

	resp := NewCommentWithRepliesResponse(full, false)
	if resp.Replies == nil || len(resp.Replies) != 0 {
		t.Fatalf("replies = %#v, want empty non-nil slice", resp.Replies)
	}
	if resp.Post != nil {
		t.Fatalf("post = %+v, want nil", resp.Post)
	}

	full.Replies = []*model.Comment{{ID: 2, ParentID: ptr(int64(1)), IPAddress: ptr("198.51.100.1")}}
	full.Post = &model.PostSummary{ID: 9, Title: "Hello", Slug: "hello"}

	resp = NewCommentWithRepliesResponse(full, false)
	if len(resp.Replies) != 1 || resp.Replies[0].ID != 2 || resp.Replies[0].IPAddress != nil {
		t.Fatalf("replies = %+v", resp.Replies)
	}
	if resp.Post == nil || resp.Post.ID != 9 || resp.Post.Slug != "hello" {
		t.Fatalf("post = %+v", resp.Post)
	}
}
