package service

import "github.com/Vlex127/ukoni/internal/model"

const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// visibleStatus narrows the requested status to what the caller may see. Non-admins only ever
// see approved comments, whatever they asked for.
func visibleStatus(caller model.Caller, requested *model.CommentStatus) *model.CommentStatus {
	if caller.IsAdmin() {
		return requested
	}

	approved := model.CommentStatusApproved
	return &approved
}

func listFilter(caller model.Caller, query model.CommentQuery, status *model.CommentStatus) model.CommentFilter {
	return model.CommentFilter{
		PostID:       query.PostID,
		Status:       visibleStatus(caller, status),
		AuthorEmail:  query.AuthorEmail,
		TopLevelOnly: true,
		Limit:        query.Limit,
		Offset:       query.Skip,
	}
}

// countFilter matches replies as well as top-level comments.
func countFilter(caller model.Caller, query model.CommentQuery, status *model.CommentStatus) model.CommentFilter {
	return model.CommentFilter{
		PostID:      query.PostID,
		Status:      visibleStatus(caller, status),
		AuthorEmail: query.AuthorEmail,
	}
}

// replyStatusFilter gates replies on their own status. The caller's status and author
// filters are not applied to replies.
func replyStatusFilter(caller model.Caller) *model.CommentStatus {
	return visibleStatus(caller, nil)
}

func canView(caller model.Caller, comment *model.Comment) bool {
	return caller.IsAdmin() || comment.IsApproved()
}

// attachReplies groups replies under their parents, keeping the parents' order and the
// replies' order within each parent. Replies whose parent is not in parents are dropped.
func attachReplies(parents []*model.Comment, replies []*model.Comment) []*model.FullComment {
	full := make([]*model.FullComment, 0, len(parents))
	byID := make(map[int64]*model.FullComment, len(parents))
	for _, parent := range parents {
		fc := &model.FullComment{
			Comment: *parent,
			Replies: []*model.Comment{},
		}
		full = append(full, fc)
		byID[parent.ID] = fc
	}

	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		if fc, ok := byID[*reply.ParentID]; ok {
			fc.Replies = append(fc.Replies, reply)
		}
	}

	return full
}

func parentIDs(comments []*model.Comment) []int64 {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func validateQuery(query model.CommentQuery, paginated bool) (*model.CommentStatus, error) {
	var fields []FieldError

	if paginated {
		if query.Skip < 0 {
			fields = append(fields, FieldError{Field: "skip", Message: "must be greater than or equal to 0"})
		}
		if query.Limit < 1 || query.Limit > MaxListLimit {
			fields = append(fields, FieldError{Field: "limit", Message: "must be between 1 and 100"})
		}
	}

	var status *model.CommentStatus
	if query.Status != "" {
		parsed, err := model.ParseCommentStatus(query.Status)
		if err != nil {
			fields = append(fields, FieldError{Field: "status", Message: "must be one of pending, approved, spam, trash"})
		} else {
			status = &parsed
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return status, nil
}
