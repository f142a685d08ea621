package dto

// CreateCommentDto has no status field: new comments are always pending.
type CreateCommentDto struct {
	PostID      int64  `json:"post_id" binding:"required,min=1"`
	ParentID    *int64 `json:"parent_id" binding:"omitempty,min=1"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

type UpdateCommentDto struct {
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type GetCommentsQuery struct {
	PostID         *int64 `form:"post_id" binding:"omitempty,min=1"`
	Status         string `form:"status"`
	AuthorEmail    string `form:"author_email" binding:"max=255"`
	IncludeReplies bool   `form:"include_replies"`
	Skip           int    `form:"skip,default=0" binding:"min=0"`
	Limit          int    `form:"limit,default=100" binding:"min=1,max=100"`
}

type CountCommentsQuery struct {
	PostID      *int64 `form:"post_id" binding:"omitempty,min=1"`
	Status      string `form:"status"`
	AuthorEmail string `form:"author_email" binding:"max=255"`
}

type GetCommentQuery struct {
	IncludePost bool `form:"include_post"`
}
