package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Vlex127/ukoni/internal/dto"
	"github.com/Vlex127/ukoni/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	caller := h.getCallerFromRequest(c)

	var input dto.CreateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindingErrorResponse(c, err)
		return
	}

	createdComment, err := h.services.Comment.Create(
		c.Request.Context(),
		caller,
		model.Comment{
			PostID:      input.PostID,
			ParentID:    input.ParentID,
			AuthorName:  input.AuthorName,
			AuthorEmail: input.AuthorEmail,
			Content:     input.Content,
		},
		model.RequestMeta{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		},
	)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(createdComment, caller.IsAdmin()))
}

func (h *Handler) commentsGet(c *gin.Context) {
	caller := h.getCallerFromRequest(c)

	var input dto.GetCommentsQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		h.bindingErrorResponse(c, err)
		return
	}

	comments, err := h.services.Comment.Find(c.Request.Context(), caller, model.CommentQuery{
		PostID:         input.PostID,
		Status:         input.Status,
		AuthorEmail:    input.AuthorEmail,
		IncludeReplies: input.IncludeReplies,
		Skip:           input.Skip,
		Limit:          input.Limit,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	if input.IncludeReplies {
		resp := make([]dto.CommentWithRepliesResponse, 0, len(comments))
		for _, comment := range comments {
			resp = append(resp, dto.NewCommentWithRepliesResponse(comment, caller.IsAdmin()))
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, dto.NewCommentResponse(&comment.Comment, caller.IsAdmin()))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) commentsCount(c *gin.Context) {
	var input dto.CountCommentsQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		h.bindingErrorResponse(c, err)
		return
	}

	count, err := h.services.Comment.Count(c.Request.Context(), h.getCallerFromRequest(c), model.CommentQuery{
		PostID:      input.PostID,
		Status:      input.Status,
		AuthorEmail: input.AuthorEmail,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *Handler) commentsGetByID(c *gin.Context) {
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	var input dto.GetCommentQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		h.bindingErrorResponse(c, err)
		return
	}

	caller := h.getCallerFromRequest(c)
	comment, err := h.services.Comment.FindByID(c.Request.Context(), caller, commentID, input.IncludePost)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentWithRepliesResponse(comment, caller.IsAdmin()))
}

func (h *Handler) commentsUpdate(c *gin.Context) {
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	var input dto.UpdateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindingErrorResponse(c, err)
		return
	}

	caller := h.getCallerFromRequest(c)
	updatedComment, err := h.services.Comment.Update(c.Request.Context(), caller, commentID, model.CommentUpdate{
		Content: input.Content,
		Status:  input.Status,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(updatedComment, caller.IsAdmin()))
}

func (h *Handler) commentsApprove(c *gin.Context) {
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	approvedComment, err := h.services.Comment.Approve(c.Request.Context(), h.getCallerFromRequest(c), commentID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(approvedComment, true))
}

func (h *Handler) commentsDelete(c *gin.Context) {
	commentID, ok := parseCommentID(c)
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), h.getCallerFromRequest(c), commentID); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "comment deleted"))
}

func parseCommentID(c *gin.Context) (int64, bool) {
	commentID, err := strconv.ParseInt(strings.TrimSpace(c.Param("commentID")), 10, 64)
	if err != nil || commentID < 1 {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return 0, false
	}

	return commentID, true
}
