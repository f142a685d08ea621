package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vlex127/ukoni/internal/dto"
	"github.com/Vlex127/ukoni/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errNotAuthorized      = errors.New("user is not authorized")
	errNoAccess           = errors.New("no access")
	errInvalidCommentID   = errors.New("invalid comment ID")
	errInvalidRequestBody = errors.New("invalid request")
)

// errorResponse writes the status and envelope for an error returned by the service layer.
func (h *Handler) errorResponse(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]dto.FieldError, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationResponse(errInvalidRequestBody.Error(), fields))
	case errors.Is(err, service.ErrParentPostMismatch):
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrParentNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrGuestCommentImmutable):
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, service.ErrInternal.Error()))
	}
}

// bindingErrorResponse reports a request that could not be decoded or failed its binding rules.
func (h *Handler) bindingErrorResponse(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	fields := make([]dto.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Message: bindingMessage(fe)})
	}
	c.JSON(http.StatusBadRequest, dto.NewValidationResponse(errInvalidRequestBody.Error(), fields))
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
