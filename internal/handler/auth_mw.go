package handler

import (
	"errors"
	"net/http"

	"github.com/Vlex127/ukoni/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	if !h.authenticate(c) {
		return
	}

	c.Next()
}

// authenticate stores the caller behind the bearer token, or writes the error and aborts.
func (h *Handler) authenticate(c *gin.Context) bool {
	accessToken, ok := bearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return false
	}

	caller, err := h.getCallerFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		if errors.Is(err, errNotAuthorized) {
			c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		} else {
			h.errorResponse(c, err)
		}
		c.Abort()
		return false
	}

	c.Set(callerKey, caller)
	return true
}
