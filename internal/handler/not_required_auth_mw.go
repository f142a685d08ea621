package handler

import (
	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware identifies the caller when it can and lets the request through
// as anonymous otherwise.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	accessToken, ok := bearerToken(c)
	if !ok {
		c.Next()
		return
	}

	caller, err := h.getCallerFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set(callerKey, caller)

	c.Next()
}
