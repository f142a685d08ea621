package handler

import (
	"net/http"

	"github.com/Vlex127/ukoni/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) moderatorMiddleware(c *gin.Context) {
	if !h.authenticate(c) {
		return
	}

	if !h.getCallerFromRequest(c).IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewBasicResponse(false, errNoAccess.Error()))
		return
	}

	c.Next()
}
