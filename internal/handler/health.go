package handler

import (
	"net/http"

	"github.com/Vlex127/ukoni/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	if err := h.services.Health.Check(c.Request.Context()); err != nil {
		h.logger.Sugar().Errorf("health check failed: %s", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.NewBasicResponse(false, "unavailable"))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}
