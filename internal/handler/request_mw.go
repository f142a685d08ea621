package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request-id"
	maxRequestIDLen = 128
)

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" || len(requestID) > maxRequestIDLen {
		requestID = uuid.NewString()
	}

	c.Set(requestIDKey, requestID)
	c.Header(requestIDHeader, requestID)

	c.Next()
}

func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path

	c.Next()

	status := c.Writer.Status()
	level := zapcore.InfoLevel
	switch {
	case status >= 500:
		level = zapcore.ErrorLevel
	case status >= 400:
		level = zapcore.WarnLevel
	}

	h.logger.Check(level, "request").Write(
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("method", c.Request.Method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.String("client_ip", c.ClientIP()),
	)
}
