package handler

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/service"
	"github.com/Vlex127/ukoni/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const callerKey = "caller"

var registerTagNames sync.Once

type Handler struct {
	services     *service.Service
	logger       *zap.Logger
	accessSecret []byte
}

func New(services *service.Service, logger *zap.Logger, accessSecret []byte) *Handler {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(wireFieldName)
		}
	})

	return &Handler{
		services:     services,
		logger:       logger,
		accessSecret: accessSecret,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(h.requestIDMiddleware, h.accessLogMiddleware, gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.health)

		comments := v1.Group("/comments")
		{
			comments.POST("", h.notRequiredAuthMiddleware, h.commentsCreate)
			comments.GET("", h.notRequiredAuthMiddleware, h.commentsGet)
			comments.GET("/count", h.notRequiredAuthMiddleware, h.commentsCount)

			comment := comments.Group("/:commentID")
			{
				comment.GET("", h.notRequiredAuthMiddleware, h.commentsGetByID)
				comment.PUT("", h.authMiddleware, h.commentsUpdate)
				comment.POST("/approve", h.moderatorMiddleware, h.commentsApprove)
				comment.DELETE("", h.moderatorMiddleware, h.commentsDelete)
			}
		}
	}

	return r
}

func (h *Handler) getCallerFromAccessToken(ctx context.Context, accessToken string) (model.Caller, error) {
	claims, err := utils.DecodeJWT(accessToken, h.accessSecret)
	if err != nil {
		return model.Anonymous(), errNotAuthorized
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return model.Anonymous(), errNotAuthorized
	}

	user, err := h.services.UserCache.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return model.Anonymous(), errNotAuthorized
		}
		return model.Anonymous(), err
	}

	return model.CallerFromUser(user), nil
}

func (h *Handler) getCallerFromRequest(c *gin.Context) model.Caller {
	callerReq, _ := c.Get(callerKey)

	caller, ok := callerReq.(model.Caller)
	if !ok {
		return model.Anonymous()
	}

	return caller
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return accessToken, accessToken != ""
}

func wireFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
