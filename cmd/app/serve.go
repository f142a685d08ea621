package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/handler"
	"github.com/Vlex127/ukoni/internal/repository"
	"github.com/Vlex127/ukoni/internal/server"
	"github.com/Vlex127/ukoni/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !viper.GetBool("app.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connectPostgres(ctx, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	redisConfig := config.NewRedisConfig()
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
	})
	defer rdb.Close()
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	serviceConfig, err := config.NewServiceConfig()
	if err != nil {
		return err
	}

	repos := repository.New(db, rdb, logger)
	services := service.New(logger, repos, serviceConfig)
	handlers := handler.New(services, logger, config.NewAuthConfig().AccessSecret)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Sugar().Infof("Server started on :%s", serverConfig.Port)
		return srv.Run(serverConfig)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
