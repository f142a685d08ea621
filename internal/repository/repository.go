package repository

import (
	"github.com/Vlex127/ukoni/internal/repository/postgres"
	"github.com/Vlex127/ukoni/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
}

func New(db postgres.DBTX, rdb *redis.Client, logger *zap.Logger) *Repository {
	return &Repository{
		Postgres: postgres.New(db, logger),
		Redis:    redisrepo.New(rdb),
	}
}
