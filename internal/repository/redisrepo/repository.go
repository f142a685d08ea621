package redisrepo

import (
	"context"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/redis/go-redis/v9"
)

type Default interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
}

type Analytics interface {
	RecordComment(ctx context.Context, comment model.Comment) error
}

type RedisRepository struct {
	rdb *redis.Client
	Default
	Analytics
}

func New(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		rdb:       rdb,
		Default:   newDefaultRepo(rdb),
		Analytics: newAnalyticsRepo(rdb),
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
