package redisrepo

import (
	"context"
	"strconv"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/redis/go-redis/v9"
)

const dailyCountersTTL = 90 * 24 * time.Hour

type analyticsRepo struct {
	rdb *redis.Client
	now func() time.Time
}

func newAnalyticsRepo(rdb *redis.Client) Analytics {
	return &analyticsRepo{
		rdb: rdb,
		now: time.Now,
	}
}

// RecordComment bumps the global, per-post and per-day comment counters in one MULTI/EXEC.
func (r *analyticsRepo) RecordComment(ctx context.Context, comment model.Comment) error {
	dailyKey := AnalyticsCommentsDailyKey(r.now())

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, ANALYTICS_COMMENTS_TOTAL_KEY)
		pipe.Incr(ctx, AnalyticsCommentsPostKey(comment.PostID))
		pipe.HIncrBy(ctx, dailyKey, strconv.FormatInt(comment.PostID, 10), 1)
		pipe.Expire(ctx, dailyKey, dailyCountersTTL)
		return nil
	})
	return err
}
