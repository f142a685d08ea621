package service

import (
	"context"
	"testing"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository/redisrepo"
	"go.uber.org/zap"
)

func TestAnalyticsRecordsInBackground(t *testing.T) {
	env := newTestEnv(t)
	analytics := newAnalyticsService(zap.NewNop(), env.repo, time.Second)

	analytics.CommentCreated(model.Comment{ID: 1, PostID: 3})

	deadline := time.Now().Add(2 * time.Second)
	for {
		if got, _ := env.redis.Get(redisrepo.AnalyticsCommentsPostKey(3)); got == "1" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("analytics counter was not recorded")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAnalyticsFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t)
	env.redis.SetError("ERR simulated failure")

	analytics := newAnalyticsService(zap.NewNop(), env.repo, time.Second).(*analyticsService)
	analytics.record(model.Comment{ID: 1, PostID: 3})

	noopAnalytics{}.CommentCreated(model.Comment{})
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	health := newHealthService(env.repo)

	env.mock.ExpectPing()
	if err := health.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}

	env.redis.SetError("ERR simulated failure")
	env.mock.ExpectPing()
	if err := health.Check(context.Background()); err == nil {
		t.Fatal("Check should report the redis failure")
	}

	env.verify(t)
}
