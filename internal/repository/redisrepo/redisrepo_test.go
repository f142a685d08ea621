package redisrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vlex127/ukoni/internal/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb), mr
}

func TestGetJSONRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	user := model.User{ID: 1, Email: "jane@x.com", Username: "jane", IsAdmin: true}
	if err := repo.SetJSON(ctx, UserCacheKey(user.Email), user, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	got, err := Get[model.User](repo.Default, ctx, UserCacheKey("jane@x.com"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || *got != user {
		t.Fatalf("Get = %+v, want %+v", got, user)
	}
}

func TestGetCachedMissAndAbsentKey(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := Get[model.User](repo.Default, ctx, "missing"); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil for absent key, got %v", err)
	}

	if err := repo.SetJSON(ctx, "nobody", nil, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	got, err := Get[model.User](repo.Default, ctx, "nobody")
	if err != nil || got != nil {
		t.Fatalf("cached miss should return (nil, nil), got %v, %v", got, err)
	}
}

func TestSetJSONAppliesTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if mr.Exists("k") {
		t.Fatal("key should have expired")
	}
}

func TestRecordComment(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	repo.Analytics.(*analyticsRepo).now = func() time.Time { return day }

	for _, postID := range []int64{1, 1, 2} {
		if err := repo.RecordComment(ctx, model.Comment{PostID: postID}); err != nil {
			t.Fatalf("RecordComment: %v", err)
		}
	}

	if got, _ := mr.Get(ANALYTICS_COMMENTS_TOTAL_KEY); got != "3" {
		t.Fatalf("total = %q, want 3", got)
	}
	if got, _ := mr.Get(AnalyticsCommentsPostKey(1)); got != "2" {
		t.Fatalf("post 1 = %q, want 2", got)
	}

	dailyKey := "analytics:comments:daily:2026-03-14"
	if got := mr.HGet(dailyKey, "2"); got != "1" {
		t.Fatalf("daily post 2 = %q, want 1", got)
	}
	if ttl := mr.TTL(dailyKey); ttl <= 0 {
		t.Fatalf("daily key should expire, ttl = %v", ttl)
	}
}

func TestPing(t *testing.T) {
	repo, mr := newTestRepo(t)

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	mr.SetError("ERR simulated failure")
	if err := repo.Ping(context.Background()); err == nil {
		t.Fatal("Ping should surface server errors")
	}
}
