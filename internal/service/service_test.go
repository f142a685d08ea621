package service

import (
	"sync"
	"testing"
	"time"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/model"
	"github.com/Vlex127/ukoni/internal/repository"
	"github.com/Vlex127/ukoni/internal/repository/postgres"
	"github.com/Vlex127/ukoni/internal/repository/redisrepo"
	"github.com/alicebob/miniredis/v2"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var commentColumnNames = []string{
	"id", "post_id", "parent_id", "user_id", "author_name", "author_email",
	"content", "status", "ip_address", "user_agent", "created_at", "updated_at",
}

var (
	anonymous = model.Anonymous()
	jane      = model.Caller{UserID: 7, Email: "jane@x.com", Role: model.RoleUser}
	admin     = model.Caller{UserID: 1, Email: "admin@x.com", Role: model.RoleAdmin}
)

type fakeAnalytics struct {
	mu      sync.Mutex
	created []model.Comment
}

func (f *fakeAnalytics) CommentCreated(comment model.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, comment)
}

func (f *fakeAnalytics) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type testEnv struct {
	mock      pgxmock.PgxPoolIface
	redis     *miniredis.Miniredis
	repo      *repository.Repository
	analytics *fakeAnalytics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return &testEnv{
		mock:  mock,
		redis: mr,
		repo: &repository.Repository{
			Postgres: postgres.New(mock, zap.NewNop()),
			Redis:    redisrepo.New(rdb),
		},
		analytics: &fakeAnalytics{},
	}
}

func (e *testEnv) comments(ownerMatch config.OwnerMatch) *commentService {
	return newCommentService(zap.NewNop(), e.repo, e.analytics, config.CommentsConfig{OwnerMatch: ownerMatch}).(*commentService)
}

func (e *testEnv) verify(t *testing.T) {
	t.Helper()
	if err := e.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func (e *testEnv) commentRows(comments ...model.Comment) *pgxmock.Rows {
	rows := e.mock.NewRows(commentColumnNames)
	for _, c := range comments {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			c.UpdatedAt = c.CreatedAt
		}
		rows.AddRow(
			c.ID, c.PostID, c.ParentID, c.UserID, c.AuthorName, c.AuthorEmail,
			c.Content, string(c.Status), c.IPAddress, c.UserAgent, c.CreatedAt, c.UpdatedAt,
		)
	}
	return rows
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewPicksAnalyticsImplementation(t *testing.T) {
	env := newTestEnv(t)

	disabled := New(zap.NewNop(), env.repo, config.ServiceConfig{})
	if _, ok := disabled.Comment.(*commentService).analytics.(noopAnalytics); !ok {
		t.Fatal("disabled analytics should use the no-op notifier")
	}

	enabled := New(zap.NewNop(), env.repo, config.ServiceConfig{
		Analytics: config.AnalyticsConfig{Enabled: true, Timeout: time.Second},
	})
	if _, ok := enabled.Comment.(*commentService).analytics.(*analyticsService); !ok {
		t.Fatal("enabled analytics should use the redis notifier")
	}
}
