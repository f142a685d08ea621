package redisrepo

import (
	"fmt"
	"time"
)

const (
	ANALYTICS_COMMENTS_TOTAL_KEY = "analytics:comments:total"
	USER_CACHE_KEY               = "user-cache:%s"               // <email>
	ANALYTICS_COMMENTS_POST_KEY  = "analytics:comments:post:%d"  // <postID>
	ANALYTICS_COMMENTS_DAILY_KEY = "analytics:comments:daily:%s" // <YYYY-MM-DD>
)

// UserCacheKey expects a lowercased email, the form users are looked up by.
func UserCacheKey(email string) string {
	return fmt.Sprintf(USER_CACHE_KEY, email)
}

func AnalyticsCommentsPostKey(postID int64) string {
	return fmt.Sprintf(ANALYTICS_COMMENTS_POST_KEY, postID)
}

func AnalyticsCommentsDailyKey(day time.Time) string {
	return fmt.Sprintf(ANALYTICS_COMMENTS_DAILY_KEY, day.UTC().Format(time.DateOnly))
}
