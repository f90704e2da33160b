package redisrepo

import "fmt"

const (
	GLOBAL_FEED_KEY = "feed:global:%d" // <page>
	USER_CACHE_KEY  = "user-cache:%s"  // <userID>
)

func GlobalFeedKey(page int) string {
	return fmt.Sprintf(GLOBAL_FEED_KEY, page)
}

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}
