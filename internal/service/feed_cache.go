package service

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-service/pkg/pagination"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedFeed caches rendered global-feed pages in redis for a fixed TTL.
// Only the global view is cached; the group, profile and following views pass
// straight through to the wrapped Feed.
type cachedFeed struct {
	Feed
	logger *zap.Logger
	cache  redisrepo.Default
	ttl    time.Duration
}

func newCachedFeed(logger *zap.Logger, feed Feed, cache redisrepo.Default, ttl time.Duration) Feed {
	return &cachedFeed{
		Feed:   feed,
		logger: logger,
		cache:  cache,
		ttl:    ttl,
	}
}

func (s *cachedFeed) Global(ctx context.Context, page int) (*pagination.Page[*model.FeedPost], error) {
	key := redisrepo.GlobalFeedKey(page)

	cachedPage, err := redisrepo.Get[pagination.Page[*model.FeedPost]](s.cache, ctx, key)
	if err == nil && cachedPage != nil {
		return cachedPage, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get global feed page(%d) from redis: %s", page, err.Error())
	}

	feedPage, err := s.Feed.Global(ctx, page)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, feedPage, s.ttl); err != nil {
		s.logger.Sugar().Errorf("failed to set global feed page(%d) in redis: %s", page, err.Error())
	}

	return feedPage, nil
}
