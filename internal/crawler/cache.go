package crawler

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pageKeyPrefix = "page:"

// PageCache keeps fetched listing pages in redis. A nil *PageCache is a valid,
// disabled cache.
type PageCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *PageCache) Get(ctx context.Context, url string) (string, bool) {
	if c == nil || c.Client == nil {
		return "", false
	}
	val, err := c.Client.Get(ctx, pageKeyPrefix+url).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("url", url).Msg("page cache read failed")
		}
		return "", false
	}
	return val, true
}

func (c *PageCache) Set(ctx context.Context, url, html string) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Set(ctx, pageKeyPrefix+url, html, c.TTL).Err(); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("page cache write failed")
	}
}
