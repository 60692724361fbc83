package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"diggi/config"
	"diggi/types"

	"github.com/redis/go-redis/v9"
)

// QueryCache memoizes pipeline results for identical query+context pairs at
// the web boundary. A nil *QueryCache is a valid no-op cache, so callers
// never branch on whether redis is configured.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache connects to redis, or returns nil (cache disabled) when no
// address is configured or the server is unreachable.
func NewQueryCache(addr, password string) *QueryCache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("cache: cannot reach redis at %s: %v (memoization disabled)", addr, err)
		return nil
	}

	return &QueryCache{client: client, ttl: config.QueryCacheTTL}
}

func cacheKey(query, priorContext string) string {
	return "diggi:analyze:" + types.GenerateID(query+"\x00"+priorContext)
}

// Get returns the cached result for the exact query+context pair, or nil.
func (c *QueryCache) Get(ctx context.Context, query, priorContext string) *types.PipelineResult {
	if c == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, cacheKey(query, priorContext)).Result()
	if err != nil {
		return nil
	}

	var result types.PipelineResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil
	}
	return &result
}

// Put stores a successful result. Terminal-error results are never cached.
func (c *QueryCache) Put(ctx context.Context, query, priorContext string, result *types.PipelineResult) {
	if c == nil || result == nil || result.Error != "" {
		return
	}

	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(query, priorContext), b, c.ttl).Err(); err != nil {
		log.Printf("cache: set failed: %v", err)
	}
}
