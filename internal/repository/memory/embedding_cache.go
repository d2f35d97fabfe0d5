package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// EmbeddingCache keeps recently embedded query vectors in process so
// repeated mood queries skip the embedding provider round trip.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache(ttl time.Duration) *EmbeddingCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	// Purge expired vectors every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &EmbeddingCache{
		cache: c,
	}
}

func (r *EmbeddingCache) Get(query string) ([]float32, bool) {
	if x, found := r.cache.Get(cacheKey(query)); found {
		return x.([]float32), true
	}
	return nil, false
}

func (r *EmbeddingCache) Set(query string, vector []float32) {
	r.cache.Set(cacheKey(query), vector, cache.DefaultExpiration)
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
