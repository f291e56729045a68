package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/metrics"
	"go.uber.org/zap"
)

// CachingSearchClient serves repeated queries from a cache before calling
// the wrapped client. Only successful responses are cached.
type CachingSearchClient struct {
	next   domain.SearchClient
	cache  domain.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingSearchClient wraps next with a response cache
func NewCachingSearchClient(next domain.SearchClient, cache domain.CacheRepository, ttl time.Duration, logger *zap.Logger) *CachingSearchClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingSearchClient{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("search_cache"),
	}
}

// Search implements domain.SearchClient
func (c *CachingSearchClient) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	key := cacheKey(query)

	if cached, ok := c.lookup(ctx, key); ok {
		metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.SearchCacheLookups.WithLabelValues("miss").Inc()

	resp, err := c.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, resp, c.ttl); err != nil {
		// caching is best effort
		c.logger.Warn("failed to cache search response", zap.String("key", key), zap.Error(err))
	}

	return resp, nil
}

// lookup decodes a cached response. Values that are not JSON are treated as misses.
func (c *CachingSearchClient) lookup(ctx context.Context, key string) (*domain.SearchResponse, bool) {
	value, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	switch v := value.(type) {
	case *domain.SearchResponse:
		return v, true
	case json.RawMessage:
		var resp domain.SearchResponse
		if err := json.Unmarshal(v, &resp); err != nil {
			c.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
			return nil, false
		}
		return &resp, true
	default:
		return nil, false
	}
}
