package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// SearchClient defines the interface for querying the web search API
type SearchClient interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}
