package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/seeker/backend/internal/domain"
)

// MockSearchClient is a mock implementation of domain.SearchClient
type MockSearchClient struct {
	mu        sync.Mutex
	responses map[string]*domain.SearchResponse
	errors    map[string]error
	fallback  *domain.SearchResponse
	calls     []string
}

func NewMockSearchClient() *MockSearchClient {
	return &MockSearchClient{
		responses: make(map[string]*domain.SearchResponse),
		errors:    make(map[string]error),
	}
}

func (m *MockSearchClient) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, query)
	if err, ok := m.errors[query]; ok {
		return nil, err
	}
	if resp, ok := m.responses[query]; ok {
		return resp, nil
	}
	if m.fallback != nil {
		return m.fallback, nil
	}
	return &domain.SearchResponse{Results: []domain.SearchResult{}}, nil
}

func (m *MockSearchClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data     map[string]interface{}
	getError error
	setError error
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string]interface{})}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

var errBoom = errors.New("boom")

func results(pairs ...string) *domain.SearchResponse {
	resp := &domain.SearchResponse{}
	for i := 0; i+1 < len(pairs); i += 2 {
		resp.Results = append(resp.Results, domain.SearchResult{
			Title:       pairs[i],
			Description: pairs[i+1],
			URL:         "https://example.com/" + pairs[i],
		})
	}
	return resp
}
