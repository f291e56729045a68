package cache

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/seeker/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value interface{}
		want  string
	}{
		{
			name:  "store and retrieve string",
			key:   "test-key-1",
			value: "test-value",
			want:  `"test-value"`,
		},
		{
			name: "store and retrieve struct",
			key:  "test-key-2",
			value: domain.SearchResponse{
				Results: []domain.SearchResult{{Title: "Eiffel Tower", URL: "https://example.com"}},
			},
			want: `{"results":[{"title":"Eiffel Tower","description":"","url":"https://example.com"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, time.Minute); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			raw, ok := got.(json.RawMessage)
			if !ok {
				t.Fatalf("Get() returned %T, want json.RawMessage", got)
			}
			if string(raw) != tt.want {
				t.Errorf("Get() = %s, want %s", raw, tt.want)
			}
		})
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	if err := cache.Set(ctx, "short", "expires-soon", time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err != domain.ErrCacheMiss {
		t.Errorf("Get() after expiration error = %v, want %v", err, domain.ErrCacheMiss)
	}

	// expired entries count toward Size until swept
	if size := cache.Size(); size != 1 {
		t.Errorf("Size() = %d, want 1 before sweep", size)
	}
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()

	_, err := cache.Get(context.Background(), "non-existent-key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_Get_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, "k", "abc", time.Minute)

	first, _ := cache.Get(ctx, "k")
	raw := first.(json.RawMessage)
	raw[1] = 'z'

	second, _ := cache.Get(ctx, "k")
	if string(second.(json.RawMessage)) != `"abc"` {
		t.Errorf("stored value was mutated through Get result: %s", second)
	}
}

func TestMemoryCache_Set_Unmarshalable(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()

	if err := cache.Set(context.Background(), "bad", make(chan int), time.Minute); err == nil {
		t.Error("Set() error = nil, want error for value that cannot be JSON encoded")
	}
	if cache.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after failed Set", cache.Size())
	}
}

func TestMemoryCache_Purge(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, "old", 1, time.Millisecond)
	cache.Set(ctx, "fresh", 2, time.Hour)

	cache.purge(time.Now().Add(time.Second))

	if size := cache.Size(); size != 1 {
		t.Errorf("Size() = %d, want 1 after purge", size)
	}
	if _, err := cache.Get(ctx, "fresh"); err != nil {
		t.Errorf("Get(fresh) error = %v, want nil", err)
	}
}

func TestMemoryCache_BackgroundSweep(t *testing.T) {
	cache := NewMemoryCacheWithSweep(5 * time.Millisecond)
	defer cache.Close()

	cache.Set(context.Background(), "gone", 1, time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for cache.Size() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if size := cache.Size(); size != 0 {
		t.Errorf("Size() = %d, want 0 after background sweep", size)
	}
}

func TestMemoryCache_Size(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := cache.Set(ctx, string(rune('a'+i)), i, time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if size := cache.Size(); size != 5 {
		t.Fatalf("Size() = %d, want 5", size)
	}

	cache.Set(ctx, "a", "overwritten", time.Minute)

	if size := cache.Size(); size != 5 {
		t.Errorf("Size() = %d, want 5 after overwrite", size)
	}
}

func TestMemoryCache_CloseTwice(t *testing.T) {
	cache := NewMemoryCache()
	cache.Close()
	cache.Close()
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := string(rune('a' + id))
			if err := cache.Set(ctx, key, id, time.Minute); err != nil {
				t.Errorf("Concurrent Set() error = %v", err)
			}
			if _, err := cache.Get(ctx, key); err != nil {
				t.Errorf("Concurrent Get() error = %v", err)
			}
		}(i)
	}
	wg.Wait()
}
