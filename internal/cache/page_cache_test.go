package cache

import (
	"testing"
	"time"

	"miniblog/pkg/config"
)

func setupTestCache(t *testing.T, ttl time.Duration) *PageCache {
	if err := config.InitTest(); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	client, err := InitRedis()
	if err != nil {
		t.Fatalf("Failed to connect to test redis: %v", err)
	}

	pageCache := NewPageCache(client, ttl)
	if err := pageCache.Clear(); err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}
	return pageCache
}

func TestPageCache_SetAndGet(t *testing.T) {
	pageCache := setupTestCache(t, time.Minute)

	_, hit, err := pageCache.Get("/?page=1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit on an empty cache")
	}

	if err := pageCache.Set("/?page=1", []byte(`{"posts":[]}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	body, hit, err := pageCache.Get("/?page=1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() missed after Set()")
	}
	if string(body) != `{"posts":[]}` {
		t.Errorf("Get() body = %q", body)
	}
}

// The cache stays stale after data changes: nothing but TTL expiry or
// an explicit Clear drops an entry.
func TestPageCache_ClearIsTheOnlyManualInvalidation(t *testing.T) {
	pageCache := setupTestCache(t, time.Minute)

	if err := pageCache.Set("/", []byte("stale listing")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Still served after "the data changed" (nothing touches the cache).
	body, hit, err := pageCache.Get("/")
	if err != nil || !hit {
		t.Fatalf("Get() = hit=%v, err=%v, want stale hit", hit, err)
	}
	if string(body) != "stale listing" {
		t.Errorf("Get() body = %q, want stale content", body)
	}

	if err := pageCache.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	_, hit, err = pageCache.Get("/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit after explicit Clear()")
	}
}

func TestPageCache_TTLExpiry(t *testing.T) {
	pageCache := setupTestCache(t, 500*time.Millisecond)

	if err := pageCache.Set("/", []byte("short lived")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	_, hit, err := pageCache.Get("/")
	if err != nil || !hit {
		t.Fatalf("Get() = hit=%v, err=%v before expiry", hit, err)
	}

	time.Sleep(700 * time.Millisecond)

	_, hit, err = pageCache.Get("/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit after TTL expiry")
	}
}
