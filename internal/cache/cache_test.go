// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, responseKeyPrefix+"*").Result()
		keys = append(keys, generationKey)
		client.Del(ctx, keys...)
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(envOr("VALKEY_HOST", "localhost")+":"+envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestResponseCacheSetAndGet(t *testing.T) {
	rc := NewResponseCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	if data, ok := rc.Get(ctx, "/api/categories"); ok || data != nil {
		t.Error("expected cache miss")
	}

	body := []byte(`[{"slug":"digital-ads"}]`)
	rc.Set(ctx, "/api/categories", body)

	data, ok := rc.Get(ctx, "/api/categories")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}
}

func TestResponseCacheInvalidateAll(t *testing.T) {
	rc := NewResponseCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	keys := []string{"/api/case-studies", "/api/testimonials", "/api/case-studies/browse?page=2"}
	for _, k := range keys {
		rc.Set(ctx, k, []byte("x"))
	}

	before, ok := rc.Generation(ctx)
	if !ok {
		t.Fatal("Generation unreadable")
	}

	rc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, ok := rc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
	if after, ok := rc.Generation(ctx); !ok || after != before+1 {
		t.Errorf("Generation after InvalidateAll = %d, %v; want %d", after, ok, before+1)
	}
}

func TestNewResponseCacheDefaultTTL(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	if rc.ttl != DefaultTTL {
		t.Errorf("expected DefaultTTL (%v), got %v", DefaultTTL, rc.ttl)
	}
}

// memStore is an in-memory Store for middleware tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
	gen  int64
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) Set(_ context.Context, key string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), body...)
}

func (m *memStore) InvalidateAll(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.data = map[string][]byte{}
}

func (m *memStore) Generation(context.Context) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen, true
}

func TestMiddlewareCachesSuccessfulGets(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	calls := 0
	h := Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))

	for i, want := range []string{"MISS", "HIT"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/case-studies?featured=true", nil))
		if got := rec.Header().Get("X-Cache"); got != want {
			t.Errorf("request %d X-Cache = %q, want %q", i, got, want)
		}
		if rec.Body.String() != `{"ok":true}` {
			t.Errorf("request %d body = %q", i, rec.Body.String())
		}
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}

	// A different query is a different key.
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/case-studies", nil))
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}
}

func TestMiddlewareSkipsErrorsAndWrites(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	h := Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/case-studies/missing", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/case-studies", nil))

	if len(store.data) != 0 {
		t.Errorf("cached %d responses, want none", len(store.data))
	}
}

func TestMiddlewareDropsResponseRacingInvalidation(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	published := true
	h := Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visible := published
		if visible {
			// An admin unpublishes while this request is still rendering.
			published = false
			store.InvalidateAll(r.Context())
			w.Write([]byte(`[{"slug":"draft-now"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/case-studies", nil))
	if first.Body.String() != `[{"slug":"draft-now"}]` {
		t.Fatalf("first body = %q", first.Body.String())
	}
	if len(store.data) != 0 {
		t.Errorf("response computed across an invalidation was cached: %v", store.data)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/case-studies", nil))
	if got := second.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("second X-Cache = %q, want MISS", got)
	}
	if second.Body.String() != `[]` {
		t.Errorf("unpublished case study still served: %q", second.Body.String())
	}
}

func TestMiddlewareKeysByGeneration(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	h := Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	if _, ok := store.data["0:/api/categories"]; !ok {
		t.Errorf("keys = %v, want 0:/api/categories", store.data)
	}

	// A stale entry written under an old generation is never read back.
	store.gen = 1
	store.data["0:/api/categories"] = []byte(`"stale"`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	if rec.Body.String() != `{}` {
		t.Errorf("body = %q, want fresh response", rec.Body.String())
	}
}

func TestNoop(t *testing.T) {
	var s Store = Noop{}
	s.Set(context.Background(), "k", []byte("v"))
	if _, ok := s.Get(context.Background(), "k"); ok {
		t.Error("Noop returned a hit")
	}
	s.InvalidateAll(context.Background())
	if _, ok := s.Generation(context.Background()); ok {
		t.Error("Noop reported a readable generation")
	}
}
