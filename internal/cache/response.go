// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached API responses.
	responseKeyPrefix = "api:"

	// generationKey counts invalidations. Middleware keys embed the
	// generation seen before the handler ran, so a response computed
	// across an invalidation is never served afterwards.
	generationKey = "api-gen"

	// DefaultTTL is how long a public response stays cached.
	DefaultTTL = 5 * time.Minute
)

// Store caches rendered public responses. Implementations log their own
// failures; a broken cache only costs a database round trip.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
	InvalidateAll(ctx context.Context)
	// Generation returns the current invalidation count. ok is false when
	// it cannot be read, in which case nothing should be cached.
	Generation(ctx context.Context) (gen int64, ok bool)
}

// ResponseCache keeps public JSON responses in Valkey.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get returns the cached body for key.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores body under key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Generation implements Store. A missing counter is generation 0.
func (rc *ResponseCache) Generation(ctx context.Context) (int64, bool) {
	gen, err := rc.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		slog.Warn("response cache generation error", "error", err)
		return 0, false
	}
	return gen, true
}

// InvalidateAll bumps the generation, which orphans every cached
// response, then deletes the orphaned keys by scanning for the prefix.
// Admin mutations call it since a single write can change several lists.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	if err := rc.client.Incr(ctx, generationKey).Err(); err != nil {
		slog.Warn("response cache generation bump error", "error", err)
	}

	var cursor uint64
	var deleted int
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, responseKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
}

// Noop is a Store that never holds anything. It stands in when Valkey is
// unavailable and in tests.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte) {}
func (Noop) InvalidateAll(context.Context) {}
func (Noop) Generation(context.Context) (int64, bool) { return 0, false }

// bodyRecorder captures a handler's status and body while passing them on.
// It does not expose http.Flusher; cached endpoints write whole JSON bodies.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware serves GET requests from store and fills it with successful
// JSON responses. The key is the cache generation plus the request path
// and raw query. A response is only stored if no invalidation happened
// while the handler ran.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			gen, ok := store.Generation(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("%d:%s", gen, r.URL.Path)
			if r.URL.RawQuery != "" {
				key += "?" + r.URL.RawQuery
			}

			if body, ok := store.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(body)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &bodyRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK || rec.buf.Len() == 0 {
				return
			}
			if now, ok := store.Generation(r.Context()); !ok || now != gen {
				return
			}
			store.Set(r.Context(), key, rec.buf.Bytes())
		})
	}
}
