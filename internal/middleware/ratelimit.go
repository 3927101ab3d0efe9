// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio/internal/transport"
)

// Limiter decides whether one more request under key fits its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// limiterEntry tracks request timestamps for a single key.
type limiterEntry struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// MemoryLimiter is a per-process sliding window limiter. Idle keys are
// evicted by a background goroutine; call Stop to end it.
type MemoryLimiter struct {
	mu      sync.RWMutex
	clients map[string]*limiterEntry
	limit   int
	window  time.Duration
	stopCh  chan struct{}
}

// NewMemoryLimiter allows limit requests per key in any window-long span.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	rl := &MemoryLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *MemoryLimiter) Stop() {
	close(rl.stopCh)
}

// Allow implements Limiter.
func (rl *MemoryLimiter) Allow(_ context.Context, key string) bool {
	rl.mu.RLock()
	entry, exists := rl.clients[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		entry, exists = rl.clients[key]
		if !exists {
			entry = &limiterEntry{}
			rl.clients[key] = entry
		}
		rl.mu.Unlock()
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	valid := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	entry.timestamps = valid

	if len(entry.timestamps) >= rl.limit {
		return false
	}

	entry.timestamps = append(entry.timestamps, now)
	return true
}

// cleanup removes entries with no activity inside the window.
func (rl *MemoryLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.clients {
		entry.mu.Lock()
		idle := len(entry.timestamps) == 0 || !entry.timestamps[len(entry.timestamps)-1].After(cutoff)
		entry.mu.Unlock()

		if idle {
			delete(rl.clients, key)
		}
	}
}

// size returns the number of tracked keys.
func (rl *MemoryLimiter) size() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.clients)
}

// ValkeyLimiter is a fixed window limiter shared by every instance. The
// counter for a key lives under ratelimit:<key>:<window number> and
// expires with the window. Valkey errors let the request through.
type ValkeyLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewValkeyLimiter allows limit requests per key per window.
func NewValkeyLimiter(client *redis.Client, limit int, window time.Duration) *ValkeyLimiter {
	return &ValkeyLimiter{client: client, limit: limit, window: window, now: time.Now}
}

// Allow implements Limiter.
func (vl *ValkeyLimiter) Allow(ctx context.Context, key string) bool {
	slot := vl.now().UnixNano() / int64(vl.window)
	k := "ratelimit:" + key + ":" + strconv.FormatInt(slot, 10)

	pipe := vl.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, vl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err)
		return true
	}
	return incr.Val() <= int64(vl.limit)
}

// RateLimit rejects requests over the limiter's budget with a JSON 429.
// Keys are the scope name plus the client IP.
func RateLimit(l Limiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(r.Context(), scope+":"+clientIP(r)) {
				transport.WriteError(w, http.StatusTooManyRequests, "Too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
