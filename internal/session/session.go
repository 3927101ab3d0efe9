// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session keeps admin sessions in Valkey. The browser only holds
// an opaque random id in the pf_session cookie; the payload is JSON under
// session:<id> and expires with the key.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio/internal/models"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "pf_session"

	// DefaultTTL is how long a session lives in Valkey.
	DefaultTTL = 24 * time.Hour

	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (64 hex chars).
	idLength = 32
)

// ErrNoSession is returned by Update when the request carries no cookie.
var ErrNoSession = errors.New("no session cookie")

// Data is the session payload. TwoFADone is false between the password
// step and a successful TOTP code for users with 2FA enabled.
type Data struct {
	UserID      uuid.UUID   `json:"user_id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
	TwoFADone   bool        `json:"two_fa_done"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Authenticated reports whether every login step has been completed.
func (d *Data) Authenticated() bool {
	return d != nil && d.TwoFADone
}

// Store manages session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store. With secure set the cookie is marked
// Secure and SameSite=None so a frontend on another origin can send it.
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{client: client, ttl: DefaultTTL, secure: secure}
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if s.secure {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// Create stores a new session and sets the cookie. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = time.Now()
	if err := s.save(ctx, id, data); err != nil {
		return "", err
	}

	http.SetCookie(w, s.cookie(id, int(s.ttl.Seconds())))
	return id, nil
}

func (s *Store) save(ctx context.Context, id string, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

// Get returns the session for the request cookie, or nil if there is none.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	return &data, nil
}

// Update replaces the session payload and resets its TTL.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ErrNoSession
	}
	return s.save(ctx, cookie.Value, data)
}

// Destroy removes the session and expires the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+cookie.Value).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	http.SetCookie(w, s.cookie("", -1))
	return nil
}

func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
