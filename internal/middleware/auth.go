// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"portfolio/internal/models"
	"portfolio/internal/session"
	"portfolio/internal/transport"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"

	// ActorKey is the context key for the acting admin loaded by RequireAdmin.
	ActorKey contextKey = "actor"
)

// SessionGetter reads the session attached to a request.
type SessionGetter interface {
	Get(ctx context.Context, r *http.Request) (*session.Data, error)
}

// UserLookup loads the account behind a session.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// LoadSession stores the request's session, if any, in the context. It
// does not enforce authentication.
func LoadSession(store SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				slog.Warn("load session failed", "error", err)
			}
			if data != nil {
				r = r.WithContext(WithSession(r.Context(), data))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is the guard every admin mutation sits behind. It answers
// 401 when there is no completed session and 403 when the account is
// gone, inactive or not an admin. Otherwise the freshly loaded user
// becomes the acting admin in the request context.
func RequireAdmin(users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromCtx(r.Context())
			if !sess.Authenticated() {
				transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}

			user, err := users.FindByID(r.Context(), sess.UserID)
			if err != nil {
				slog.Error("load acting admin failed", "error", err, "user_id", sess.UserID)
				transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
				return
			}
			if user == nil || !user.CanMutate() {
				transport.WriteError(w, http.StatusForbidden, "Forbidden", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), user)))
		})
	}
}

// WithSession returns ctx carrying data.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// WithActor returns ctx carrying the acting admin.
func WithActor(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ActorKey, user)
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}

// ActorFromCtx returns the acting admin set by RequireAdmin, or nil.
func ActorFromCtx(ctx context.Context) *models.User {
	u, _ := ctx.Value(ActorKey).(*models.User)
	return u
}
