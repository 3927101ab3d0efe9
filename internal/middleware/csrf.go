// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"mime"
	"net/http"

	"portfolio/internal/transport"
)

const (
	// csrfTokenLength is the byte length of CSRF tokens (64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie that holds the CSRF token.
	CSRFCookieName = "pf_csrf"

	// CSRFHeaderName is the header the admin frontend echoes the token in.
	CSRFHeaderName = "X-CSRF-Token"

	// CSRFFormField is the form field checked when the header is absent.
	// Only url-encoded bodies are searched for it; multipart requests must
	// send the header.
	CSRFFormField = "csrf_token"

	// csrfMaxFormBody caps how much of a url-encoded body CSRF will read
	// while looking for the form field. It runs before authentication.
	csrfMaxFormBody = 1 << 20

	csrfKey contextKey = "csrf"
)

// CSRF provides double-submit cookie protection. A token cookie is issued
// on the first request; state-changing requests must echo it in the
// X-CSRF-Token header or the csrf_token form field. The current token is
// also put in the request context so an endpoint can hand it to a frontend
// that cannot read cookies of the API origin.
func CSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(CSRFCookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				var err error
				token, err = generateCSRFToken()
				if err != nil {
					transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
					return
				}
				c := &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				}
				if secure {
					c.SameSite = http.SameSiteNoneMode
				}
				http.SetCookie(w, c)
			}
			r = r.WithContext(context.WithValue(r.Context(), csrfKey, token))

			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			submitted := r.Header.Get(CSRFHeaderName)
			if submitted == "" {
				submitted = formToken(w, r)
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
				transport.WriteError(w, http.StatusForbidden, "CSRF token mismatch", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// formToken reads CSRFFormField from a url-encoded body of at most
// csrfMaxFormBody bytes. Any other body is left unread.
func formToken(w http.ResponseWriter, r *http.Request) string {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/x-www-form-urlencoded" {
		return ""
	}
	r.Body = http.MaxBytesReader(w, r.Body, csrfMaxFormBody)
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostForm.Get(CSRFFormField)
}

// CSRFToken returns the token CSRF placed in the context.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(csrfKey).(string)
	return token
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
