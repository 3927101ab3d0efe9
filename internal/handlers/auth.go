// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"portfolio/internal/middleware"
	"portfolio/internal/session"
	"portfolio/internal/transport"
	"portfolio/internal/validate"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "Portfolio"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	users    UserRepository
	sessions SessionManager
}

// NewAuth creates a new Auth handler group.
func NewAuth(users UserRepository, sessions SessionManager) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// Login checks the submitted credentials and opens a session. Accounts
// with two-factor enabled get an incomplete session until /2fa/verify
// succeeds.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read login", err)
		return
	}

	email := strings.ToLower(raw.String("email"))
	password := raw.String("password")

	var verrs validate.Errors
	if email == "" {
		verrs = append(verrs, validate.FieldError{Field: "email", Message: "is required"})
	}
	if password == "" {
		verrs = append(verrs, validate.FieldError{Field: "password", Message: "is required"})
	}
	if len(verrs) > 0 {
		writeFailure(w, "validate login", verrs)
		return
	}

	user, err := a.users.FindByEmail(r.Context(), email)
	if err != nil {
		writeFailure(w, "login lookup", err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, password) {
		transport.WriteError(w, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	if !user.IsActive {
		transport.WriteError(w, http.StatusForbidden, "Account is disabled", nil)
		return
	}
	if !user.IsAdmin() {
		transport.WriteError(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		TwoFADone:   !user.TOTPEnabled,
	})
	if err != nil {
		writeFailure(w, "create session", err)
		return
	}

	slog.Info("admin signed in", "user_id", user.ID, "two_factor", user.TOTPEnabled)
	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"user":                user,
		"two_factor_required": user.TOTPEnabled,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the acting admin.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromCtx(r.Context())
	if actor == nil {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, actor)
}

// CSRFToken hands the double-submit token to a frontend that cannot read
// the API's cookies.
func (a *Auth) CSRFToken(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"csrf_token": middleware.CSRFToken(r.Context()),
	})
}

// TwoFASetup generates a new TOTP secret for the acting admin and returns
// it with a QR code. Two-factor is only enabled once /2fa/verify accepts a
// code for the new secret.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromCtx(r.Context())
	if actor == nil {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	if actor.TOTPEnabled {
		transport.WriteError(w, http.StatusBadRequest, "Two-factor authentication is already enabled", nil)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: actor.Email,
	})
	if err != nil {
		writeFailure(w, "totp generate", err)
		return
	}

	if err := a.users.SetTOTPSecret(r.Context(), actor.ID, key.Secret()); err != nil {
		writeFailure(w, "save totp secret", err)
		return
	}

	// Generate QR code as base64-encoded PNG.
	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		writeFailure(w, "qr code generation", err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_code":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAVerify validates a TOTP code. It completes a pending login and,
// on first use, enables two-factor for the account.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read 2fa code", err)
		return
	}

	user, err := a.users.FindByID(r.Context(), sess.UserID)
	if err != nil {
		writeFailure(w, "user lookup for 2fa", err)
		return
	}
	if user == nil || !user.CanMutate() {
		transport.WriteError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}
	if user.TOTPSecret == nil {
		transport.WriteError(w, http.StatusBadRequest, "Two-factor authentication is not set up", nil)
		return
	}

	if !totp.Validate(raw.String("code"), *user.TOTPSecret) {
		writeFailure(w, "validate 2fa code", validate.Errors{{Field: "code", Message: "is invalid"}})
		return
	}

	// First successful code after setup turns two-factor on.
	if !user.TOTPEnabled {
		if err := a.users.EnableTOTP(r.Context(), user.ID); err != nil {
			writeFailure(w, "enable totp", err)
			return
		}
		user.TOTPEnabled = true
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		writeFailure(w, "session update", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}
