// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"portfolio/internal/cache"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/transport"
)

// requestTimeout bounds every request handled by the router.
const requestTimeout = 30 * time.Second

// Deps holds what the route tree is built from.
type Deps struct {
	Admin  *handlers.Admin
	Auth   *handlers.Auth
	Public *handlers.Public

	Sessions middleware.SessionGetter
	Users    middleware.UserLookup

	// Cache stores public responses; nil disables caching.
	Cache cache.Store

	// Limiter guards the public and admin API, LoginLimiter the login
	// endpoint on top of it.
	Limiter      middleware.Limiter
	LoginLimiter middleware.Limiter

	Origins       []string
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.CORS(d.Origins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusNotFound, "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Health check: no rate limit, no cache.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public read API, cached until the next admin write.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(d.Limiter, "public"))
			r.Use(cache.Middleware(d.Cache))

			r.Get("/case-studies", d.Public.ListCaseStudies)
			r.Get("/case-studies/browse", d.Public.BrowseCaseStudies)
			r.Get("/case-studies/{slug}", d.Public.GetCaseStudy)
			r.Get("/categories", d.Public.ListCategories)
			r.Get("/testimonials", d.Public.ListTestimonials)
			r.Get("/client-logos", d.Public.ListClientLogos)
			r.Get("/pixel-settings", d.Public.PixelSettings)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RateLimit(d.Limiter, "admin"))
			r.Use(middleware.CSRF(d.SecureCookies))
			r.Use(middleware.LoadSession(d.Sessions))

			// Reachable without a completed login.
			r.Get("/csrf", d.Auth.CSRFToken)
			r.With(middleware.RateLimit(d.LoginLimiter, "login")).Post("/login", d.Auth.Login)
			r.Post("/logout", d.Auth.Logout)
			r.Post("/2fa/verify", d.Auth.TwoFAVerify)

			// Active admins with a completed login.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(d.Users))

				r.Get("/me", d.Auth.Me)
				r.Post("/2fa/setup", d.Auth.TwoFASetup)

				r.Route("/case-studies", func(r chi.Router) {
					r.Get("/", d.Admin.ListCaseStudies)
					r.Post("/", d.Admin.CreateCaseStudy)
					r.Get("/{id}", d.Admin.GetCaseStudy)
					r.Put("/{id}", d.Admin.UpdateCaseStudy)
					r.Delete("/{id}", d.Admin.DeleteCaseStudy)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", d.Admin.ListCategories)
					r.Post("/", d.Admin.CreateCategory)
					r.Get("/{id}", d.Admin.GetCategory)
					r.Put("/{id}", d.Admin.UpdateCategory)
					r.Delete("/{id}", d.Admin.DeleteCategory)
				})

				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", d.Admin.ListTestimonials)
					r.Post("/", d.Admin.CreateTestimonial)
					r.Get("/{id}", d.Admin.GetTestimonial)
					r.Put("/{id}", d.Admin.UpdateTestimonial)
					r.Delete("/{id}", d.Admin.DeleteTestimonial)
				})

				r.Route("/client-logos", func(r chi.Router) {
					r.Get("/", d.Admin.ListClientLogos)
					r.Post("/", d.Admin.CreateClientLogo)
					r.Get("/{id}", d.Admin.GetClientLogo)
					r.Put("/{id}", d.Admin.UpdateClientLogo)
					r.Delete("/{id}", d.Admin.DeleteClientLogo)
				})

				r.Get("/pixel-settings", d.Admin.GetPixelSettings)
				r.Put("/pixel-settings", d.Admin.UpdatePixelSettings)

				r.Post("/uploads", d.Admin.UploadMedia)
				r.Get("/media", d.Admin.ListMedia)
				r.Delete("/media/{id}", d.Admin.DeleteMedia)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
