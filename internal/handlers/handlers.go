// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the portfolio API.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct. Every dependency is an
// interface so the groups can be tested against in-memory fakes.
package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"portfolio/internal/models"
	"portfolio/internal/session"
)

// CaseStudyRepository is the case study storage used by the admin area.
type CaseStudyRepository interface {
	List(ctx context.Context) ([]models.CaseStudy, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error)
	Create(ctx context.Context, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error)
	Update(ctx context.Context, id uuid.UUID, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PublishedCaseStudies is the read-only view served to the public site.
type PublishedCaseStudies interface {
	ListPublished(ctx context.Context, featuredOnly bool) ([]models.CaseStudy, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
}

// CategoryRepository stores categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	ListActive(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TestimonialRepository stores standalone testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	ListPublished(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientLogoRepository stores client brand marks.
type ClientLogoRepository interface {
	List(ctx context.Context) ([]models.ClientLogo, error)
	ListActive(ctx context.Context) ([]models.ClientLogo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ClientLogo, error)
	Create(ctx context.Context, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error)
	Update(ctx context.Context, id uuid.UUID, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PixelSettingsRepository stores the single tracking configuration row.
type PixelSettingsRepository interface {
	Get(ctx context.Context) (*models.PixelSettings, error)
	Save(ctx context.Context, p *models.PixelSettings, actorID uuid.UUID) (*models.PixelSettings, error)
}

// MediaRepository records uploaded objects.
type MediaRepository interface {
	Create(ctx context.Context, m *models.Media) (*models.Media, error)
	List(ctx context.Context, limit, offset int) ([]models.Media, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Media, error)
}

// ObjectStore is the upload collaborator. A nil ObjectStore means uploads
// are disabled.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
	Bucket() string
}

// UserRepository is the account storage used by the login flow.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
	SetTOTPSecret(ctx context.Context, id uuid.UUID, secret string) error
	EnableTOTP(ctx context.Context, id uuid.UUID) error
}

// SessionManager creates and ends login sessions.
type SessionManager interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Update(ctx context.Context, r *http.Request, data *session.Data) error
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
