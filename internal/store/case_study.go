// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"portfolio/internal/models"
)

// CaseStudyStore manages case studies in the database.
type CaseStudyStore struct {
	db *sql.DB
}

// NewCaseStudyStore returns a new CaseStudyStore.
func NewCaseStudyStore(db *sql.DB) *CaseStudyStore {
	return &CaseStudyStore{db: db}
}

// caseStudySelect reads case studies with their category joined in.
const caseStudySelect = `
	SELECT cs.id, cs.slug, cs.title, cs.client_name, cs.services,
	       cs.challenge, cs.strategy, cs.results,
	       cs.testimonial, cs.testimonial_author, cs.testimonial_position,
	       cs.thumbnail_url, cs.hero_image_url, cs.client_logo_url, cs.gallery_urls,
	       cs.metrics, cs.meta_title, cs.meta_description, cs.meta_keywords,
	       cs.is_featured, cs.is_published, cs.display_order, cs.category_id,
	       cs.website_url, cs.instagram_url, cs.facebook_url,
	       cs.created_by, cs.updated_by, cs.created_at, cs.updated_at,
	       c.id, c.name, c.slug
	FROM case_studies cs
	LEFT JOIN categories c ON c.id = cs.category_id`

// caseStudyOrder is the application-wide listing order.
const caseStudyOrder = ` ORDER BY cs.display_order ASC, cs.created_at DESC`

// scanCaseStudy scans a caseStudySelect row.
func scanCaseStudy(row scanner) (*models.CaseStudy, error) {
	var (
		cs      models.CaseStudy
		catID   uuid.NullUUID
		catName sql.NullString
		catSlug sql.NullString
	)
	err := row.Scan(
		&cs.ID, &cs.Slug, &cs.Title, &cs.ClientName, &cs.Services,
		&cs.Challenge, &cs.Strategy, &cs.Results,
		&cs.Testimonial, &cs.TestimonialAuthor, &cs.TestimonialPosition,
		&cs.ThumbnailURL, &cs.HeroImageURL, &cs.ClientLogoURL, &cs.GalleryURLs,
		&cs.Metrics, &cs.MetaTitle, &cs.MetaDescription, &cs.MetaKeywords,
		&cs.IsFeatured, &cs.IsPublished, &cs.DisplayOrder, &cs.CategoryID,
		&cs.WebsiteURL, &cs.InstagramURL, &cs.FacebookURL,
		&cs.CreatedBy, &cs.UpdatedBy, &cs.CreatedAt, &cs.UpdatedAt,
		&catID, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		cs.Category = &models.CategoryRef{ID: catID.UUID, Name: catName.String, Slug: catSlug.String}
	}
	return &cs, nil
}

func (s *CaseStudyStore) query(ctx context.Context, q string, args ...any) ([]models.CaseStudy, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case study: %w", err)
		}
		items = append(items, *cs)
	}
	return items, rows.Err()
}

func (s *CaseStudyStore) findOne(ctx context.Context, where string, args ...any) (*models.CaseStudy, error) {
	cs, err := scanCaseStudy(s.db.QueryRowContext(ctx, caseStudySelect+` WHERE `+where, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return cs, err
}

// List returns every case study, drafts included, for the admin area.
func (s *CaseStudyStore) List(ctx context.Context) ([]models.CaseStudy, error) {
	items, err := s.query(ctx, caseStudySelect+caseStudyOrder)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	return items, nil
}

// ListPublished returns published case studies. With featuredOnly set, only
// featured ones are returned.
func (s *CaseStudyStore) ListPublished(ctx context.Context, featuredOnly bool) ([]models.CaseStudy, error) {
	items, err := s.query(ctx,
		caseStudySelect+` WHERE cs.is_published AND ($1 = FALSE OR cs.is_featured)`+caseStudyOrder,
		featuredOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("list published case studies: %w", err)
	}
	return items, nil
}

// FindByID retrieves a case study regardless of its published state.
// Returns nil if not found.
func (s *CaseStudyStore) FindByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	cs, err := s.findOne(ctx, `cs.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find case study by id: %w", err)
	}
	return cs, nil
}

// FindBySlug retrieves a case study by slug regardless of its published
// state. Returns nil if not found.
func (s *CaseStudyStore) FindBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	cs, err := s.findOne(ctx, `cs.slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("find case study by slug: %w", err)
	}
	return cs, nil
}

// FindPublishedBySlug retrieves a published case study by slug. Drafts are
// reported as not found.
func (s *CaseStudyStore) FindPublishedBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	cs, err := s.findOne(ctx, `cs.slug = $1 AND cs.is_published`, slug)
	if err != nil {
		return nil, fmt.Errorf("find published case study: %w", err)
	}
	return cs, nil
}

// SlugExists reports whether slug is used by a case study other than exclude.
func (s *CaseStudyStore) SlugExists(ctx context.Context, slug string, exclude *uuid.UUID) (bool, error) {
	return slugTaken(ctx, s.db, "case_studies", slug, exclude)
}

// Create inserts a validated case study on behalf of actorID.
func (s *CaseStudyStore) Create(ctx context.Context, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error) {
	taken, err := s.SlugExists(ctx, cs.Slug, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugConflict
	}

	metrics := cs.Metrics
	if metrics == nil {
		metrics = models.Metrics{}
	}

	var id uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO case_studies (
			slug, title, client_name, services,
			challenge, strategy, results,
			testimonial, testimonial_author, testimonial_position,
			thumbnail_url, hero_image_url, client_logo_url, gallery_urls,
			metrics, meta_title, meta_description, meta_keywords,
			is_featured, is_published, display_order, category_id,
			website_url, instagram_url, facebook_url,
			created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14::jsonb, $15::jsonb, $16, $17, $18::jsonb,
			$19, $20, $21, $22, $23, $24, $25, $26, $26
		) RETURNING id`,
		cs.Slug, cs.Title, cs.ClientName, cs.Services,
		cs.Challenge, cs.Strategy, cs.Results,
		cs.Testimonial, cs.TestimonialAuthor, cs.TestimonialPosition,
		cs.ThumbnailURL, cs.HeroImageURL, cs.ClientLogoURL, cs.GalleryURLs,
		metrics, cs.MetaTitle, cs.MetaDescription, cs.MetaKeywords,
		cs.IsFeatured, cs.IsPublished, cs.DisplayOrder, cs.CategoryID,
		cs.WebsiteURL, cs.InstagramURL, cs.FacebookURL,
		actorID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("create case study: %w", err)
	}

	return s.FindByID(ctx, id)
}

// Update replaces the validated fields of case study id. The slug check
// ignores the row itself, updated_at is refreshed and updated_by is set to
// actorID. An absent gallery (nil) keeps the stored one.
func (s *CaseStudyStore) Update(ctx context.Context, id uuid.UUID, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error) {
	taken, err := s.SlugExists(ctx, cs.Slug, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugConflict
	}

	metrics := cs.Metrics
	if metrics == nil {
		metrics = models.Metrics{}
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE case_studies SET
			slug = $1, title = $2, client_name = $3, services = $4,
			challenge = $5, strategy = $6, results = $7,
			testimonial = $8, testimonial_author = $9, testimonial_position = $10,
			thumbnail_url = $11, hero_image_url = $12, client_logo_url = $13,
			gallery_urls = COALESCE($14::jsonb, gallery_urls),
			metrics = $15::jsonb, meta_title = $16, meta_description = $17, meta_keywords = $18::jsonb,
			is_featured = $19, is_published = $20, display_order = $21, category_id = $22,
			website_url = $23, instagram_url = $24, facebook_url = $25,
			updated_by = $26, updated_at = NOW()
		WHERE id = $27`,
		cs.Slug, cs.Title, cs.ClientName, cs.Services,
		cs.Challenge, cs.Strategy, cs.Results,
		cs.Testimonial, cs.TestimonialAuthor, cs.TestimonialPosition,
		cs.ThumbnailURL, cs.HeroImageURL, cs.ClientLogoURL, cs.GalleryURLs,
		metrics, cs.MetaTitle, cs.MetaDescription, cs.MetaKeywords,
		cs.IsFeatured, cs.IsPublished, cs.DisplayOrder, cs.CategoryID,
		cs.WebsiteURL, cs.InstagramURL, cs.FacebookURL,
		actorID, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}

	return s.FindByID(ctx, id)
}

// Delete removes a case study. Testimonials pointing at it are detached by
// the foreign key.
func (s *CaseStudyStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	return requireAffected(res)
}
