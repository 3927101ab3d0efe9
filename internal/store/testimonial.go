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

// TestimonialStore manages standalone testimonials.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore returns a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, quote, author_name, author_position, author_company, avatar_url,
	rating, case_study_id, is_featured, is_published, display_order,
	created_by, updated_by, created_at, updated_at`

func scanTestimonial(row scanner) (*models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(
		&t.ID, &t.Quote, &t.AuthorName, &t.AuthorPosition, &t.AuthorCompany, &t.AvatarURL,
		&t.Rating, &t.CaseStudyID, &t.IsFeatured, &t.IsPublished, &t.DisplayOrder,
		&t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TestimonialStore) list(ctx context.Context, where string, args ...any) ([]models.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+testimonialColumns+` FROM testimonials `+where+
		` ORDER BY display_order ASC, created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// List returns every testimonial for the admin area.
func (s *TestimonialStore) List(ctx context.Context) ([]models.Testimonial, error) {
	items, err := s.list(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// ListPublished returns published testimonials, optionally only featured ones.
func (s *TestimonialStore) ListPublished(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	items, err := s.list(ctx, `WHERE is_published AND ($1 = FALSE OR is_featured)`, featuredOnly)
	if err != nil {
		return nil, fmt.Errorf("list published testimonials: %w", err)
	}
	return items, nil
}

// FindByID retrieves a testimonial. Returns nil if not found.
func (s *TestimonialStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a testimonial on behalf of actorID.
func (s *TestimonialStore) Create(ctx context.Context, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error) {
	created, err := scanTestimonial(s.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (quote, author_name, author_position, author_company, avatar_url,
			rating, case_study_id, is_featured, is_published, display_order, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING `+testimonialColumns,
		t.Quote, t.AuthorName, t.AuthorPosition, t.AuthorCompany, t.AvatarURL,
		t.Rating, t.CaseStudyID, t.IsFeatured, t.IsPublished, t.DisplayOrder, actorID,
	))
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

// Update replaces testimonial id.
func (s *TestimonialStore) Update(ctx context.Context, id uuid.UUID, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error) {
	updated, err := scanTestimonial(s.db.QueryRowContext(ctx, `
		UPDATE testimonials SET
			quote = $1, author_name = $2, author_position = $3, author_company = $4,
			avatar_url = $5, rating = $6, case_study_id = $7, is_featured = $8,
			is_published = $9, display_order = $10, updated_by = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING `+testimonialColumns,
		t.Quote, t.AuthorName, t.AuthorPosition, t.AuthorCompany,
		t.AvatarURL, t.Rating, t.CaseStudyID, t.IsFeatured,
		t.IsPublished, t.DisplayOrder, actorID, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return updated, nil
}

// Delete removes a testimonial.
func (s *TestimonialStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return requireAffected(res)
}
