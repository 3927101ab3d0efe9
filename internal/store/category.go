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

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, icon, color, display_order, is_active, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Color,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryStore) list(ctx context.Context, where string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories `+where+
		` ORDER BY display_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// List returns all categories, hidden ones included.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	items, err := s.list(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// ListActive returns categories visible on the public site.
func (s *CategoryStore) ListActive(ctx context.Context) ([]models.Category, error) {
	items, err := s.list(ctx, "WHERE is_active")
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return items, nil
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	taken, err := slugTaken(ctx, s.db, "categories", c.Slug, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugConflict
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, description, icon, color, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.Icon, c.Color, c.DisplayOrder, c.IsActive,
	)
	result, err := scanCategory(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies category id. Its own slug does not count as a conflict.
func (s *CategoryStore) Update(ctx context.Context, id uuid.UUID, c *models.Category) (*models.Category, error) {
	taken, err := slugTaken(ctx, s.db, "categories", c.Slug, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugConflict
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE categories SET
			name = $1, slug = $2, description = $3, icon = $4, color = $5,
			display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.Icon, c.Color, c.DisplayOrder, c.IsActive, id,
	)
	result, err := scanCategory(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case isUniqueViolation(err):
		return nil, ErrSlugConflict
	case err != nil:
		return nil, fmt.Errorf("update category: %w", err)
	}
	return result, nil
}

// Delete detaches every case study from the category and then removes it.
// The two steps are not atomic; a failure between them leaves the category
// in place with no case studies, and retrying completes the delete.
// A second call for the same id returns ErrNotFound.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE case_studies SET category_id = NULL, updated_at = NOW() WHERE category_id = $1`, id,
	); err != nil {
		return fmt.Errorf("detach case studies from category: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireAffected(res)
}
