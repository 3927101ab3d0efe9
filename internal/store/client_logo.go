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

// ClientLogoStore manages the client logo carousel.
type ClientLogoStore struct {
	db *sql.DB
}

// NewClientLogoStore returns a new ClientLogoStore.
func NewClientLogoStore(db *sql.DB) *ClientLogoStore {
	return &ClientLogoStore{db: db}
}

const clientLogoColumns = `id, name, logo_url, website_url, is_active, display_order,
	created_by, updated_by, created_at, updated_at`

func scanClientLogo(row scanner) (*models.ClientLogo, error) {
	var l models.ClientLogo
	err := row.Scan(
		&l.ID, &l.Name, &l.LogoURL, &l.WebsiteURL, &l.IsActive, &l.DisplayOrder,
		&l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *ClientLogoStore) list(ctx context.Context, where string) ([]models.ClientLogo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+clientLogoColumns+` FROM client_logos `+where+
		` ORDER BY display_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ClientLogo{}
	for rows.Next() {
		l, err := scanClientLogo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client logo: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// List returns every logo for the admin area.
func (s *ClientLogoStore) List(ctx context.Context) ([]models.ClientLogo, error) {
	items, err := s.list(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list client logos: %w", err)
	}
	return items, nil
}

// ListActive returns logos shown on the public site.
func (s *ClientLogoStore) ListActive(ctx context.Context) ([]models.ClientLogo, error) {
	items, err := s.list(ctx, "WHERE is_active")
	if err != nil {
		return nil, fmt.Errorf("list active client logos: %w", err)
	}
	return items, nil
}

// FindByID retrieves a logo. Returns nil if not found.
func (s *ClientLogoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.ClientLogo, error) {
	l, err := scanClientLogo(s.db.QueryRowContext(ctx,
		`SELECT `+clientLogoColumns+` FROM client_logos WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client logo by id: %w", err)
	}
	return l, nil
}

// Create inserts a logo on behalf of actorID.
func (s *ClientLogoStore) Create(ctx context.Context, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error) {
	created, err := scanClientLogo(s.db.QueryRowContext(ctx, `
		INSERT INTO client_logos (name, logo_url, website_url, is_active, display_order, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+clientLogoColumns,
		l.Name, l.LogoURL, l.WebsiteURL, l.IsActive, l.DisplayOrder, actorID,
	))
	if err != nil {
		return nil, fmt.Errorf("create client logo: %w", err)
	}
	return created, nil
}

// Update replaces logo id.
func (s *ClientLogoStore) Update(ctx context.Context, id uuid.UUID, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error) {
	updated, err := scanClientLogo(s.db.QueryRowContext(ctx, `
		UPDATE client_logos SET
			name = $1, logo_url = $2, website_url = $3, is_active = $4,
			display_order = $5, updated_by = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+clientLogoColumns,
		l.Name, l.LogoURL, l.WebsiteURL, l.IsActive, l.DisplayOrder, actorID, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update client logo: %w", err)
	}
	return updated, nil
}

// Delete removes a logo.
func (s *ClientLogoStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM client_logos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client logo: %w", err)
	}
	return requireAffected(res)
}
