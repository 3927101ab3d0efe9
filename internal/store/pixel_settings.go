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

// PixelSettingsStore reads and writes the single pixel_settings row.
type PixelSettingsStore struct {
	db *sql.DB
}

// NewPixelSettingsStore returns a new PixelSettingsStore.
func NewPixelSettingsStore(db *sql.DB) *PixelSettingsStore {
	return &PixelSettingsStore{db: db}
}

const pixelColumns = `meta_pixel_id, is_meta_enabled, instagram_pixel_id, is_instagram_enabled,
	google_analytics_id, is_google_analytics_enabled, gtm_container_id, is_gtm_enabled,
	updated_by, updated_at`

func scanPixelSettings(row scanner) (*models.PixelSettings, error) {
	var p models.PixelSettings
	err := row.Scan(
		&p.MetaPixelID, &p.IsMetaEnabled, &p.InstagramPixelID, &p.IsInstagramEnabled,
		&p.GoogleAnalyticsID, &p.IsGoogleAnalyticsEnabled, &p.GTMContainerID, &p.IsGTMEnabled,
		&p.UpdatedBy, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns the settings row, or all-disabled defaults if it is missing.
func (s *PixelSettingsStore) Get(ctx context.Context) (*models.PixelSettings, error) {
	p, err := scanPixelSettings(s.db.QueryRowContext(ctx,
		`SELECT `+pixelColumns+` FROM pixel_settings WHERE id = 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return &models.PixelSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pixel settings: %w", err)
	}
	return p, nil
}

// Save upserts the settings row on behalf of actorID.
func (s *PixelSettingsStore) Save(ctx context.Context, p *models.PixelSettings, actorID uuid.UUID) (*models.PixelSettings, error) {
	saved, err := scanPixelSettings(s.db.QueryRowContext(ctx, `
		INSERT INTO pixel_settings (id, meta_pixel_id, is_meta_enabled, instagram_pixel_id, is_instagram_enabled,
			google_analytics_id, is_google_analytics_enabled, gtm_container_id, is_gtm_enabled, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			meta_pixel_id = EXCLUDED.meta_pixel_id,
			is_meta_enabled = EXCLUDED.is_meta_enabled,
			instagram_pixel_id = EXCLUDED.instagram_pixel_id,
			is_instagram_enabled = EXCLUDED.is_instagram_enabled,
			google_analytics_id = EXCLUDED.google_analytics_id,
			is_google_analytics_enabled = EXCLUDED.is_google_analytics_enabled,
			gtm_container_id = EXCLUDED.gtm_container_id,
			is_gtm_enabled = EXCLUDED.is_gtm_enabled,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING `+pixelColumns,
		p.MetaPixelID, p.IsMetaEnabled, p.InstagramPixelID, p.IsInstagramEnabled,
		p.GoogleAnalyticsID, p.IsGoogleAnalyticsEnabled, p.GTMContainerID, p.IsGTMEnabled,
		actorID,
	))
	if err != nil {
		return nil, fmt.Errorf("save pixel settings: %w", err)
	}
	return saved, nil
}
