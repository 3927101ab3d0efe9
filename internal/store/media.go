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

// MediaStore tracks uploaded objects so they can be listed and removed.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, filename, original_name, content_type, size_bytes,
	bucket, s3_key, thumb_s3_key, uploader_id, created_at`

func scanMedia(row scanner) (*models.Media, error) {
	var m models.Media
	err := row.Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.ContentType, &m.SizeBytes,
		&m.Bucket, &m.S3Key, &m.ThumbS3Key, &m.UploaderID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a media record and returns it with the generated ID.
func (s *MediaStore) Create(ctx context.Context, m *models.Media) (*models.Media, error) {
	created, err := scanMedia(s.db.QueryRowContext(ctx, `
		INSERT INTO media (filename, original_name, content_type, size_bytes,
			bucket, s3_key, thumb_s3_key, uploader_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.Filename, m.OriginalName, m.ContentType, m.SizeBytes,
		m.Bucket, m.S3Key, m.ThumbS3Key, m.UploaderID,
	))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// FindByID retrieves a media record. Returns nil if not found.
func (s *MediaStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	m, err := scanMedia(s.db.QueryRowContext(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// List returns media newest first.
func (s *MediaStore) List(ctx context.Context, limit, offset int) ([]models.Media, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+mediaColumns+`
		FROM media
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	items := []models.Media{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Count returns the total number of media items.
func (s *MediaStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return count, nil
}

// Delete removes a media record and returns it so the caller can clean
// up the stored objects. Returns ErrNotFound if nothing was deleted.
func (s *MediaStore) Delete(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	m, err := scanMedia(s.db.QueryRowContext(ctx,
		`DELETE FROM media WHERE id = $1 RETURNING `+mediaColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete media: %w", err)
	}
	return m, nil
}
