// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides Postgres access for every portfolio entity. Each
// store wraps a *sql.DB and exposes typed, context-aware query methods.
//
// Finders return (nil, nil) when no row matches. Mutations on a missing row
// return ErrNotFound. Slug uniqueness is checked before writing so callers
// get ErrSlugConflict instead of a raw constraint violation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a mutation targets a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlugConflict is returned when another row already uses the slug.
	ErrSlugConflict = errors.New("slug already exists")
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// failure. It covers the window between the slug check and the write.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// slugTaken reports whether table already holds slug on a row other than
// exclude. Pass a nil exclude on create.
func slugTaken(ctx context.Context, db *sql.DB, table, slug string, exclude *uuid.UUID) (bool, error) {
	var taken bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`,
		slug, exclude,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check %s slug: %w", table, err)
	}
	return taken, nil
}

// requireAffected maps a zero-row result onto ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
