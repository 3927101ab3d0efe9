// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import "portfolio/internal/models"

const (
	minCategoryNameLen = 2
	maxCategoryNameLen = 50
	maxDescriptionLen  = 500
	maxIconLen         = 50
)

// Category validates a category submission. The slug is derived from the
// name unless one is given explicitly.
func Category(raw Raw) (*models.Category, error) {
	p := newParser(raw)

	c := &models.Category{
		Name:         p.text("name", minCategoryNameLen, maxCategoryNameLen),
		Description:  p.optional("description", maxDescriptionLen),
		Icon:         p.optional("icon", maxIconLen),
		Color:        p.hexColor("color"),
		DisplayOrder: p.displayOrder(),
		IsActive:     p.raw.Bool("is_active"),
	}
	c.Slug = p.slug(c.Name)

	if err := p.errs.err(); err != nil {
		return nil, err
	}
	return c, nil
}
