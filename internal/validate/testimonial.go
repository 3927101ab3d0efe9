// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import (
	"strconv"

	"portfolio/internal/models"
)

const (
	minQuoteLen      = 10
	maxQuoteLen      = 1_000
	minAuthorNameLen = 2
	maxAuthorNameLen = 100
	minLogoNameLen   = 2
	maxLogoNameLen   = 100
)

// Testimonial validates a standalone testimonial submission.
func Testimonial(raw Raw) (*models.Testimonial, error) {
	p := newParser(raw)

	t := &models.Testimonial{
		Quote:          p.text("quote", minQuoteLen, maxQuoteLen),
		AuthorName:     p.text("author_name", minAuthorNameLen, maxAuthorNameLen),
		AuthorPosition: p.optional("author_position", maxShortTextLen),
		AuthorCompany:  p.optional("author_company", maxShortTextLen),
		AvatarURL:      p.url("avatar_url"),
		Rating:         p.rating(),
		CaseStudyID:    p.id("case_study_id"),
		IsFeatured:     p.raw.Bool("is_featured"),
		IsPublished:    p.raw.Bool("is_published"),
		DisplayOrder:   p.displayOrder(),
	}

	if err := p.errs.err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ClientLogo validates a client logo submission.
func ClientLogo(raw Raw) (*models.ClientLogo, error) {
	p := newParser(raw)

	l := &models.ClientLogo{
		Name:         p.text("name", minLogoNameLen, maxLogoNameLen),
		LogoURL:      p.requiredURL("logo_url"),
		WebsiteURL:   p.url("website_url"),
		IsActive:     p.raw.Bool("is_active"),
		DisplayOrder: p.displayOrder(),
	}

	if err := p.errs.err(); err != nil {
		return nil, err
	}
	return l, nil
}

// rating reads an optional 1–5 star rating.
func (p *parser) rating() *int {
	s := p.raw.String("rating")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 5 {
		p.errs.add("rating", "must be a whole number from 1 to 5")
		return nil
	}
	return &n
}
