// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a standalone client quote, optionally tied to a case study.
type Testimonial struct {
	ID             uuid.UUID  `json:"id"`
	Quote          string     `json:"quote"`
	AuthorName     string     `json:"author_name"`
	AuthorPosition *string    `json:"author_position,omitempty"`
	AuthorCompany  *string    `json:"author_company,omitempty"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	CaseStudyID    *uuid.UUID `json:"case_study_id"`
	IsFeatured     bool       `json:"is_featured"`
	IsPublished    bool       `json:"is_published"`
	DisplayOrder   int        `json:"display_order"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy      *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ClientLogo is a client brand mark shown in the logo carousel.
type ClientLogo struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	LogoURL      string     `json:"logo_url"`
	WebsiteURL   *string    `json:"website_url,omitempty"`
	IsActive     bool       `json:"is_active"`
	DisplayOrder int        `json:"display_order"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy    *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
