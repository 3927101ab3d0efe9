// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseStudy is a client success story. Drafts (IsPublished=false) are only
// reachable through the admin API.
//
// Optional text fields are nil when absent; they are never stored as "".
type CaseStudy struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	ClientName string    `json:"client_name"`
	Services   string    `json:"services"`

	Challenge           *string `json:"challenge,omitempty"`
	Strategy            *string `json:"strategy,omitempty"`
	Results             *string `json:"results,omitempty"`
	Testimonial         *string `json:"testimonial,omitempty"`
	TestimonialAuthor   *string `json:"testimonial_author,omitempty"`
	TestimonialPosition *string `json:"testimonial_position,omitempty"`

	ThumbnailURL  *string    `json:"thumbnail_url,omitempty"`
	HeroImageURL  *string    `json:"hero_image_url,omitempty"`
	ClientLogoURL *string    `json:"client_logo_url,omitempty"`
	GalleryURLs   StringList `json:"gallery_urls"`

	Metrics Metrics `json:"metrics"`

	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	MetaKeywords    StringList `json:"meta_keywords,omitempty"`

	IsFeatured   bool `json:"is_featured"`
	IsPublished  bool `json:"is_published"`
	DisplayOrder int  `json:"display_order"`

	CategoryID *uuid.UUID `json:"category_id"`

	WebsiteURL   *string `json:"website_url,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Populated by joined reads.
	Category *CategoryRef `json:"category,omitempty"`
}

// SEOTitle returns the meta title, falling back to the title.
func (c *CaseStudy) SEOTitle() string {
	if c.MetaTitle != nil {
		return *c.MetaTitle
	}
	return c.Title
}

// CategorySlug returns the joined category slug, or "" when uncategorised.
func (c *CaseStudy) CategorySlug() string {
	if c.Category == nil {
		return ""
	}
	return c.Category.Slug
}
