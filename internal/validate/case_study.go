// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import (
	"fmt"
	"unicode/utf8"

	"portfolio/internal/models"
)

// Case study field bounds.
const (
	minTitleLen      = 10
	maxTitleLen      = 200
	minClientNameLen = 2
	maxClientNameLen = 100
	maxServicesLen   = 500
)

// CaseStudy validates a case study submission. The returned record carries
// no id, audit fields or timestamps; those belong to the store. On failure
// the error is an Errors value listing every problem found.
func CaseStudy(raw Raw) (*models.CaseStudy, error) {
	p := newParser(raw)

	cs := &models.CaseStudy{
		Title:      p.text("title", minTitleLen, maxTitleLen),
		ClientName: p.text("client_name", minClientNameLen, maxClientNameLen),
		Services:   p.text("services", 1, maxServicesLen),

		Challenge:           p.optional("challenge", maxNarrativeLen),
		Strategy:            p.optional("strategy", maxNarrativeLen),
		Results:             p.optional("results", maxNarrativeLen),
		Testimonial:         p.optional("testimonial", maxNarrativeLen),
		TestimonialAuthor:   p.optional("testimonial_author", maxShortTextLen),
		TestimonialPosition: p.optional("testimonial_position", maxShortTextLen),

		ThumbnailURL:  p.optional("thumbnail_url", maxURLLen),
		HeroImageURL:  p.optional("hero_image_url", maxURLLen),
		ClientLogoURL: p.optional("client_logo_url", maxURLLen),
		GalleryURLs:   Gallery(raw["gallery_urls"]),

		Metrics: Metrics(raw["metrics"]),

		MetaTitle:       p.optional("meta_title", maxMetaTitle),
		MetaDescription: p.optional("meta_description", maxMetaDesc),

		IsFeatured:   p.raw.Bool("is_featured"),
		IsPublished:  p.raw.Bool("is_published"),
		DisplayOrder: p.displayOrder(),

		CategoryID: p.id("category_id"),

		WebsiteURL:   p.url("website_url"),
		InstagramURL: p.url("instagram_url"),
		FacebookURL:  p.url("facebook_url"),
	}
	cs.Slug = p.slug(cs.Title)

	keywords := p.raw.String("meta_keywords")
	if utf8.RuneCountInString(keywords) > maxKeywordsInput {
		p.errs.add("meta_keywords", fmt.Sprintf("must be at most %d characters", maxKeywordsInput))
	} else {
		cs.MetaKeywords = Keywords(keywords)
	}

	if cs.IsPublished && cs.ThumbnailURL == nil {
		p.errs.add("thumbnail_url", "is required to publish")
	}

	if err := p.errs.err(); err != nil {
		return nil, err
	}
	return cs, nil
}
