// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/browse"
	"portfolio/internal/markdown"
	"portfolio/internal/models"
	"portfolio/internal/transport"
)

// ActiveCategories lists categories visible on the public site.
type ActiveCategories interface {
	ListActive(ctx context.Context) ([]models.Category, error)
}

// PublishedTestimonials lists testimonials visible on the public site.
type PublishedTestimonials interface {
	ListPublished(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
}

// ActiveClientLogos lists logos visible on the public site.
type ActiveClientLogos interface {
	ListActive(ctx context.Context) ([]models.ClientLogo, error)
}

// PixelSettingsReader reads the tracking configuration.
type PixelSettingsReader interface {
	Get(ctx context.Context) (*models.PixelSettings, error)
}

// PublicDeps lists the read-only collaborators of the public handlers.
type PublicDeps struct {
	CaseStudies  PublishedCaseStudies
	Categories   ActiveCategories
	Testimonials PublishedTestimonials
	ClientLogos  ActiveClientLogos
	Pixels       PixelSettingsReader
}

// Public groups the read handlers of the public site. Drafts and hidden
// records never leave the repository through these handlers.
type Public struct {
	caseStudies  PublishedCaseStudies
	categories   ActiveCategories
	testimonials PublishedTestimonials
	logos        ActiveClientLogos
	pixels       PixelSettingsReader
}

// NewPublic creates a new Public handler group.
func NewPublic(deps PublicDeps) *Public {
	return &Public{
		caseStudies:  deps.CaseStudies,
		categories:   deps.Categories,
		testimonials: deps.Testimonials,
		logos:        deps.ClientLogos,
		pixels:       deps.Pixels,
	}
}

// criteriaFrom reads the category and search filters from the query.
func criteriaFrom(r *http.Request) browse.Criteria {
	q := r.URL.Query()
	return browse.Criteria{Category: q.Get("category"), Search: q.Get("search")}
}

// intParam reads a non-negative integer query parameter, 0 when absent or invalid.
func intParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ListCaseStudies returns the published case studies, optionally only the
// featured ones, narrowed by the category and search filters.
func (p *Public) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	items, err := p.caseStudies.ListPublished(r.Context(), featured)
	if err != nil {
		writeFailure(w, "list published case studies", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, browse.Filter(items, criteriaFrom(r)))
}

// BrowseCaseStudies returns one page of the filtered portfolio grid sized
// for the client's viewport width.
func (p *Public) BrowseCaseStudies(w http.ResponseWriter, r *http.Request) {
	items, err := p.caseStudies.ListPublished(r.Context(), false)
	if err != nil {
		writeFailure(w, "list published case studies", err)
		return
	}
	page := browse.Query(items, criteriaFrom(r), intParam(r, "page"), intParam(r, "width"))
	transport.WriteJSON(w, http.StatusOK, page)
}

// caseStudyDetail is a published case study with its narrative rendered.
type caseStudyDetail struct {
	*models.CaseStudy
	Narrative *markdown.Narrative `json:"narrative,omitempty"`
	SEO       seo                 `json:"seo"`
}

type seo struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// GetCaseStudy returns a published case study by slug.
func (p *Public) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	cs, err := p.caseStudies.FindPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeFailure(w, "find published case study", err)
		return
	}
	if cs == nil {
		writeNotFound(w)
		return
	}

	detail := caseStudyDetail{
		CaseStudy: cs,
		SEO:       seo{Title: cs.SEOTitle(), Keywords: cs.MetaKeywords},
	}
	if cs.MetaDescription != nil {
		detail.SEO.Description = *cs.MetaDescription
	}

	narrative, err := markdown.RenderNarrative(deref(cs.Challenge), deref(cs.Strategy), deref(cs.Results))
	if err != nil {
		slog.Warn("render narrative failed", "error", err, "slug", cs.Slug)
	} else {
		detail.Narrative = narrative
	}
	transport.WriteJSON(w, http.StatusOK, detail)
}

// ListCategories returns the active categories.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := p.categories.ListActive(r.Context())
	if err != nil {
		writeFailure(w, "list active categories", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// ListTestimonials returns the published testimonials.
func (p *Public) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	items, err := p.testimonials.ListPublished(r.Context(), featured)
	if err != nil {
		writeFailure(w, "list published testimonials", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// ListClientLogos returns the active client logos.
func (p *Public) ListClientLogos(w http.ResponseWriter, r *http.Request) {
	items, err := p.logos.ListActive(r.Context())
	if err != nil {
		writeFailure(w, "list active client logos", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// PixelSettings returns the identifiers of the enabled tracking integrations.
func (p *Public) PixelSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := p.pixels.Get(r.Context())
	if err != nil {
		writeFailure(w, "get pixel settings", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, settings.ActivePixels())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
