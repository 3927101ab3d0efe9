// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"portfolio/internal/cache"
	"portfolio/internal/transport"
	"portfolio/internal/validate"
)

// AdminDeps lists the collaborators of the admin handlers. Objects may be
// nil when object storage is not configured.
type AdminDeps struct {
	CaseStudies  CaseStudyRepository
	Categories   CategoryRepository
	Testimonials TestimonialRepository
	ClientLogos  ClientLogoRepository
	Pixels       PixelSettingsRepository
	Media        MediaRepository
	Objects      ObjectStore
	Cache        cache.Store
}

// Admin groups the admin mutation handlers. Every handler runs behind
// middleware.RequireAdmin and clears the public response cache after a
// successful write.
type Admin struct {
	caseStudies  CaseStudyRepository
	categories   CategoryRepository
	testimonials TestimonialRepository
	logos        ClientLogoRepository
	pixels       PixelSettingsRepository
	media        MediaRepository
	objects      ObjectStore
	cache        cache.Store
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(deps AdminDeps) *Admin {
	c := deps.Cache
	if c == nil {
		c = cache.Noop{}
	}
	return &Admin{
		caseStudies:  deps.CaseStudies,
		categories:   deps.Categories,
		testimonials: deps.Testimonials,
		logos:        deps.ClientLogos,
		pixels:       deps.Pixels,
		media:        deps.Media,
		objects:      deps.Objects,
		cache:        c,
	}
}

// invalidate drops every cached public response.
func (a *Admin) invalidate(r *http.Request) {
	a.cache.InvalidateAll(r.Context())
}

// --- Case studies ---

// ListCaseStudies returns every case study, drafts included.
func (a *Admin) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	items, err := a.caseStudies.List(r.Context())
	if err != nil {
		writeFailure(w, "list case studies", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// GetCaseStudy returns one case study by id regardless of its state.
func (a *Admin) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	cs, err := a.caseStudies.FindByID(r.Context(), id)
	if err != nil {
		writeFailure(w, "find case study", err)
		return
	}
	if cs == nil {
		writeNotFound(w)
		return
	}
	transport.WriteJSON(w, http.StatusOK, cs)
}

// CreateCaseStudy validates a submission and stores a new case study.
func (a *Admin) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read case study", err)
		return
	}
	cs, err := validate.CaseStudy(raw)
	if err != nil {
		writeFailure(w, "validate case study", err)
		return
	}
	if err := a.checkCategory(r, cs.CategoryID); err != nil {
		writeFailure(w, "check category", err)
		return
	}

	created, err := a.caseStudies.Create(r.Context(), cs, actor)
	if err != nil {
		writeFailure(w, "create case study", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusCreated, created)
}

// UpdateCaseStudy replaces the validated fields of a case study.
func (a *Admin) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read case study", err)
		return
	}
	cs, err := validate.CaseStudy(raw)
	if err != nil {
		writeFailure(w, "validate case study", err)
		return
	}
	if err := a.checkCategory(r, cs.CategoryID); err != nil {
		writeFailure(w, "check category", err)
		return
	}

	updated, err := a.caseStudies.Update(r.Context(), id, cs, actor)
	if err != nil {
		writeFailure(w, "update case study", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusOK, updated)
}

// DeleteCaseStudy removes a case study.
func (a *Admin) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.caseStudies.Delete(r.Context(), id); err != nil {
		writeFailure(w, "delete case study", err)
		return
	}
	a.invalidate(r)
	w.WriteHeader(http.StatusNoContent)
}

// --- Categories ---

// ListCategories returns every category, hidden ones included.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List(r.Context())
	if err != nil {
		writeFailure(w, "list categories", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// GetCategory returns one category by id.
func (a *Admin) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := a.categories.FindByID(r.Context(), id)
	if err != nil {
		writeFailure(w, "find category", err)
		return
	}
	if c == nil {
		writeNotFound(w)
		return
	}
	transport.WriteJSON(w, http.StatusOK, c)
}

// CreateCategory validates a submission and stores a new category.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read category", err)
		return
	}
	c, err := validate.Category(raw)
	if err != nil {
		writeFailure(w, "validate category", err)
		return
	}

	created, err := a.categories.Create(r.Context(), c)
	if err != nil {
		writeFailure(w, "create category", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusCreated, created)
}

// UpdateCategory replaces the validated fields of a category.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read category", err)
		return
	}
	c, err := validate.Category(raw)
	if err != nil {
		writeFailure(w, "validate category", err)
		return
	}

	updated, err := a.categories.Update(r.Context(), id, c)
	if err != nil {
		writeFailure(w, "update category", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusOK, updated)
}

// DeleteCategory detaches the category's case studies and removes it.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.categories.Delete(r.Context(), id); err != nil {
		writeFailure(w, "delete category", err)
		return
	}
	a.invalidate(r)
	w.WriteHeader(http.StatusNoContent)
}
