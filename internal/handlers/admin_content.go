// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"portfolio/internal/transport"
	"portfolio/internal/validate"
)

// checkCategory reports a validation error when id names no category.
func (a *Admin) checkCategory(r *http.Request, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	c, err := a.categories.FindByID(r.Context(), *id)
	if err != nil {
		return err
	}
	if c == nil {
		return validate.Errors{{Field: "category_id", Message: "category does not exist"}}
	}
	return nil
}

// checkCaseStudy reports a validation error when id names no case study.
func (a *Admin) checkCaseStudy(r *http.Request, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	cs, err := a.caseStudies.FindByID(r.Context(), *id)
	if err != nil {
		return err
	}
	if cs == nil {
		return validate.Errors{{Field: "case_study_id", Message: "case study does not exist"}}
	}
	return nil
}

// --- Testimonials ---

// ListTestimonials returns every testimonial, drafts included.
func (a *Admin) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List(r.Context())
	if err != nil {
		writeFailure(w, "list testimonials", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// GetTestimonial returns one testimonial by id.
func (a *Admin) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	t, err := a.testimonials.FindByID(r.Context(), id)
	if err != nil {
		writeFailure(w, "find testimonial", err)
		return
	}
	if t == nil {
		writeNotFound(w)
		return
	}
	transport.WriteJSON(w, http.StatusOK, t)
}

// CreateTestimonial validates a submission and stores a new testimonial.
func (a *Admin) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read testimonial", err)
		return
	}
	t, err := validate.Testimonial(raw)
	if err != nil {
		writeFailure(w, "validate testimonial", err)
		return
	}
	if err := a.checkCaseStudy(r, t.CaseStudyID); err != nil {
		writeFailure(w, "check case study", err)
		return
	}

	created, err := a.testimonials.Create(r.Context(), t, actor)
	if err != nil {
		writeFailure(w, "create testimonial", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusCreated, created)
}

// UpdateTestimonial replaces the validated fields of a testimonial.
func (a *Admin) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
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
		writeFailure(w, "read testimonial", err)
		return
	}
	t, err := validate.Testimonial(raw)
	if err != nil {
		writeFailure(w, "validate testimonial", err)
		return
	}
	if err := a.checkCaseStudy(r, t.CaseStudyID); err != nil {
		writeFailure(w, "check case study", err)
		return
	}

	updated, err := a.testimonials.Update(r.Context(), id, t, actor)
	if err != nil {
		writeFailure(w, "update testimonial", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusOK, updated)
}

// DeleteTestimonial removes a testimonial.
func (a *Admin) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.testimonials.Delete(r.Context(), id); err != nil {
		writeFailure(w, "delete testimonial", err)
		return
	}
	a.invalidate(r)
	w.WriteHeader(http.StatusNoContent)
}

// --- Client logos ---

// ListClientLogos returns every client logo, hidden ones included.
func (a *Admin) ListClientLogos(w http.ResponseWriter, r *http.Request) {
	items, err := a.logos.List(r.Context())
	if err != nil {
		writeFailure(w, "list client logos", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

// GetClientLogo returns one client logo by id.
func (a *Admin) GetClientLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	l, err := a.logos.FindByID(r.Context(), id)
	if err != nil {
		writeFailure(w, "find client logo", err)
		return
	}
	if l == nil {
		writeNotFound(w)
		return
	}
	transport.WriteJSON(w, http.StatusOK, l)
}

// CreateClientLogo validates a submission and stores a new client logo.
func (a *Admin) CreateClientLogo(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read client logo", err)
		return
	}
	l, err := validate.ClientLogo(raw)
	if err != nil {
		writeFailure(w, "validate client logo", err)
		return
	}

	created, err := a.logos.Create(r.Context(), l, actor)
	if err != nil {
		writeFailure(w, "create client logo", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusCreated, created)
}

// UpdateClientLogo replaces the validated fields of a client logo.
func (a *Admin) UpdateClientLogo(w http.ResponseWriter, r *http.Request) {
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
		writeFailure(w, "read client logo", err)
		return
	}
	l, err := validate.ClientLogo(raw)
	if err != nil {
		writeFailure(w, "validate client logo", err)
		return
	}

	updated, err := a.logos.Update(r.Context(), id, l, actor)
	if err != nil {
		writeFailure(w, "update client logo", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusOK, updated)
}

// DeleteClientLogo removes a client logo.
func (a *Admin) DeleteClientLogo(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.logos.Delete(r.Context(), id); err != nil {
		writeFailure(w, "delete client logo", err)
		return
	}
	a.invalidate(r)
	w.WriteHeader(http.StatusNoContent)
}

// --- Pixel settings ---

// GetPixelSettings returns the full tracking configuration.
func (a *Admin) GetPixelSettings(w http.ResponseWriter, r *http.Request) {
	p, err := a.pixels.Get(r.Context())
	if err != nil {
		writeFailure(w, "get pixel settings", err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

// UpdatePixelSettings validates and saves the tracking configuration.
func (a *Admin) UpdatePixelSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}
	raw, err := readRaw(w, r)
	if err != nil {
		writeFailure(w, "read pixel settings", err)
		return
	}
	p, err := validate.PixelSettings(raw)
	if err != nil {
		writeFailure(w, "validate pixel settings", err)
		return
	}

	saved, err := a.pixels.Save(r.Context(), p, actor)
	if err != nil {
		writeFailure(w, "save pixel settings", err)
		return
	}
	a.invalidate(r)
	transport.WriteJSON(w, http.StatusOK, saved)
}
