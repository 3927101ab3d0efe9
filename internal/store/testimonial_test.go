// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"portfolio/internal/models"
)

func TestTestimonialStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)
	ctx := context.Background()
	admin := testAdmin(t, db)

	rating := 5
	created, err := s.Create(ctx, &models.Testimonial{
		Quote:       "They tripled our online bookings in a quarter.",
		AuthorName:  "Jane Doe",
		Rating:      &rating,
		IsPublished: true,
		IsFeatured:  true,
	}, admin.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "testimonials", created.ID) })

	if created.Rating == nil || *created.Rating != 5 {
		t.Errorf("rating = %v", created.Rating)
	}

	featured, err := s.ListPublished(ctx, true)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	found := false
	for _, item := range featured {
		found = found || item.ID == created.ID
	}
	if !found {
		t.Error("featured testimonial missing")
	}

	created.IsPublished = false
	if _, err := s.Update(ctx, created.ID, created, admin.ID); err != nil {
		t.Fatalf("Update: %v", err)
	}
	published, err := s.ListPublished(ctx, false)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	for _, item := range published {
		if item.ID == created.ID {
			t.Error("unpublished testimonial still listed")
		}
	}

	if _, err := s.Update(ctx, uuid.New(), created, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update unknown: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
}

func TestTestimonialDetachedWhenCaseStudyDeleted(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)
	ctx := context.Background()
	admin := testAdmin(t, db)

	cs := createCaseStudy(t, db, newCaseStudy("quoted-"+suffix(), 0, true), admin.ID)
	tm, err := s.Create(ctx, &models.Testimonial{
		Quote:       "A partner that actually reads the numbers.",
		AuthorName:  "John Roe",
		CaseStudyID: &cs.ID,
	}, admin.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "testimonials", tm.ID) })

	if err := NewCaseStudyStore(db).Delete(ctx, cs.ID); err != nil {
		t.Fatalf("delete case study: %v", err)
	}
	got, err := s.FindByID(ctx, tm.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID: %v, %v", got, err)
	}
	if got.CaseStudyID != nil {
		t.Errorf("case_study_id = %v, want nil", got.CaseStudyID)
	}
}

func TestClientLogoStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewClientLogoStore(db)
	ctx := context.Background()
	admin := testAdmin(t, db)

	logo, err := s.Create(ctx, &models.ClientLogo{
		Name:     "Acme",
		LogoURL:  "https://cdn.example.com/acme.svg",
		IsActive: false,
	}, admin.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "client_logos", logo.ID) })

	active, err := s.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, l := range active {
		if l.ID == logo.ID {
			t.Error("inactive logo listed")
		}
	}

	logo.IsActive = true
	logo.WebsiteURL = strPtr("https://acme.example.com")
	updated, err := s.Update(ctx, logo.ID, logo, admin.ID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsActive || updated.WebsiteURL == nil {
		t.Errorf("updated = %+v", updated)
	}

	if err := s.Delete(ctx, logo.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.FindByID(ctx, logo.ID); got != nil {
		t.Error("logo still present after delete")
	}
}
