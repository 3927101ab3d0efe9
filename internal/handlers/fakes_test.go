// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fakes_test.go provides in-memory implementations of the repository and
// collaborator interfaces so handler tests run without PostgreSQL,
// Valkey or object storage.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/session"
	"portfolio/internal/store"
)

// --- Case studies ---

type fakeCaseStudies struct {
	items []models.CaseStudy
	err   error
}

func (f *fakeCaseStudies) index(id uuid.UUID) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeCaseStudies) slugTaken(slug string, exclude uuid.UUID) bool {
	for _, cs := range f.items {
		if cs.Slug == slug && cs.ID != exclude {
			return true
		}
	}
	return false
}

func (f *fakeCaseStudies) List(context.Context) ([]models.CaseStudy, error) {
	return f.items, f.err
}

func (f *fakeCaseStudies) ListPublished(_ context.Context, featuredOnly bool) ([]models.CaseStudy, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.CaseStudy{}
	for _, cs := range f.items {
		if cs.IsPublished && (!featuredOnly || cs.IsFeatured) {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (f *fakeCaseStudies) FindByID(_ context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	if f.err != nil {
		return nil, f.err
	}
	if i := f.index(id); i >= 0 {
		cs := f.items[i]
		return &cs, nil
	}
	return nil, nil
}

func (f *fakeCaseStudies) FindPublishedBySlug(_ context.Context, slug string) (*models.CaseStudy, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cs := range f.items {
		if cs.Slug == slug && cs.IsPublished {
			return &cs, nil
		}
	}
	return nil, nil
}

func (f *fakeCaseStudies) Create(_ context.Context, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.slugTaken(cs.Slug, uuid.Nil) {
		return nil, store.ErrSlugConflict
	}
	created := *cs
	created.ID = uuid.New()
	created.CreatedBy, created.UpdatedBy = &actorID, &actorID
	created.CreatedAt, created.UpdatedAt = time.Now(), time.Now()
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeCaseStudies) Update(_ context.Context, id uuid.UUID, cs *models.CaseStudy, actorID uuid.UUID) (*models.CaseStudy, error) {
	if f.err != nil {
		return nil, f.err
	}
	i := f.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	if f.slugTaken(cs.Slug, id) {
		return nil, store.ErrSlugConflict
	}
	updated := *cs
	updated.ID = id
	updated.CreatedBy, updated.CreatedAt = f.items[i].CreatedBy, f.items[i].CreatedAt
	if updated.GalleryURLs == nil {
		updated.GalleryURLs = f.items[i].GalleryURLs
	}
	updated.UpdatedBy, updated.UpdatedAt = &actorID, time.Now()
	f.items[i] = updated
	return &updated, nil
}

func (f *fakeCaseStudies) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	i := f.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// --- Categories ---

type fakeCategories struct {
	items       []models.Category
	caseStudies *fakeCaseStudies
}

func (f *fakeCategories) index(id uuid.UUID) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeCategories) slugTaken(slug string, exclude uuid.UUID) bool {
	for _, c := range f.items {
		if c.Slug == slug && c.ID != exclude {
			return true
		}
	}
	return false
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	return f.items, nil
}

func (f *fakeCategories) ListActive(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.items {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	if i := f.index(id); i >= 0 {
		c := f.items[i]
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCategories) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	if f.slugTaken(c.Slug, uuid.Nil) {
		return nil, store.ErrSlugConflict
	}
	created := *c
	created.ID = uuid.New()
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeCategories) Update(_ context.Context, id uuid.UUID, c *models.Category) (*models.Category, error) {
	i := f.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	if f.slugTaken(c.Slug, id) {
		return nil, store.ErrSlugConflict
	}
	updated := *c
	updated.ID = id
	f.items[i] = updated
	return &updated, nil
}

func (f *fakeCategories) Delete(_ context.Context, id uuid.UUID) error {
	if f.caseStudies != nil {
		for i := range f.caseStudies.items {
			if cid := f.caseStudies.items[i].CategoryID; cid != nil && *cid == id {
				f.caseStudies.items[i].CategoryID = nil
			}
		}
	}
	i := f.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// --- Testimonials ---

type fakeTestimonials struct {
	items []models.Testimonial
}

func (f *fakeTestimonials) index(id uuid.UUID) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeTestimonials) List(context.Context) ([]models.Testimonial, error) {
	return f.items, nil
}

func (f *fakeTestimonials) ListPublished(_ context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	for _, t := range f.items {
		if t.IsPublished && (!featuredOnly || t.IsFeatured) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTestimonials) FindByID(_ context.Context, id uuid.UUID) (*models.Testimonial, error) {
	if i := f.index(id); i >= 0 {
		t := f.items[i]
		return &t, nil
	}
	return nil, nil
}

func (f *fakeTestimonials) Create(_ context.Context, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error) {
	created := *t
	created.ID = uuid.New()
	created.CreatedBy, created.UpdatedBy = &actorID, &actorID
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeTestimonials) Update(_ context.Context, id uuid.UUID, t *models.Testimonial, actorID uuid.UUID) (*models.Testimonial, error) {
	i := f.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	updated := *t
	updated.ID = id
	updated.UpdatedBy = &actorID
	f.items[i] = updated
	return &updated, nil
}

func (f *fakeTestimonials) Delete(_ context.Context, id uuid.UUID) error {
	i := f.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// --- Client logos ---

type fakeClientLogos struct {
	items []models.ClientLogo
}

func (f *fakeClientLogos) index(id uuid.UUID) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeClientLogos) List(context.Context) ([]models.ClientLogo, error) {
	return f.items, nil
}

func (f *fakeClientLogos) ListActive(context.Context) ([]models.ClientLogo, error) {
	out := []models.ClientLogo{}
	for _, l := range f.items {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeClientLogos) FindByID(_ context.Context, id uuid.UUID) (*models.ClientLogo, error) {
	if i := f.index(id); i >= 0 {
		l := f.items[i]
		return &l, nil
	}
	return nil, nil
}

func (f *fakeClientLogos) Create(_ context.Context, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error) {
	created := *l
	created.ID = uuid.New()
	created.CreatedBy, created.UpdatedBy = &actorID, &actorID
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeClientLogos) Update(_ context.Context, id uuid.UUID, l *models.ClientLogo, actorID uuid.UUID) (*models.ClientLogo, error) {
	i := f.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	updated := *l
	updated.ID = id
	updated.UpdatedBy = &actorID
	f.items[i] = updated
	return &updated, nil
}

func (f *fakeClientLogos) Delete(_ context.Context, id uuid.UUID) error {
	i := f.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// --- Pixel settings ---

type fakePixels struct {
	settings models.PixelSettings
}

func (f *fakePixels) Get(context.Context) (*models.PixelSettings, error) {
	p := f.settings
	return &p, nil
}

func (f *fakePixels) Save(_ context.Context, p *models.PixelSettings, actorID uuid.UUID) (*models.PixelSettings, error) {
	f.settings = *p
	f.settings.UpdatedBy = &actorID
	saved := f.settings
	return &saved, nil
}

// --- Media and object storage ---

type fakeMedia struct {
	items []models.Media
	err   error
}

func (f *fakeMedia) Create(_ context.Context, m *models.Media) (*models.Media, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *m
	created.ID = uuid.New()
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeMedia) List(_ context.Context, limit, offset int) ([]models.Media, error) {
	if offset >= len(f.items) {
		return []models.Media{}, nil
	}
	return f.items[offset:min(offset+limit, len(f.items))], nil
}

func (f *fakeMedia) Count(context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeMedia) Delete(_ context.Context, id uuid.UUID) (*models.Media, error) {
	for i, m := range f.items {
		if m.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeObjects) FileURL(key string) string { return "https://cdn.test/" + key }
func (f *fakeObjects) Bucket() string { return "portfolio-test" }

// --- Users and sessions ---

type fakeUsers struct {
	users     map[string]*models.User
	passwords map[uuid.UUID]string
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[string]*models.User{}, passwords: map[uuid.UUID]string{}}
	for _, u := range users {
		f.users[u.Email] = u
		f.passwords[u.ID] = "correct horse"
	}
	return f
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) CheckPassword(user *models.User, password string) bool {
	return f.passwords[user.ID] == password
}

func (f *fakeUsers) SetTOTPSecret(_ context.Context, id uuid.UUID, secret string) error {
	u, _ := f.FindByID(context.Background(), id)
	if u == nil {
		return store.ErrNotFound
	}
	u.TOTPSecret = &secret
	return nil
}

func (f *fakeUsers) EnableTOTP(_ context.Context, id uuid.UUID) error {
	u, _ := f.FindByID(context.Background(), id)
	if u == nil {
		return store.ErrNotFound
	}
	u.TOTPEnabled = true
	return nil
}

type fakeSessions struct {
	created   *session.Data
	updated   *session.Data
	destroyed bool
}

func (f *fakeSessions) Create(_ context.Context, w http.ResponseWriter, data *session.Data) (string, error) {
	f.created = data
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session"})
	return "test-session", nil
}

func (f *fakeSessions) Update(_ context.Context, _ *http.Request, data *session.Data) error {
	f.updated = data
	return nil
}

func (f *fakeSessions) Destroy(context.Context, http.ResponseWriter, *http.Request) error {
	f.destroyed = true
	return nil
}

// --- Cache ---

type spyCache struct {
	invalidations int
}

func (c *spyCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (c *spyCache) Set(context.Context, string, []byte) {}
func (c *spyCache) InvalidateAll(context.Context) { c.invalidations++ }
func (c *spyCache) Generation(context.Context) (int64, bool) {
	return int64(c.invalidations), true
}

// --- Request helpers ---

func adminUser() *models.User {
	return &models.User{
		ID:          uuid.New(),
		Email:       "admin@portfolio.test",
		DisplayName: "Admin",
		Role:        models.RoleAdmin,
		IsActive:    true,
	}
}

// jsonRequest builds a JSON request acting as actor (nil for anonymous).
func jsonRequest(method, target string, body any, actor *models.User) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	if actor != nil {
		r = r.WithContext(middleware.WithActor(r.Context(), actor))
	}
	return r
}

// formRequest builds a form-encoded request acting as actor.
func formRequest(method, target, form string, actor *models.User) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if actor != nil {
		r = r.WithContext(middleware.WithActor(r.Context(), actor))
	}
	return r
}

// withURLParam attaches a chi URL parameter to r.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return v
}

// errorBody mirrors transport.ErrorResponse for decoding.
type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}
