// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package browse filters and paginates the published case study set for
// the public portfolio grid. The whole published set is small enough to
// hold in memory, so every operation here works on a loaded slice.
package browse

import (
	"strings"

	"portfolio/internal/models"
)

// Page sizes by viewport class.
const (
	WidePageSize   = 9
	MediumPageSize = 6
	NarrowPageSize = 4

	wideMinWidth   = 1024
	mediumMinWidth = 768

	// WindowSize is the maximum number of page buttons shown at once.
	WindowSize = 5
)

// Criteria narrows the published set. Empty fields match everything.
type Criteria struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Matches reports whether cs passes both the category and search filters.
func (c Criteria) Matches(cs *models.CaseStudy) bool {
	if c.Category != "" && cs.CategorySlug() != c.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(c.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(cs.Title), q) ||
		strings.Contains(strings.ToLower(cs.ClientName), q) {
		return true
	}
	return cs.Results != nil && strings.Contains(strings.ToLower(*cs.Results), q)
}

// Filter returns the items matching c, keeping their order.
func Filter(items []models.CaseStudy, c Criteria) []models.CaseStudy {
	out := make([]models.CaseStudy, 0, len(items))
	for i := range items {
		if c.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// PageSizeFor maps a viewport width in CSS pixels to a page size. An
// unknown width (zero or negative) gets the wide layout.
func PageSizeFor(width int) int {
	switch {
	case width <= 0 || width >= wideMinWidth:
		return WidePageSize
	case width >= mediumMinWidth:
		return MediumPageSize
	default:
		return NarrowPageSize
	}
}

// TotalPages returns how many pages n items fill at size per page.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage forces page into [1, total]. With no pages it returns 1.
func ClampPage(page, total int) int {
	if page < 1 || total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Window returns the page numbers to render as buttons: up to WindowSize
// pages centered on current, shifted to stay full width near either end.
func Window(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	current = ClampPage(current, total)

	start := current - WindowSize/2
	end := current + WindowSize/2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > total {
		start -= end - total
		end = total
	}
	if start < 1 {
		start = 1
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Paginate returns the slice of items on page (1-based) at size per page.
// Pages past the end are empty.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// Page is one rendered page of the filtered grid.
type Page struct {
	Items      []models.CaseStudy `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	TotalItems int                `json:"total_items"`
	Window     []int              `json:"window"`
	Criteria   Criteria           `json:"criteria"`
}

// Query filters items and returns the requested page for a viewport of
// width pixels. Out-of-range pages are clamped rather than rejected.
func Query(items []models.CaseStudy, c Criteria, page, width int) Page {
	return build(Filter(items, c), c, page, PageSizeFor(width))
}

func build(filtered []models.CaseStudy, c Criteria, page, size int) Page {
	total := TotalPages(len(filtered), size)
	page = ClampPage(page, total)
	return Page{
		Items:      Paginate(filtered, page, size),
		Page:       page,
		PageSize:   size,
		TotalPages: total,
		TotalItems: len(filtered),
		Window:     Window(page, total),
		Criteria:   c,
	}
}
