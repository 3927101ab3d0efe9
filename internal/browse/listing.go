// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package browse

import (
	"errors"
	"strings"

	"portfolio/internal/models"
)

// ErrPageOutOfRange is returned by Listing.GoTo for a page outside
// [1, TotalPages].
var ErrPageOutOfRange = errors.New("page out of range")

// Listing is the browsing state of one visitor: the loaded published set,
// the active filters, the viewport width and the current page. Any filter
// or width change sends the visitor back to page 1.
//
// A Listing is not safe for concurrent use.
type Listing struct {
	items    []models.CaseStudy
	criteria Criteria
	width    int
	page     int
	filtered []models.CaseStudy
}

// NewListing starts a listing over items on page 1 with no filters.
func NewListing(items []models.CaseStudy, width int) *Listing {
	l := &Listing{items: items, width: width}
	l.refilter()
	return l
}

func (l *Listing) refilter() {
	l.filtered = Filter(l.items, l.criteria)
	l.page = 1
}

// SetCategory selects a category slug; "" means all categories.
func (l *Listing) SetCategory(slug string) {
	l.criteria.Category = slug
	l.refilter()
}

// SetSearch sets the free-text query.
func (l *Listing) SetSearch(q string) {
	l.criteria.Search = strings.TrimSpace(q)
	l.refilter()
}

// Resize records a new viewport width.
func (l *Listing) Resize(width int) {
	l.width = width
	l.page = 1
}

// PageSize returns the page size for the current width.
func (l *Listing) PageSize() int {
	return PageSizeFor(l.width)
}

// TotalPages returns the page count of the filtered set.
func (l *Listing) TotalPages() int {
	return TotalPages(len(l.filtered), l.PageSize())
}

// GoTo moves to page. Page 1 is always reachable, even when nothing matches.
func (l *Listing) GoTo(page int) error {
	if page < 1 || (page > l.TotalPages() && page != 1) {
		return ErrPageOutOfRange
	}
	l.page = page
	return nil
}

// CurrentPage returns the 1-based current page number.
func (l *Listing) CurrentPage() int {
	return l.page
}

// Current renders the current page.
func (l *Listing) Current() Page {
	return build(l.filtered, l.criteria, l.page, l.PageSize())
}
