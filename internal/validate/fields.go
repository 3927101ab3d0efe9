// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validate turns raw submitted values into typed, constraint-checked
// records. It performs no I/O; uniqueness is enforced by the store.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"portfolio/internal/models"
	"portfolio/internal/slug"
)

const (
	maxSlugLen       = 200
	maxURLLen        = 2_048
	maxDisplayOrder  = math.MaxInt32
	maxShortTextLen  = 200
	maxNarrativeLen  = 20_000
	maxMetaTitle     = 60
	maxMetaDesc      = 160
	maxKeywordsInput = 1_000
)

// fieldCheck runs go-playground format checks on single values.
var fieldCheck = validator.New()

// parser reads typed values out of a Raw while collecting errors, so every
// problem is reported in one pass.
type parser struct {
	raw  Raw
	errs Errors
}

func newParser(raw Raw) *parser {
	if raw == nil {
		raw = Raw{}
	}
	return &parser{raw: raw}
}

// text reads a required string whose rune length must be within [min, max].
func (p *parser) text(field string, min, max int) string {
	s := p.raw.String(field)
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		p.errs.add(field, "is required")
	case n < min || n > max:
		p.errs.add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
	return s
}

// optional reads an optional string of at most max runes.
func (p *parser) optional(field string, max int) *string {
	s := p.raw.Optional(field)
	if s != nil && utf8.RuneCountInString(*s) > max {
		p.errs.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return s
}

// url reads an optional absolute http or https URL. Other schemes such as
// javascript: and data: are rejected since these values become public links.
func (p *parser) url(field string) *string {
	s := p.optional(field, maxURLLen)
	if s != nil && fieldCheck.Var(*s, "http_url") != nil {
		p.errs.add(field, "must be a valid http or https URL")
	}
	return s
}

// requiredURL reads a URL that must be present.
func (p *parser) requiredURL(field string) string {
	s := p.url(field)
	if s == nil {
		p.errs.add(field, "is required")
		return ""
	}
	return *s
}

// hexColor reads an optional CSS hex colour.
func (p *parser) hexColor(field string) *string {
	s := p.raw.Optional(field)
	if s != nil && fieldCheck.Var(*s, "hexcolor") != nil {
		p.errs.add(field, "must be a hex colour such as #1A2B3C")
	}
	return s
}

// id reads an optional UUID reference.
func (p *parser) id(field string) *uuid.UUID {
	s := p.raw.String(field)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		p.errs.add(field, "must be a valid id")
		return nil
	}
	return &id
}

// slug resolves the record slug from an explicit value or source text.
// An empty source is already reported by its own field.
func (p *parser) slug(source string) string {
	explicit := p.raw.String("slug")
	s := slug.Resolve(explicit, source)
	switch {
	case s == "" && (explicit != "" || source != ""):
		p.errs.add("slug", "could not be derived; provide a slug")
	case len(s) > maxSlugLen:
		p.errs.add("slug", fmt.Sprintf("must be at most %d characters", maxSlugLen))
	}
	return s
}

// displayOrder coerces the manual sort key. Missing or non-numeric input
// becomes 0, fractions truncate, and negative values are rejected.
func (p *parser) displayOrder() int {
	s := p.raw.String("display_order")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	switch {
	case f < 0:
		p.errs.add("display_order", "must be a non-negative integer")
		return 0
	case f > maxDisplayOrder:
		p.errs.add("display_order", "is too large")
		return 0
	}
	return int(f)
}

// Metrics parses a label → value JSON object, dropping rows with an empty
// label or value. Text that is not a JSON object yields no metrics.
func Metrics(text string) models.Metrics {
	out := models.Metrics{}
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}

	var parsed models.Metrics
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return out
	}
	for _, m := range parsed {
		label := strings.TrimSpace(m.Label)
		value := strings.TrimSpace(m.Value)
		if label == "" || value == "" {
			continue
		}
		out.Set(label, value)
	}
	return out
}

// Keywords splits a comma-joined keyword string into trimmed tokens. A JSON
// string array is accepted as well. Nil is returned when no token survives.
func Keywords(text string) models.StringList {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var tokens []string
	if !strings.HasPrefix(text, "[") || json.Unmarshal([]byte(text), &tokens) != nil {
		tokens = strings.Split(text, ",")
	}

	var out models.StringList
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Gallery parses a JSON-encoded list of image URLs. Malformed JSON or a
// non-array value yields nil (absent); "[]" yields an explicit empty list.
// Blank and non-string elements are skipped.
func Gallery(text string) models.StringList {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil
	}

	out := models.StringList{}
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
