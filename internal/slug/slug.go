// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlugChars matches runs of anything that isn't a letter, digit, or hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Café & Co. Growth 2026" → "cafe-and-co-growth-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(foldAccents(s)))
	result = strings.ReplaceAll(result, "'", "")
	result = strings.ReplaceAll(result, "&", " and ")
	result = nonSlugChars.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Resolve returns the slug for a record: the explicit override when one is
// given, otherwise one derived from source (a title or name). Both paths go
// through Generate, so "  My Slug " and "my-slug" resolve identically.
func Resolve(explicit, source string) string {
	if raw := strings.TrimSpace(explicit); raw != "" {
		return Generate(raw)
	}
	return Generate(source)
}

// foldAccents strips combining marks so "é" becomes "e".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
