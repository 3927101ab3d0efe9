// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders the narrative sections of a case study
// (challenge, strategy, results) from Markdown into HTML using goldmark.
// Raw HTML in the source is escaped, since the output is served to the
// public site.
package markdown

import (
	"bytes"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks
		extension.Typographer, // smart quotes and dashes
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Narrative holds the rendered story sections of a case study.
type Narrative struct {
	Challenge string `json:"challenge_html"`
	Strategy  string `json:"strategy_html"`
	Results   string `json:"results_html"`
}

// RenderNarrative renders the three narrative sections.
func RenderNarrative(challenge, strategy, results string) (*Narrative, error) {
	var n Narrative
	sections := []struct {
		name string
		src  string
		dst  *string
	}{
		{"challenge", challenge, &n.Challenge},
		{"strategy", strategy, &n.Strategy},
		{"results", results, &n.Results},
	}
	for _, s := range sections {
		out, err := ToHTML(s.src)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s.name, err)
		}
		*s.dst = out
	}
	return &n, nil
}
