// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

// Raw is an untyped submission keyed by field name, as it arrives from a
// form post or a JSON body. Values are kept as text; each validator decides
// how to read them.
type Raw map[string]string

// ErrNotObject is returned by FromJSON when the body is not a JSON object.
var ErrNotObject = errors.New("request body must be a JSON object")

// FromForm builds a Raw from form values, keeping the first value per key.
func FromForm(values url.Values) Raw {
	r := make(Raw, len(values))
	for k, v := range values {
		if len(v) > 0 {
			r[k] = v[0]
		}
	}
	return r
}

// FromJSON builds a Raw from a JSON object. String members keep their
// value, null members are dropped, and every other member keeps its JSON
// text so objects and arrays stay parseable with their key order intact.
func FromJSON(body []byte) (Raw, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, ErrNotObject
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, ErrNotObject
	}

	r := make(Raw, len(members))
	for k, raw := range members {
		raw = bytes.TrimSpace(raw)
		switch {
		case bytes.Equal(raw, []byte("null")):
			continue
		case len(raw) > 0 && raw[0] == '"':
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, err
			}
			r[k] = s
		default:
			r[k] = string(raw)
		}
	}
	return r, nil
}

// String returns the trimmed value for field, or "" when absent.
func (r Raw) String(field string) string {
	return strings.TrimSpace(r[field])
}

// Has reports whether field was submitted at all.
func (r Raw) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Optional returns the trimmed value, or nil when it is absent or empty.
func (r Raw) Optional(field string) *string {
	s := r.String(field)
	if s == "" {
		return nil
	}
	return &s
}

// Bool follows the checkbox convention: "on" or "true" is true, anything
// else (including absence) is false.
func (r Raw) Bool(field string) bool {
	switch strings.ToLower(r.String(field)) {
	case "on", "true":
		return true
	default:
		return false
	}
}
