// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import "strings"

// FieldError is a single user-correctable problem with one submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every field problem found in one validation pass.
type Errors []FieldError

// Error joins all field problems into one line.
func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details maps each failing field to its first message, for the
// "details" member of an error response.
func (e Errors) Details() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Field returns the first message recorded for field.
func (e Errors) Field(name string) (string, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Message, true
		}
	}
	return "", false
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// err returns nil for an empty list so callers can return it directly.
func (e Errors) err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
