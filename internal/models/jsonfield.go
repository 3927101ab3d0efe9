// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Metric is one highlight statistic shown on a case study.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metrics is an ordered label → value collection. Labels are unique; setting
// an existing label replaces its value without moving it.
//
// On the API it is encoded as a JSON object whose keys keep insertion order.
// In the database it is a JSON array of {label, value}, because jsonb does
// not preserve object key order.
type Metrics []Metric

// Set adds or replaces the value for label.
func (m *Metrics) Set(label, value string) {
	for i := range *m {
		if (*m)[i].Label == label {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Metric{Label: label, Value: value})
}

// Get returns the value stored for label.
func (m Metrics) Get(label string) (string, bool) {
	for _, p := range m {
		if p.Label == label {
			return p.Value, true
		}
	}
	return "", false
}

// Preview returns at most n leading metrics.
func (m Metrics) Preview(n int) Metrics {
	if n < 0 || len(m) <= n {
		return m
	}
	return m[:n]
}

// MarshalJSON encodes the metrics as an ordered JSON object.
func (m Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts either an object (API form) or an array of
// {label, value} pairs (storage form). Object key order is preserved.
// Non-string values are kept as their JSON text.
func (m *Metrics) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}

	if data[0] == '[' {
		var pairs []Metric
		if err := json.Unmarshal(data, &pairs); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		out := make(Metrics, 0, len(pairs))
		for _, p := range pairs {
			out.Set(p.Label, p.Value)
		}
		*m = out
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("metrics: expected a JSON object")
	}

	out := Metrics{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		label, ok := tok.(string)
		if !ok {
			return errors.New("metrics: expected a string key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("metrics %q: %w", label, err)
		}
		out.Set(label, rawText(raw))
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	*m = out
	return nil
}

// rawText unwraps JSON strings and returns other values verbatim.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

// Value implements driver.Valuer using the storage array form.
func (m Metrics) Value() (driver.Value, error) {
	pairs := []Metric(m)
	if pairs == nil {
		pairs = []Metric{}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *Metrics) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("metrics: cannot scan %T", src)
	}
}

// StringList is a nullable JSON array of strings. A nil list is stored as
// NULL and means "absent"; an empty non-nil list is an explicit empty set.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("string list: cannot scan %T", src)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
