// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewDisabledWithoutCredentials(t *testing.T) {
	c, err := New("", "us-east-1", "", "", "portfolio", "")
	if err != nil || c != nil {
		t.Errorf("New without endpoint = %v, %v; want nil, nil", c, err)
	}
	c, err = New("http://localhost:9000", "us-east-1", "key", "", "portfolio", "")
	if err != nil || c != nil {
		t.Errorf("New without secret = %v, %v; want nil, nil", c, err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New("http://localhost:9000", "us-east-1", "key", "secret", "", ""); err == nil {
		t.Error("expected error for empty bucket")
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		wantURL   string
	}{
		{"path style", "", "http://localhost:9000/portfolio/uploads/2026/10/a.jpg"},
		{"cdn", "https://cdn.agency.example/", "https://cdn.agency.example/uploads/2026/10/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("http://localhost:9000/", "us-east-1", "key", "secret", "portfolio", tt.publicURL)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if url := c.FileURL("uploads/2026/10/a.jpg"); url != tt.wantURL {
				t.Errorf("FileURL = %q, want %q", url, tt.wantURL)
			}
		})
	}
}
