// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Media records an uploaded image held in object storage. Entities never
// reference Media rows directly; they store the public URL returned by
// the upload endpoint.
type Media struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	OriginalName string     `json:"original_name"`
	ContentType  string     `json:"content_type"`
	SizeBytes    int64      `json:"size_bytes"`
	Bucket       string     `json:"bucket"`
	S3Key        string     `json:"s3_key"`
	ThumbS3Key   *string    `json:"thumb_s3_key,omitempty"`
	UploaderID   *uuid.UUID `json:"uploader_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// HumanSize returns a human-readable file size string.
func (m *Media) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.SizeBytes)/float64(mb))
	case m.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
}
