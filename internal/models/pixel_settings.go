// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PixelSettings is the single row configuring the four tracking
// integrations injected into public pages.
type PixelSettings struct {
	MetaPixelID        *string `json:"meta_pixel_id"`
	IsMetaEnabled      bool    `json:"is_meta_enabled"`
	InstagramPixelID   *string `json:"instagram_pixel_id"`
	IsInstagramEnabled bool    `json:"is_instagram_enabled"`

	GoogleAnalyticsID        *string `json:"google_analytics_id"`
	IsGoogleAnalyticsEnabled bool    `json:"is_google_analytics_enabled"`
	GTMContainerID           *string `json:"gtm_container_id"`
	IsGTMEnabled             bool    `json:"is_gtm_enabled"`

	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ActivePixels lists the identifiers of enabled integrations, keyed by
// integration name. Disabled or unconfigured integrations are omitted.
func (p *PixelSettings) ActivePixels() map[string]string {
	out := make(map[string]string, 4)
	add := func(name string, enabled bool, id *string) {
		if enabled && id != nil && *id != "" {
			out[name] = *id
		}
	}
	add("meta_pixel", p.IsMetaEnabled, p.MetaPixelID)
	add("instagram_pixel", p.IsInstagramEnabled, p.InstagramPixelID)
	add("google_analytics", p.IsGoogleAnalyticsEnabled, p.GoogleAnalyticsID)
	add("google_tag_manager", p.IsGTMEnabled, p.GTMContainerID)
	return out
}
