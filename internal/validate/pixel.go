// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import "portfolio/internal/models"

const maxPixelIDLen = 100

// pixelIntegration names one tracking integration's id and flag fields.
type pixelIntegration struct {
	label   string
	idField string
	flag    string
}

var pixelIntegrations = []pixelIntegration{
	{"Meta Pixel", "meta_pixel_id", "is_meta_enabled"},
	{"Instagram Pixel", "instagram_pixel_id", "is_instagram_enabled"},
	{"Google Analytics", "google_analytics_id", "is_google_analytics_enabled"},
	{"Google Tag Manager", "gtm_container_id", "is_gtm_enabled"},
}

// PixelSettings validates the tracking configuration. Each enabled
// integration must carry its id; all four are checked independently.
func PixelSettings(raw Raw) (*models.PixelSettings, error) {
	p := newParser(raw)

	ids := make(map[string]*string, len(pixelIntegrations))
	flags := make(map[string]bool, len(pixelIntegrations))
	for _, in := range pixelIntegrations {
		ids[in.idField] = p.optional(in.idField, maxPixelIDLen)
		flags[in.flag] = p.raw.Bool(in.flag)
		if flags[in.flag] && ids[in.idField] == nil {
			p.errs.add(in.idField, "is required when "+in.label+" is enabled")
		}
	}

	if err := p.errs.err(); err != nil {
		return nil, err
	}
	return &models.PixelSettings{
		MetaPixelID:              ids["meta_pixel_id"],
		IsMetaEnabled:            flags["is_meta_enabled"],
		InstagramPixelID:         ids["instagram_pixel_id"],
		IsInstagramEnabled:       flags["is_instagram_enabled"],
		GoogleAnalyticsID:        ids["google_analytics_id"],
		IsGoogleAnalyticsEnabled: flags["is_google_analytics_enabled"],
		GTMContainerID:           ids["gtm_container_id"],
		IsGTMEnabled:             flags["is_gtm_enabled"],
	}, nil
}
