// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging inspects uploaded images and produces JPEG thumbnails
// for the admin media library and portfolio cards.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// ThumbWidth is the maximum thumbnail width in pixels.
	ThumbWidth = 480

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxPixels guards against decompression bombs.
	maxPixels = 50_000_000
)

// ErrTooLarge is returned for images whose pixel count exceeds the limit.
var ErrTooLarge = errors.New("image dimensions too large")

// Allowed lists the accepted upload types and their file extensions.
var Allowed = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// DetectType sniffs the content type of data. SVG is recognised by its
// root element since http.DetectContentType reports it as XML or text.
func DetectType(data []byte) string {
	ct := http.DetectContentType(data)
	switch ct {
	case "text/xml; charset=utf-8", "text/plain; charset=utf-8":
		head := data
		if len(head) > 1024 {
			head = head[:1024]
		}
		if bytes.Contains(head, []byte("<svg")) {
			return "image/svg+xml"
		}
	}
	return ct
}

// IsRaster reports whether contentType can be decoded and thumbnailed.
func IsRaster(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// Thumbnail scales data down to maxWidth, keeping the aspect ratio, and
// encodes it as JPEG. Returns nil when the image is already narrow enough.
func Thumbnail(data []byte, maxWidth int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}
	if cfg.Width <= maxWidth {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	height := max(1, bounds.Dy()*maxWidth/bounds.Dx())

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
