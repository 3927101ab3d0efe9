// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/imaging"
	"portfolio/internal/models"
	"portfolio/internal/transport"
)

const (
	// maxUploadSize is the maximum allowed image upload size (10 MB).
	maxUploadSize = 10 << 20

	// mediaPageSize is the number of media rows per library page.
	mediaPageSize = 50
)

// mediaView is a media row with its public URLs resolved.
type mediaView struct {
	models.Media
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url,omitempty"`
}

func (a *Admin) view(m models.Media) mediaView {
	v := mediaView{Media: m, URL: a.objects.FileURL(m.S3Key)}
	if m.ThumbS3Key != nil {
		v.ThumbURL = a.objects.FileURL(*m.ThumbS3Key)
	}
	return v
}

// UploadMedia stores an image in object storage and records it. The
// returned URL is what forms submit as thumbnail, hero, gallery, logo or
// avatar fields.
func (a *Admin) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if a.objects == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "Object storage is not configured", nil)
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || r.ContentLength > maxUploadSize {
			transport.WriteError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10 MB.", nil)
			return
		}
		transport.WriteError(w, http.StatusBadRequest, "Expected a multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "No file provided", nil)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		transport.WriteError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10 MB.", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeFailure(w, "read upload", err)
		return
	}

	contentType := imaging.DetectType(data)
	ext, allowed := imaging.Allowed[contentType]
	if !allowed {
		transport.WriteError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed", contentType), nil)
		return
	}

	now := time.Now()
	fileID := uuid.New().String()
	prefix := fmt.Sprintf("uploads/%d/%02d/%s", now.Year(), now.Month(), fileID)
	key := prefix + ext

	ctx := r.Context()
	if err := a.objects.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		writeFailure(w, "upload object", err)
		return
	}

	// Thumbnails are best-effort; the original is already stored.
	var thumbKey *string
	if imaging.IsRaster(contentType) {
		thumb, err := imaging.Thumbnail(data, imaging.ThumbWidth)
		switch {
		case err != nil:
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		case thumb != nil:
			tk := prefix + "_thumb.jpg"
			if err := a.objects.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	created, err := a.media.Create(ctx, &models.Media{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		Bucket:       a.objects.Bucket(),
		S3Key:        key,
		ThumbS3Key:   thumbKey,
		UploaderID:   &actor,
	})
	if err != nil {
		a.removeObjects(r, key, thumbKey)
		writeFailure(w, "record media", err)
		return
	}

	v := a.view(*created)
	transport.WriteJSON(w, http.StatusCreated, map[string]any{
		"id":        created.ID,
		"url":       v.URL,
		"thumb_url": v.ThumbURL,
		"filename":  created.OriginalName,
		"size":      created.HumanSize(),
		"type":      created.ContentType,
	})
}

// ListMedia returns one page of the media library, newest first.
func (a *Admin) ListMedia(w http.ResponseWriter, r *http.Request) {
	if a.objects == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "Object storage is not configured", nil)
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	ctx := r.Context()
	items, err := a.media.List(ctx, mediaPageSize, (page-1)*mediaPageSize)
	if err != nil {
		writeFailure(w, "list media", err)
		return
	}
	total, err := a.media.Count(ctx)
	if err != nil {
		writeFailure(w, "count media", err)
		return
	}

	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		views = append(views, a.view(m))
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"items": views,
		"page":  page,
		"total": total,
	})
}

// DeleteMedia removes a media row and then its objects.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorID(w, r); !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	// Delete from DB first (returns the row for object cleanup).
	deleted, err := a.media.Delete(r.Context(), id)
	if err != nil {
		writeFailure(w, "delete media", err)
		return
	}
	a.removeObjects(r, deleted.S3Key, deleted.ThumbS3Key)
	w.WriteHeader(http.StatusNoContent)
}

// removeObjects deletes stored objects, logging failures.
func (a *Admin) removeObjects(r *http.Request, key string, thumbKey *string) {
	if a.objects == nil {
		slog.Warn("object storage not configured, leaving objects", "key", key)
		return
	}
	ctx := r.Context()
	if err := a.objects.Delete(ctx, key); err != nil {
		slog.Warn("object delete failed", "error", err, "key", key)
	}
	if thumbKey != nil {
		if err := a.objects.Delete(ctx, *thumbKey); err != nil {
			slog.Warn("thumbnail delete failed", "error", err, "key", *thumbKey)
		}
	}
}
