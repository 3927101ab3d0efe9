// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"portfolio/internal/middleware"
	"portfolio/internal/store"
	"portfolio/internal/transport"
	"portfolio/internal/validate"
)

// maxBodySize caps JSON and form submissions (uploads have their own limit).
const maxBodySize = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// writeFailure maps an error from validation or the repository to its
// HTTP response. Unclassified errors are logged and answered with 500.
func writeFailure(w http.ResponseWriter, op string, err error) {
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", verrs.Details())
	case errors.Is(err, store.ErrSlugConflict):
		transport.WriteError(w, http.StatusBadRequest, "Slug already exists", map[string]string{"slug": "slug already exists"})
	case errors.Is(err, store.ErrNotFound):
		transport.WriteError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, errBodyTooLarge):
		transport.WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
	default:
		slog.Error(op+" failed", "error", err)
		transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func writeNotFound(w http.ResponseWriter) {
	transport.WriteError(w, http.StatusNotFound, "Not found", nil)
}

// readRaw decodes a JSON or form-encoded submission into a validate.Raw.
func readRaw(w http.ResponseWriter, r *http.Request) (validate.Raw, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, bodyError(err)
		}
		raw, err := validate.FromJSON(body)
		if err != nil {
			return nil, validate.Errors{{Field: "body", Message: err.Error()}}
		}
		return raw, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, bodyError(err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
	}
	return validate.FromForm(r.PostForm), nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return validate.Errors{{Field: "body", Message: fmt.Sprintf("unreadable body: %v", err)}}
}

// parseID reads the {id} URL parameter, answering 400 when it is not a UUID.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actorID returns the acting admin set by middleware.RequireAdmin. It
// answers 401 when the handler is reached without one.
func actorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	actor := middleware.ActorFromCtx(r.Context())
	if actor == nil {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return actor.ID, true
}
