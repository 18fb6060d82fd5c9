package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/errs"
)

// allowedExtensions is the fixed image allow-list; checks are case-insensitive.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploadDir string
	maxBytes  int64
}

func newUploadHandler(uploadDir string, maxBytes int64) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
	}
}

// sanitizeFilename strips any path components and replaces characters outside
// [A-Za-z0-9._-] so the stored name is safe to join under the upload root.
func sanitizeFilename(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	return strings.Trim(base, "._")
}

// upload accepts a single multipart file field named "file", writes it under
// the upload root with a unix-timestamp prefix, and returns the relative URL.
// Bodies over the configured limit fail with 413.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewPayloadTooLargeError(h.maxBytes))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}
		defer file.Close()

		if header.Filename == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("no file selected"))
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid file type"))
			return
		}

		sanitized := sanitizeFilename(header.Filename)
		if sanitized == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid filename"))
			return
		}

		// Two identical filenames within the same second still collide;
		// accepted as a known limitation.
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), sanitized)

		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to prepare upload directory"))
			return
		}

		dst, err := os.Create(filepath.Join(h.uploadDir, filename))
		if err != nil {
			h.logger.Error().Err(err).Str("filename", filename).Msg("Failed to create upload file")
			h.responder.WriteError(w, errs.NewInternalError("failed to store file"))
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			h.logger.Error().Err(err).Str("filename", filename).Msg("Failed to write upload file")
			h.responder.WriteError(w, errs.NewInternalError("failed to store file"))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{
			"message": "File uploaded",
			"url":     "/uploads/" + filename,
		})
	}
}
