// Package media stores uploaded images and releases them when the owning
// record no longer references them.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/config"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	// ErrUnsupportedType is returned for uploads that are not images.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrEmptyFile is returned for zero-length uploads.
	ErrEmptyFile = errors.New("empty file")
	// ErrTooManyFiles is returned when a request carries more files than allowed.
	ErrTooManyFiles = errors.New("too many files")
)

// Upload is a single file received with a create or update request.
type Upload struct {
	Filename    string    // Original client file name
	ContentType string    // Declared content type; the sniffed type is authoritative
	Size        int64     // Size in bytes, or -1 when unknown
	Body        io.Reader // File contents
}

// Storage stores uploaded files and returns references to them.
//
//go:generate mockgen -source=media.go -destination=mock_media.go -package=media
type Storage interface {
	// Ingest stores the upload and returns its reference (a path or URL).
	Ingest(ctx context.Context, upload Upload) (string, error)
	// Release deletes the stored bytes. Releasing a missing object is not an error.
	Release(ctx context.Context, ref string) error
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.Media, s3cfg config.S3) (Storage, error) {
	switch cfg.Backend {
	case config.MediaBackendLocal:
		return NewLocalStorage(cfg.LocalDir, cfg.URLPrefix)
	case config.MediaBackendS3:
		return NewS3Storage(ctx, s3cfg)
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}

// IngestAll stores every upload or none of them. When one upload fails, the
// already stored ones are released and the error is returned.
func IngestAll(ctx context.Context, storage Storage, uploads []Upload, maxFiles int) ([]string, error) {
	if maxFiles > 0 && len(uploads) > maxFiles {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyFiles, maxFiles)
	}

	refs := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		ref, err := storage.Ingest(ctx, upload)
		if err != nil {
			logger.FromContext(ctx).Errorw("media ingest failed", "file", upload.Filename, "error", err)
			ReleaseAll(ctx, storage, refs)
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ReleaseAll releases every reference. Failures are logged and joined;
// one failure does not stop the remaining releases.
func ReleaseAll(ctx context.Context, storage Storage, refs []string) error {
	var errs []error
	for _, ref := range refs {
		if err := storage.Release(ctx, ref); err != nil {
			logger.FromContext(ctx).Warnw("media release failed", "ref", ref, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sniff detects the content type from the first bytes of body and returns a
// reader that still yields the whole body. Only images are accepted.
func sniff(body io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	if n == 0 {
		return "", nil, ErrEmptyFile
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return contentType, io.MultiReader(bytes.NewReader(head), body), nil
}

// objectName builds a collision-resistant name:
// <unix millis>-<random suffix>-<sanitized original name>.
func objectName(filename string) (string, error) {
	suffix, err := gonanoid.New(10)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), suffix, sanitize(filename)), nil
}

const maxNameLen = 100

// sanitize keeps the base name and replaces each run of characters outside
// [A-Za-z0-9._] with a single dash.
func sanitize(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))

	var b strings.Builder
	dash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			dash = false
		case !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	clean := strings.Trim(b.String(), ".-")
	if len(clean) > maxNameLen {
		clean = clean[len(clean)-maxNameLen:]
	}
	if clean == "" {
		return "file"
	}
	return clean
}
