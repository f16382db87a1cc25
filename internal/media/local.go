package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
)

// LocalStorage keeps uploads in a directory served under a URL prefix.
// References have the form "<prefix>/<name>", e.g. "uploads/1700000000000-x1-photo.jpg".
type LocalStorage struct {
	dir    string
	prefix string
}

// NewLocalStorage creates dir if needed.
func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory cannot be empty")
	}
	prefix := strings.Trim(urlPrefix, "/")
	if prefix == "" {
		return nil, fmt.Errorf("url prefix cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{dir: dir, prefix: prefix}, nil
}

// Dir returns the directory holding the files.
func (s *LocalStorage) Dir() string { return s.dir }

// Prefix returns the URL prefix, without slashes, under which files are served.
func (s *LocalStorage) Prefix() string { return s.prefix }

func (s *LocalStorage) Ingest(ctx context.Context, upload Upload) (string, error) {
	_, body, err := sniff(upload.Body)
	if err != nil {
		return "", err
	}

	name, err := objectName(upload.Filename)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	ref := s.prefix + "/" + name
	logger.FromContext(ctx).Infow("media stored", "ref", ref, "bytes", written)
	return ref, nil
}

// Release removes the file behind ref. References outside this storage are ignored.
func (s *LocalStorage) Release(ctx context.Context, ref string) error {
	name, ok := s.nameOf(ref)
	if !ok {
		logger.FromContext(ctx).Warnw("media release skipped, foreign reference", "ref", ref)
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.FromContext(ctx).Infow("media released", "ref", ref)
	return nil
}

// nameOf extracts the file name from ref, rejecting anything that could
// escape the upload directory.
func (s *LocalStorage) nameOf(ref string) (string, bool) {
	name, ok := strings.CutPrefix(strings.TrimPrefix(ref, "/"), s.prefix+"/")
	if !ok || name == "" || name == "." || name == ".." {
		return "", false
	}
	if strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, true
}
