// Package blob provides write-once picture storage.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Local stores blobs as files in a single directory.
type Local struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

// NewLocal creates dir if needed. Download URLs are built as
// baseURL/<escaped name>.
func NewLocal(logger *slog.Logger, dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create dir: %w", err)
	}
	return &Local{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With("adapter", "blob_local"),
	}, nil
}

// Put writes data under name. An existing blob is never replaced.
func (l *Local) Put(ctx context.Context, name string, data []byte, contentType string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("blob %s: %w", name, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("blob: create %s: %w", name, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("blob: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("blob: close %s: %w", name, err)
	}

	l.log.DebugContext(ctx, "blob stored",
		slog.String("name", name),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// URL returns the download URL of an existing blob.
func (l *Local) URL(ctx context.Context, name string) (string, error) {
	path, err := l.path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("blob %s: %w", name, domain.ErrNotFound)
		}
		return "", fmt.Errorf("blob: stat %s: %w", name, err)
	}
	return l.baseURL + "/" + url.PathEscape(name), nil
}

// Ping checks that the blob directory is still there.
func (l *Local) Ping(ctx context.Context) error {
	fi, err := os.Stat(l.dir)
	if err != nil {
		return fmt.Errorf("blob: stat dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("blob: %s is not a directory", l.dir)
	}
	return nil
}

// Handler serves stored blobs. Mount it with the prefix of the base URL
// stripped.
func (l *Local) Handler() http.Handler {
	return http.FileServer(http.Dir(l.dir))
}

func (l *Local) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", domain.NewValidationError("name", "must be a plain file name")
	}
	return filepath.Join(l.dir, name), nil
}
