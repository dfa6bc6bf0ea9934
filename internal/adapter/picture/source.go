// Package picture reads the bytes of a user-selected picture.
package picture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// MaxSize bounds the number of bytes read for a single picture.
const MaxSize = 20 << 20

// Source reads pictures from the local file system or over HTTP.
type Source struct {
	httpClient *http.Client
	log        *slog.Logger
}

// NewSource creates a Source with a 30 second HTTP timeout.
func NewSource(logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "picture"),
	}
}

// Read returns the picture at uri. Accepted forms are a plain path, a
// file:// URI and an http(s) URL. A missing picture yields domain.ErrNotFound.
func (s *Source) Read(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return s.readFile(uri)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return s.readFile(u.Path)
	case "http", "https":
		return s.fetch(ctx, u.String())
	default:
		return nil, domain.NewValidationError("picture", "unsupported uri scheme "+u.Scheme)
	}
}

func (s *Source) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("picture %s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("picture: open: %w", err)
	}
	defer f.Close()

	return readLimited(f)
}

func (s *Source) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("picture: create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.ErrorContext(ctx, "picture download failed", slog.String("url", reqURL), slog.String("error", err.Error()))
		return nil, fmt.Errorf("picture: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("picture %s: %w", reqURL, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		s.log.ErrorContext(ctx, "picture download failed", slog.String("url", reqURL), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("picture: unexpected status %d", resp.StatusCode)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "picture downloaded",
		slog.String("url", reqURL),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("picture: read: %w", err)
	}
	if len(data) > MaxSize {
		return nil, domain.NewValidationError("picture", fmt.Sprintf("larger than %d bytes", MaxSize))
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("picture", "empty")
	}
	return data, nil
}
