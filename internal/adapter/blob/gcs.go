package blob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// GCS stores blobs as objects in a Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	log    *slog.Logger
}

// NewGCS connects to bucket. An empty credentialsFile falls back to
// application default credentials.
func NewGCS(ctx context.Context, logger *slog.Logger, bucket, credentialsFile string) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("blob: gcs client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: client.Bucket(bucket),
		log:    logger.With("adapter", "blob_gcs", "bucket", bucket),
	}, nil
}

// Put uploads data under name with a does-not-exist precondition, so an
// existing object is never replaced.
func (g *GCS) Put(ctx context.Context, name string, data []byte, contentType string) error {
	w := g.bucket.Object(name).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("blob: upload %s: %w", name, mapGCSError(err))
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("blob: upload %s: %w", name, mapGCSError(err))
	}

	g.log.DebugContext(ctx, "object uploaded",
		slog.String("name", name),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// URL returns the media link of an existing object.
func (g *GCS) URL(ctx context.Context, name string) (string, error) {
	attrs, err := g.bucket.Object(name).Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("blob: attrs %s: %w", name, mapGCSError(err))
	}
	return attrs.MediaLink, nil
}

// Ping reads the bucket metadata.
func (g *GCS) Ping(ctx context.Context) error {
	if _, err := g.bucket.Attrs(ctx); err != nil {
		return fmt.Errorf("blob: bucket attrs: %w", mapGCSError(err))
	}
	return nil
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}

func mapGCSError(err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return domain.ErrNotFound
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusPreconditionFailed:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, gerr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, gerr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrUnauthorized, gerr.Message)
		}
	}
	return err
}
