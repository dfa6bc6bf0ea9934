// Package seeder loads demo pins and their room messages into a document store.
package seeder

import (
	"context"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// DocumentWriter is the write side of a document store.
// Implemented by the postgres item and message repos and by firestoredb.Store.
type DocumentWriter interface {
	AddItem(ctx context.Context, item domain.NewItem) (string, error)
	AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error)
}

// BlobWriter stores pictures. Put never overwrites an existing name.
type BlobWriter interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	URL(ctx context.Context, name string) (string, error)
}

// PictureReader loads picture bytes from a path or URL.
type PictureReader interface {
	Read(ctx context.Context, uri string) ([]byte, error)
}

// Thumbnailer renders the inline preview.
type Thumbnailer interface {
	Thumbnail(data []byte, width int) (string, error)
}

// TxRunner runs fn in a transaction when the store supports one.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoTx runs fn directly. Used with stores that have no multi-document transactions.
type NoTx struct{}

// RunInTx calls fn with ctx.
func (NoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
