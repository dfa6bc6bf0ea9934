package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pinmoji/internal/adapter/blob"
	"github.com/heartmarshall/pinmoji/internal/adapter/firestoredb"
	"github.com/heartmarshall/pinmoji/internal/adapter/postgres"
	"github.com/heartmarshall/pinmoji/internal/adapter/postgres/item"
	"github.com/heartmarshall/pinmoji/internal/adapter/postgres/message"
	"github.com/heartmarshall/pinmoji/internal/config"
	"github.com/heartmarshall/pinmoji/internal/domain"
	"github.com/heartmarshall/pinmoji/internal/transport/rest"
)

// DocumentStore is the document database the mirror and the seeder write to.
type DocumentStore interface {
	ListenItems(ctx context.Context, onSnapshot domain.ItemsSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error)
	ListenMessages(ctx context.Context, roomID string, onSnapshot domain.MessagesSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error)
	AddItem(ctx context.Context, item domain.NewItem) (string, error)
	SetCounter(ctx context.Context, itemID string, counter domain.Counter, value int) error
	IncrementCounter(ctx context.Context, itemID string, counter domain.Counter, delta int) error
	AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error)
}

// BlobStore is the write-once picture store.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	URL(ctx context.Context, name string) (string, error)
	Ping(ctx context.Context) error
}

// TxRunner runs fn in a transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Documents is an opened document backend.
type Documents struct {
	store  DocumentStore
	health rest.Checker
	tx     TxRunner
	close  func()
}

// Store returns the document store.
func (d *Documents) Store() DocumentStore { return d.store }

// Tx returns the transaction runner, or nil when the backend has none.
func (d *Documents) Tx() TxRunner { return d.tx }

// Close releases the backend.
func (d *Documents) Close() { d.close() }

// OpenDocuments connects to the configured backend. PostgreSQL schemas are
// migrated first when migrate_on_start is set.
func OpenDocuments(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Documents, error) {
	switch cfg.Backend.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("postgres: %w", err)
			}
		}
		logger.Info("document store ready", slog.String("driver", config.DriverPostgres))
		return &Documents{
			store:  postgresDocuments{items: item.New(pool, logger), messages: message.New(pool, logger)},
			health: pool,
			tx:     postgres.NewTxManager(pool, logger),
			close:  pool.Close,
		}, nil

	case config.DriverFirestore:
		fs, err := firestoredb.New(ctx, logger, cfg.Firestore)
		if err != nil {
			return nil, err
		}
		logger.Info("document store ready",
			slog.String("driver", config.DriverFirestore),
			slog.String("project_id", cfg.Firestore.ProjectID),
		)
		return &Documents{
			store:  fs,
			health: fs,
			close: func() {
				if err := fs.Close(); err != nil {
					logger.Warn("firestore close", slog.String("error", err.Error()))
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown backend driver %q", cfg.Backend.Driver)
}

// postgresDocuments serves items and room messages from one pool.
type postgresDocuments struct {
	items    *item.Repo
	messages *message.Repo
}

func (d postgresDocuments) ListenItems(ctx context.Context, onSnapshot domain.ItemsSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	return d.items.ListenItems(ctx, onSnapshot, onError)
}

func (d postgresDocuments) ListenMessages(ctx context.Context, roomID string, onSnapshot domain.MessagesSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	return d.messages.ListenMessages(ctx, roomID, onSnapshot, onError)
}

func (d postgresDocuments) AddItem(ctx context.Context, it domain.NewItem) (string, error) {
	return d.items.AddItem(ctx, it)
}

func (d postgresDocuments) SetCounter(ctx context.Context, itemID string, counter domain.Counter, value int) error {
	return d.items.SetCounter(ctx, itemID, counter, value)
}

func (d postgresDocuments) IncrementCounter(ctx context.Context, itemID string, counter domain.Counter, delta int) error {
	return d.items.IncrementCounter(ctx, itemID, counter, delta)
}

func (d postgresDocuments) AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error) {
	return d.messages.AddMessage(ctx, roomID, msg)
}

// ---------------------------------------------------------------------------
// Blob stores
// ---------------------------------------------------------------------------

// Blobs is an opened blob store. Handler and Prefix are set only for the
// local driver, which the HTTP server serves itself.
type Blobs struct {
	store   BlobStore
	handler http.Handler
	prefix  string
	close   func()
}

// Store returns the blob store.
func (b *Blobs) Store() BlobStore { return b.store }

// Close releases the store.
func (b *Blobs) Close() { b.close() }

// OpenBlobs opens the configured blob store.
func OpenBlobs(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Blobs, error) {
	switch cfg.Driver {
	case config.StorageLocal:
		local, err := blob.NewLocal(logger, cfg.Dir, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return &Blobs{
			store:   local,
			handler: local.Handler(),
			prefix:  cfg.BlobPrefix(),
			close:   func() {},
		}, nil

	case config.StorageGCS:
		gcs, err := blob.NewGCS(ctx, logger, cfg.Bucket, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return &Blobs{
			store: gcs,
			close: func() {
				if err := gcs.Close(); err != nil {
					logger.Warn("gcs close", slog.String("error", err.Error()))
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
