// Package mirror keeps a local, observable copy of the remote items and chat
// rooms and forwards user actions to the document store.
package mirror

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// DefaultThumbnailWidth is the pixel width of the inline picture preview.
const DefaultThumbnailWidth = 25

// documentStore is the remote document database. Listen calls use ctx for
// setup only; the live query runs until the returned Unsubscribe is called.
type documentStore interface {
	ListenItems(ctx context.Context, onSnapshot domain.ItemsSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error)
	ListenMessages(ctx context.Context, roomID string, onSnapshot domain.MessagesSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error)
	AddItem(ctx context.Context, item domain.NewItem) (string, error)
	SetCounter(ctx context.Context, itemID string, counter domain.Counter, value int) error
	IncrementCounter(ctx context.Context, itemID string, counter domain.Counter, delta int) error
	AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error)
}

// blobStore holds uploaded pictures. Put never overwrites an existing name.
type blobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	URL(ctx context.Context, name string) (string, error)
}

type pictureSource interface {
	Read(ctx context.Context, uri string) ([]byte, error)
}

type thumbnailer interface {
	Thumbnail(data []byte, width int) (string, error)
}

type identity interface {
	CurrentUser() (domain.User, bool)
}

// Mirror is the sync mirror. At most one items subscription and one room
// subscription are open at any time.
type Mirror struct {
	docs     documentStore
	blobs    blobStore
	pictures pictureSource
	thumbs   thumbnailer
	identity identity
	state    *Store
	log      *slog.Logger

	now        func() time.Time
	thumbWidth int

	mu         sync.Mutex
	itemsUnsub domain.Unsubscribe
	roomUnsub  domain.Unsubscribe

	// roomGen identifies the active room subscription; snapshots carrying
	// an older generation are dropped.
	roomGen atomic.Uint64
}

// Option customises a Mirror.
type Option func(*Mirror)

// WithClock replaces the clock used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Mirror) { m.now = now }
}

// WithThumbnailWidth overrides DefaultThumbnailWidth.
func WithThumbnailWidth(width int) Option {
	return func(m *Mirror) {
		if width > 0 {
			m.thumbWidth = width
		}
	}
}

// New creates a Mirror publishing into state.
func New(
	log *slog.Logger,
	state *Store,
	docs documentStore,
	blobs blobStore,
	pictures pictureSource,
	thumbs thumbnailer,
	identity identity,
	opts ...Option,
) *Mirror {
	m := &Mirror{
		docs:       docs,
		blobs:      blobs,
		pictures:   pictures,
		thumbs:     thumbs,
		identity:   identity,
		state:      state,
		log:        log.With("component", "mirror"),
		now:        time.Now,
		thumbWidth: DefaultThumbnailWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a copy of the current view state.
func (m *Mirror) State() State {
	return m.state.Snapshot()
}

// Subscribe registers fn for state updates; see Store.Subscribe.
func (m *Mirror) Subscribe(fn func(State)) (cancel func()) {
	return m.state.Subscribe(fn)
}

// Start opens the items subscription.
func (m *Mirror) Start(ctx context.Context) error {
	_, err := m.SubscribeItems(ctx)
	return err
}

// Stop releases the items and room subscriptions. The published state is
// left as it was.
func (m *Mirror) Stop() {
	m.UnsubscribeItems()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.roomGen.Add(1)
	if m.roomUnsub != nil {
		m.roomUnsub()
		m.roomUnsub = nil
	}
}

func (m *Mirror) listenFailed(query string) domain.ListenErrorFunc {
	return func(err error) {
		m.log.Error("live query failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
	}
}
