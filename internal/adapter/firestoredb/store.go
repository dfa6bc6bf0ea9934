// Package firestoredb implements the document store on Cloud Firestore.
package firestoredb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/pinmoji/internal/config"
	"github.com/heartmarshall/pinmoji/internal/domain"
)

const (
	itemsCollection    = "items"
	roomsCollection    = "rooms"
	messagesCollection = "messages"
)

// Document field names.
const (
	fieldEmoji          = "emoji"
	fieldPictureURI     = "pictureUri"
	fieldPicturePreview = "picturePreview"
	fieldCoordinates    = "coordinates"
	fieldAt             = "at"
	fieldUserID         = "userId"
	fieldLikes          = "likes"
	fieldDislikes       = "dislikes"
	fieldBody           = "body"
	fieldDisplayName    = "displayName"
)

// Store reads and writes items and room messages in Firestore.
type Store struct {
	client *firestore.Client
	log    *slog.Logger
}

// New connects to the configured project and database. When the
// FIRESTORE_EMULATOR_HOST environment variable is set the client talks to
// the emulator instead.
func New(ctx context.Context, logger *slog.Logger, cfg config.FirestoreConfig) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, cfg.DatabaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}

	return &Store{
		client: client,
		log:    logger.With("adapter", "firestore", "project_id", cfg.ProjectID),
	}, nil
}

// Ping runs a one-document read against the items collection.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.Collection(itemsCollection).Limit(1).Documents(ctx).GetAll(); err != nil {
		return fmt.Errorf("firestore ping: %w", mapError(err))
	}
	return nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// ---------------------------------------------------------------------------
// Live queries
// ---------------------------------------------------------------------------

// ListenItems delivers every item, newest first, on each change.
func (s *Store) ListenItems(ctx context.Context, onSnapshot domain.ItemsSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	q := s.client.Collection(itemsCollection).OrderBy(fieldAt, firestore.Desc)

	return s.listen(ctx, "items", q, func(docs []*firestore.DocumentSnapshot) {
		items := make([]domain.ItemDoc, len(docs))
		for i, d := range docs {
			items[i] = itemFromData(d.Ref.ID, d.Data())
		}
		onSnapshot(items)
	}, onError)
}

// ListenMessages delivers the room's messages, oldest first, on each change.
func (s *Store) ListenMessages(ctx context.Context, roomID string, onSnapshot domain.MessagesSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	if roomID == "" {
		return nil, domain.NewValidationError("room_id", "required")
	}
	q := s.messages(roomID).OrderBy(fieldAt, firestore.Asc)

	return s.listen(ctx, "room "+roomID, q, func(docs []*firestore.DocumentSnapshot) {
		msgs := make([]domain.Message, len(docs))
		for i, d := range docs {
			msgs[i] = messageFromData(d.Ref.ID, d.Data())
		}
		onSnapshot(msgs)
	}, onError)
}

// listen runs a snapshot iterator on its own goroutine. Setup failures such
// as missing permissions surface on the first Next and are reported through
// onError. The returned Unsubscribe cancels the iterator and waits for the
// goroutine to exit.
func (s *Store) listen(
	ctx context.Context,
	name string,
	q firestore.Query,
	deliver func([]*firestore.DocumentSnapshot),
	onError domain.ListenErrorFunc,
) (domain.Unsubscribe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	it := q.Snapshots(loopCtx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err == nil {
				var docs []*firestore.DocumentSnapshot
				docs, err = snap.Documents.GetAll()
				if err == nil {
					deliver(docs)
					continue
				}
			}

			if loopCtx.Err() == nil && !stopped(err) {
				onError(fmt.Errorf("listen %s: %w", name, mapError(err)))
			}
			return
		}
	}()

	s.log.DebugContext(ctx, "snapshot listener started", slog.String("query", name))

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// AddItem creates an item document with a server-assigned timestamp and
// returns its generated id.
func (s *Store) AddItem(ctx context.Context, it domain.NewItem) (string, error) {
	ref, _, err := s.client.Collection(itemsCollection).Add(ctx, itemData(it))
	if err != nil {
		return "", fmt.Errorf("add item: %w", mapError(err))
	}
	return ref.ID, nil
}

// SetCounter overwrites one counter without reading it first.
func (s *Store) SetCounter(ctx context.Context, itemID string, counter domain.Counter, value int) error {
	return s.updateCounter(ctx, itemID, counter, value)
}

// IncrementCounter adds delta to one counter atomically on the server.
func (s *Store) IncrementCounter(ctx context.Context, itemID string, counter domain.Counter, delta int) error {
	return s.updateCounter(ctx, itemID, counter, firestore.Increment(delta))
}

func (s *Store) updateCounter(ctx context.Context, itemID string, counter domain.Counter, value any) error {
	if itemID == "" {
		return domain.NewValidationError("id", "required")
	}
	if !counter.IsValid() {
		return domain.NewValidationError("counter", "must be likes or dislikes")
	}

	_, err := s.client.Collection(itemsCollection).Doc(itemID).Update(ctx, []firestore.Update{
		{Path: counter.String(), Value: value},
	})
	if err != nil {
		return fmt.Errorf("item %s: %w", itemID, mapError(err))
	}
	return nil
}

// AddMessage appends msg to rooms/{roomID}/messages and returns its id.
func (s *Store) AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error) {
	if roomID == "" {
		return "", domain.NewValidationError("room_id", "required")
	}

	ref, _, err := s.messages(roomID).Add(ctx, messageData(msg))
	if err != nil {
		return "", fmt.Errorf("room %s: add message: %w", roomID, mapError(err))
	}
	return ref.ID, nil
}

func (s *Store) messages(roomID string) *firestore.CollectionRef {
	return s.client.Collection(roomsCollection).Doc(roomID).Collection(messagesCollection)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func itemData(it domain.NewItem) map[string]any {
	return map[string]any{
		fieldEmoji:          it.Emoji,
		fieldPictureURI:     it.PictureURI,
		fieldPicturePreview: it.PicturePreview,
		fieldCoordinates:    &latlng.LatLng{Latitude: it.Location.Lat, Longitude: it.Location.Lng},
		fieldAt:             firestore.ServerTimestamp,
		fieldUserID:         it.UserID,
		fieldLikes:          it.Likes,
		fieldDislikes:       it.Dislikes,
	}
}

func messageData(msg domain.Message) map[string]any {
	return map[string]any{
		fieldBody:        msg.Body,
		fieldUserID:      msg.UserID,
		fieldDisplayName: msg.DisplayName,
		fieldAt:          msg.At,
	}
}

// itemFromData converts document data. Missing or mistyped fields keep their
// zero value.
func itemFromData(id string, data map[string]any) domain.ItemDoc {
	d := domain.ItemDoc{
		ID:             id,
		Emoji:          str(data[fieldEmoji]),
		PictureURI:     str(data[fieldPictureURI]),
		PicturePreview: str(data[fieldPicturePreview]),
		At:             millis(data[fieldAt]),
		UserID:         str(data[fieldUserID]),
		Likes:          integer(data[fieldLikes]),
		Dislikes:       integer(data[fieldDislikes]),
	}
	if ll, ok := data[fieldCoordinates].(*latlng.LatLng); ok && ll != nil {
		d.Location = domain.GeoPoint{Lat: ll.GetLatitude(), Lng: ll.GetLongitude()}
	}
	return d
}

func messageFromData(id string, data map[string]any) domain.Message {
	return domain.Message{
		ID:          id,
		Body:        str(data[fieldBody]),
		UserID:      str(data[fieldUserID]),
		DisplayName: str(data[fieldDisplayName]),
		At:          millis(data[fieldAt]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func integer(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// millis reads a timestamp stored either as a Firestore timestamp or as
// epoch milliseconds.
func millis(v any) int64 {
	switch t := v.(type) {
	case time.Time:
		return t.UnixMilli()
	case int64:
		return t
	case float64:
		return int64(t)
	}
	return 0
}

func stopped(err error) bool {
	return errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled)
}

// mapError converts gRPC status codes to domain errors.
func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, status.Convert(err).Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, status.Convert(err).Message())
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, status.Convert(err).Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", domain.ErrValidation, status.Convert(err).Message())
	}
	return err
}
