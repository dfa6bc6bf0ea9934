// Package item implements the items document collection on PostgreSQL.
package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pinmoji/internal/adapter/postgres"
	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Channel is the notification channel fed by the items trigger.
const Channel = "items_changed"

const table = "items"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "emoji", "picture_uri", "picture_preview",
	"latitude", "longitude", "at", "user_id", "likes", "dislikes",
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new item repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		log:  logger.With("adapter", "postgres_items"),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every item, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.ItemDoc, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		OrderBy("at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	docs, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return docs, nil
}

// GetByID returns a single item. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.ItemDoc, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ItemDoc{}, fmt.Errorf("build get item: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return domain.ItemDoc{}, postgres.MapError(err, "item", id)
	}

	doc, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return domain.ItemDoc{}, postgres.MapError(err, "item", id)
	}
	return doc, nil
}

// ListenItems delivers the full item list, newest first, now and after
// every change to the table.
func (r *Repo) ListenItems(ctx context.Context, onSnapshot domain.ItemsSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	return postgres.Listen(ctx, r.pool, r.log, postgres.LiveQuery{
		Channel: Channel,
		Refresh: func(ctx context.Context) error {
			docs, err := r.List(ctx)
			if err != nil {
				return err
			}
			onSnapshot(docs)
			return nil
		},
	}, onError)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// AddItem inserts a new item and returns its generated id. The creation
// timestamp comes from the database clock.
func (r *Repo) AddItem(ctx context.Context, it domain.NewItem) (string, error) {
	query, args, err := psql.Insert(table).
		Columns("emoji", "picture_uri", "picture_preview", "latitude", "longitude", "user_id", "likes", "dislikes").
		Values(it.Emoji, it.PictureURI, it.PicturePreview, it.Location.Lat, it.Location.Lng, it.UserID, it.Likes, it.Dislikes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert item: %w", err)
	}

	var id string
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", postgres.MapError(err, "item", "(new)")
	}
	return id, nil
}

// SetCounter overwrites one counter without reading it first.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) SetCounter(ctx context.Context, itemID string, counter domain.Counter, value int) error {
	if !counter.IsValid() {
		return domain.NewValidationError("counter", "must be likes or dislikes")
	}
	return r.updateCounter(ctx, itemID, psql.Update(table).
		Set(counter.String(), value).
		Where(squirrel.Eq{"id": itemID}))
}

// IncrementCounter adds delta to one counter in a single statement.
func (r *Repo) IncrementCounter(ctx context.Context, itemID string, counter domain.Counter, delta int) error {
	if !counter.IsValid() {
		return domain.NewValidationError("counter", "must be likes or dislikes")
	}
	col := counter.String()
	return r.updateCounter(ctx, itemID, psql.Update(table).
		Set(col, squirrel.Expr(col+" + ?", delta)).
		Where(squirrel.Eq{"id": itemID}))
}

func (r *Repo) updateCounter(ctx context.Context, itemID string, b squirrel.UpdateBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.CollectableRow) (domain.ItemDoc, error) {
	var d domain.ItemDoc
	err := row.Scan(
		&d.ID, &d.Emoji, &d.PictureURI, &d.PicturePreview,
		&d.Location.Lat, &d.Location.Lng, &d.At, &d.UserID, &d.Likes, &d.Dislikes,
	)
	return d, err
}
