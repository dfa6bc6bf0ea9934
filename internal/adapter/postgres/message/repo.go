// Package message implements per-room chat messages on PostgreSQL.
package message

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

// Channel is the notification channel fed by the room_messages trigger.
// The payload is the room id.
const Channel = "room_messages_changed"

const table = "room_messages"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides chat message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new message repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		log:  logger.With("adapter", "postgres_messages"),
	}
}

// List returns the messages of a room, oldest first.
func (r *Repo) List(ctx context.Context, roomID string) ([]domain.Message, error) {
	query, args, err := psql.Select("id", "body", "user_id", "display_name", "at").
		From(table).
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("at ASC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages of room %s: %w", roomID, err)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Message, error) {
		var m domain.Message
		err := row.Scan(&m.ID, &m.Body, &m.UserID, &m.DisplayName, &m.At)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	return msgs, nil
}

// ListenMessages delivers the room's messages, oldest first, now and after
// every new message in that room.
func (r *Repo) ListenMessages(ctx context.Context, roomID string, onSnapshot domain.MessagesSnapshotFunc, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	return postgres.Listen(ctx, r.pool, r.log, postgres.LiveQuery{
		Channel: Channel,
		Match:   func(payload string) bool { return payload == roomID },
		Refresh: func(ctx context.Context) error {
			msgs, err := r.List(ctx, roomID)
			if err != nil {
				return err
			}
			onSnapshot(msgs)
			return nil
		},
	}, onError)
}

// AddMessage appends msg to the room and returns its generated id.
// The room does not need to exist beforehand.
func (r *Repo) AddMessage(ctx context.Context, roomID string, msg domain.Message) (string, error) {
	query, args, err := psql.Insert(table).
		Columns("room_id", "body", "user_id", "display_name", "at").
		Values(roomID, msg.Body, msg.UserID, msg.DisplayName, msg.At).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert message: %w", err)
	}

	var id string
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", postgres.MapError(err, "room_message", roomID)
	}
	return id, nil
}
