package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// LiveQuery describes a query kept up to date with LISTEN/NOTIFY.
type LiveQuery struct {
	// Channel is the notification channel the table trigger publishes on.
	Channel string
	// Match filters notifications by payload. Nil accepts every payload.
	Match func(payload string) bool
	// Refresh runs the query and delivers the full result set.
	Refresh func(ctx context.Context) error
}

// Listen runs q.Refresh once, then again after every matching notification
// on q.Channel, until the returned Unsubscribe is called.
//
// ctx bounds the setup only: acquiring a dedicated connection, LISTEN and the
// first refresh. Later failures are reported through onError and end the
// live query. Unsubscribe blocks until the listening goroutine has exited
// and its connection is back in the pool; no callback runs after it returns.
func Listen(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, q LiveQuery, onError domain.ListenErrorFunc) (domain.Unsubscribe, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listen conn: %w", err)
	}

	channel := pgx.Identifier{q.Channel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", q.Channel, err)
	}

	if err := q.Refresh(ctx); err != nil {
		release(conn, channel)
		return nil, err
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	log = log.With(slog.String("channel", q.Channel))

	go func() {
		defer close(done)
		defer release(conn, channel)

		for {
			n, err := conn.Conn().WaitForNotification(loopCtx)
			if err != nil {
				if loopCtx.Err() == nil {
					onError(fmt.Errorf("wait for notification on %s: %w", q.Channel, err))
				}
				return
			}

			if q.Match != nil && !q.Match(n.Payload) {
				continue
			}

			log.Debug("live query notified", slog.String("payload", n.Payload))

			if err := q.Refresh(loopCtx); err != nil {
				if loopCtx.Err() == nil {
					onError(err)
				}
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

// release stops listening and returns conn to the pool. A connection broken
// by cancellation is closed and the pool drops it on release.
func release(conn *pgxpool.Conn, channel string) {
	if !conn.Conn().IsClosed() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err := conn.Exec(ctx, "UNLISTEN "+channel)
		cancel()
		if err != nil {
			conn.Conn().Close(context.Background())
		}
	}
	conn.Release()
}
