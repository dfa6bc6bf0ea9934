package mirror

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// SubscribeItems opens the live items query, newest first. Every snapshot is
// merged into State.Items with MergeItems. Calling it while subscribed
// returns the existing handle without opening another query.
func (m *Mirror) SubscribeItems(ctx context.Context) (domain.Unsubscribe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.itemsUnsub != nil {
		return m.UnsubscribeItems, nil
	}

	unsub, err := m.docs.ListenItems(ctx, m.applyItems, m.listenFailed("items"))
	if err != nil {
		return nil, fmt.Errorf("listen items: %w", err)
	}
	m.itemsUnsub = unsub

	m.log.DebugContext(ctx, "items subscription opened")
	return m.UnsubscribeItems, nil
}

// UnsubscribeItems releases the items query. It is a no-op when none is open.
func (m *Mirror) UnsubscribeItems() {
	m.mu.Lock()
	unsub := m.itemsUnsub
	m.itemsUnsub = nil
	m.mu.Unlock()

	if unsub != nil {
		unsub()
		m.log.Debug("items subscription closed")
	}
}

func (m *Mirror) applyItems(docs []domain.ItemDoc) {
	incoming := make([]domain.Item, len(docs))
	for i, d := range docs {
		incoming[i] = d.Item()
	}

	var total int
	m.state.Update(func(s *State) {
		s.Items = MergeItems(s.Items, incoming)
		total = len(s.Items)
	})

	m.log.Debug("items snapshot applied",
		slog.Int("docs", len(docs)),
		slog.Int("items", total),
	)
}
