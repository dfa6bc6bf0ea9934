package mirror

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// SubscribeRoom switches the active chat room. Any previous room
// subscription is released and Messages is cleared before the new query is
// opened. An empty id leaves no room selected.
func (m *Mirror) SubscribeRoom(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	gen := m.roomGen.Add(1)
	if m.roomUnsub != nil {
		m.roomUnsub()
		m.roomUnsub = nil
	}

	m.state.Update(func(s *State) {
		s.Messages = []domain.Message{}
		s.Room = id
	})

	if id == "" {
		m.log.DebugContext(ctx, "room cleared")
		return nil
	}

	unsub, err := m.docs.ListenMessages(ctx, id,
		func(msgs []domain.Message) { m.applyMessages(gen, msgs) },
		m.listenFailed("room"),
	)
	if err != nil {
		m.state.Update(func(s *State) { s.Room = "" })
		return fmt.Errorf("listen room %s: %w", id, err)
	}
	m.roomUnsub = unsub

	m.log.DebugContext(ctx, "room subscription opened", slog.String("room_id", id))
	return nil
}

func (m *Mirror) applyMessages(gen uint64, msgs []domain.Message) {
	if m.roomGen.Load() != gen {
		return
	}
	m.state.Update(func(s *State) {
		s.Messages = msgs
	})
}

// SendMessage appends a message from the current user to the room. The
// timestamp comes from the client clock. The body is sent as given.
func (m *Mirror) SendMessage(ctx context.Context, roomID, body string) error {
	if roomID == "" {
		return domain.NewValidationError("room_id", "required")
	}

	user, ok := m.identity.CurrentUser()
	if !ok {
		return domain.ErrUnauthorized
	}

	msg := domain.Message{
		Body:        body,
		UserID:      user.UID,
		DisplayName: user.DisplayName,
		At:          m.now().UnixMilli(),
	}

	id, err := m.docs.AddMessage(ctx, roomID, msg)
	if err != nil {
		return fmt.Errorf("send message to room %s: %w", roomID, err)
	}

	m.log.DebugContext(ctx, "message sent",
		slog.String("room_id", roomID),
		slog.String("message_id", id),
	)
	return nil
}
