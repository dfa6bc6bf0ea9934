package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// AddNewItem uploads the picture, stores its preview and writes a new item
// owned by the current user. Loading is set for the duration of the call.
// A failure at any step is published in State.Err and also returned; the
// item document is written last, so a failed call writes nothing.
func (m *Mirror) AddNewItem(ctx context.Context, input AddItemInput) error {
	m.state.Update(func(s *State) { s.Loading = true })

	if err := m.addNewItem(ctx, input); err != nil {
		m.log.ErrorContext(ctx, "add item failed", slog.String("error", err.Error()))
		m.state.Update(func(s *State) {
			s.Err = err
			s.Loading = false
		})
		return err
	}

	m.state.Update(func(s *State) {
		s.Err = nil
		s.Loading = false
	})
	return nil
}

func (m *Mirror) addNewItem(ctx context.Context, input AddItemInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, ok := m.identity.CurrentUser()
	if !ok {
		return domain.ErrUnauthorized
	}

	name := input.Picture.FileName()

	data, err := m.pictures.Read(ctx, input.Picture.URI)
	if err != nil {
		return fmt.Errorf("read picture: %w", err)
	}

	if err := m.blobs.Put(ctx, name, data, http.DetectContentType(data)); err != nil {
		return fmt.Errorf("upload picture %s: %w", name, err)
	}

	pictureURI, err := m.blobs.URL(ctx, name)
	if err != nil {
		return fmt.Errorf("picture url %s: %w", name, err)
	}

	preview, err := m.thumbs.Thumbnail(data, m.thumbWidth)
	if err != nil {
		return fmt.Errorf("picture preview: %w", err)
	}

	id, err := m.docs.AddItem(ctx, domain.NewItem{
		Emoji:          input.Emoji,
		PictureURI:     pictureURI,
		PicturePreview: preview,
		Location:       input.Coordinates.GeoPoint(),
		UserID:         user.UID,
		Likes:          domain.InitialLikes,
		Dislikes:       domain.InitialDislikes,
	})
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	m.log.InfoContext(ctx, "item posted",
		slog.String("item_id", id),
		slog.String("user_id", user.UID),
		slog.String("emoji", input.Emoji),
		slog.String("picture", name),
	)
	return nil
}
