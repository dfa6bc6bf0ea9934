package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Messages int
	Reused   int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline seeds pins one at a time. A failing pin is counted and logged;
// the run continues with the next one.
type Pipeline struct {
	log      *slog.Logger
	docs     DocumentWriter
	blobs    BlobWriter
	pictures PictureReader
	thumbs   Thumbnailer
	tx       TxRunner
	cfg      Config
	now      func() time.Time
	result   Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	docs DocumentWriter,
	blobs BlobWriter,
	pictures PictureReader,
	thumbs Thumbnailer,
	tx TxRunner,
	cfg Config,
) *Pipeline {
	if tx == nil {
		tx = NoTx{}
	}
	return &Pipeline{
		log:      log.With("component", "seeder"),
		docs:     docs,
		blobs:    blobs,
		pictures: pictures,
		thumbs:   thumbs,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Result returns the counters after Run completes.
func (p *Pipeline) Result() Result {
	return p.result
}

// HasErrors reports whether any pin failed.
func (p *Pipeline) HasErrors() bool {
	return p.result.Errors > 0
}

// Run seeds every pin. It returns early only when ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, pins []Pin) error {
	start := time.Now()
	defer func() { p.result.Duration = time.Since(start) }()

	for i, pin := range pins {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := p.seedPin(ctx, pin)
		switch {
		case err != nil:
			p.result.Errors++
			p.log.WarnContext(ctx, "pin failed",
				slog.Int("index", i),
				slog.String("emoji", pin.Emoji),
				slog.String("error", err.Error()),
			)
		case p.cfg.DryRun:
			p.result.Skipped++
		default:
			p.result.Inserted++
			p.result.Messages += len(pin.Messages)
			p.log.DebugContext(ctx, "pin seeded", slog.String("item_id", id), slog.String("emoji", pin.Emoji))
		}
	}

	p.log.InfoContext(ctx, "seeding completed",
		slog.Int("pins", len(pins)),
		slog.Int("inserted", p.result.Inserted),
		slog.Int("messages", p.result.Messages),
		slog.Int("reused_pictures", p.result.Reused),
		slog.Int("skipped", p.result.Skipped),
		slog.Int("errors", p.result.Errors),
		slog.Bool("dry_run", p.cfg.DryRun),
	)
	return nil
}

func (p *Pipeline) seedPin(ctx context.Context, pin Pin) (string, error) {
	in := pin.input()
	if err := in.Validate(); err != nil {
		return "", err
	}

	data, err := p.pictures.Read(ctx, in.Picture.URI)
	if err != nil {
		return "", fmt.Errorf("read picture: %w", err)
	}

	preview, err := p.thumbs.Thumbnail(data, p.cfg.ThumbnailWidth)
	if err != nil {
		return "", fmt.Errorf("picture preview: %w", err)
	}

	if p.cfg.DryRun {
		return "", nil
	}

	name := in.Picture.FileName()
	err = p.blobs.Put(ctx, name, data, http.DetectContentType(data))
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		p.result.Reused++
	case err != nil:
		return "", fmt.Errorf("upload picture %s: %w", name, err)
	}

	pictureURI, err := p.blobs.URL(ctx, name)
	if err != nil {
		return "", fmt.Errorf("picture url %s: %w", name, err)
	}

	owner := pin.UserID
	if owner == "" {
		owner = p.cfg.UserID
	}
	likes := pin.Likes
	if likes == 0 {
		likes = domain.InitialLikes
	}

	var id string
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = p.docs.AddItem(ctx, domain.NewItem{
			Emoji:          in.Emoji,
			PictureURI:     pictureURI,
			PicturePreview: preview,
			Location:       in.Coordinates.GeoPoint(),
			UserID:         owner,
			Likes:          likes,
			Dislikes:       pin.Dislikes,
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		base := p.now().UnixMilli()
		for i, m := range pin.Messages {
			msg := domain.Message{
				Body:        m.Body,
				UserID:      m.UserID,
				DisplayName: m.DisplayName,
				At:          base + int64(i),
			}
			if msg.UserID == "" {
				msg.UserID = owner
			}
			if _, err := p.docs.AddMessage(ctx, id, msg); err != nil {
				return fmt.Errorf("room %s: message %d: %w", id, i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
