package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts an item owned by a fresh user with the given timestamp.
// Returns the stored document.
func SeedItem(t *testing.T, pool *pgxpool.Pool, emoji string, at int64) domain.ItemDoc {
	t.Helper()

	suffix := UniqueSuffix()
	doc := domain.ItemDoc{
		Emoji:          emoji,
		PictureURI:     "https://blobs.example.com/IMG_" + suffix + ".jpg",
		PicturePreview: "cHJldmlldw==",
		Location:       domain.GeoPoint{Lat: 52.5, Lng: 13.4},
		At:             at,
		UserID:         "user-" + suffix,
		Likes:          domain.InitialLikes,
		Dislikes:       domain.InitialDislikes,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (emoji, picture_uri, picture_preview, latitude, longitude, at, user_id, likes, dislikes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		doc.Emoji, doc.PictureURI, doc.PicturePreview, doc.Location.Lat, doc.Location.Lng,
		doc.At, doc.UserID, doc.Likes, doc.Dislikes,
	).Scan(&doc.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return doc
}

// NewRoomID returns a room id no other test uses.
func NewRoomID() string {
	return "room-" + UniqueSuffix()
}
