package domain

import "math"

// Counter names an item vote counter.
type Counter string

const (
	CounterLikes    Counter = "likes"
	CounterDislikes Counter = "dislikes"
)

func (c Counter) String() string { return string(c) }

// IsValid reports whether c names a known counter.
func (c Counter) IsValid() bool {
	return c == CounterLikes || c == CounterDislikes
}

// Initial counter values for a freshly posted item.
const (
	InitialLikes    = 1
	InitialDislikes = 0
)

// GeoPoint is a location as stored by the document store.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Coordinates is a location as exposed to views.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that both components are finite and in range.
func (c Coordinates) Validate() error {
	var v ValidationError
	if !inRange(c.Latitude, 90) {
		v.Add("latitude", "must be a finite value in [-90, 90]")
	}
	if !inRange(c.Longitude, 180) {
		v.Add("longitude", "must be a finite value in [-180, 180]")
	}
	return v.Err()
}

func inRange(x, limit float64) bool {
	return !math.IsNaN(x) && x >= -limit && x <= limit
}

// GeoPoint converts c to its stored form.
func (c Coordinates) GeoPoint() GeoPoint {
	return GeoPoint{Lat: c.Latitude, Lng: c.Longitude}
}

// Coordinates converts a stored point to its view form.
func (p GeoPoint) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Lat, Longitude: p.Lng}
}

// ItemDoc is an item exactly as a snapshot delivers it.
type ItemDoc struct {
	ID             string
	Emoji          string
	PictureURI     string
	PicturePreview string
	Location       GeoPoint
	At             int64
	UserID         string
	Likes          int
	Dislikes       int
}

// Item is a mirrored photo pin.
type Item struct {
	ID             string      `json:"id"`
	Emoji          string      `json:"emoji"`
	PictureURI     string      `json:"pictureUri"`
	PicturePreview string      `json:"picturePreview"`
	Coordinates    Coordinates `json:"coordinates"`
	At             int64       `json:"at"`
	UserID         string      `json:"userId"`
	Likes          int         `json:"likes"`
	Dislikes       int         `json:"dislikes"`
}

// Item converts the stored document into its mirrored form.
func (d ItemDoc) Item() Item {
	return Item{
		ID:             d.ID,
		Emoji:          d.Emoji,
		PictureURI:     d.PictureURI,
		PicturePreview: d.PicturePreview,
		Coordinates:    d.Location.Coordinates(),
		At:             d.At,
		UserID:         d.UserID,
		Likes:          d.Likes,
		Dislikes:       d.Dislikes,
	}
}

// NewItem holds the fields written when an item is posted.
// The creation timestamp is assigned by the store.
type NewItem struct {
	Emoji          string
	PictureURI     string
	PicturePreview string
	Location       GeoPoint
	UserID         string
	Likes          int
	Dislikes       int
}
