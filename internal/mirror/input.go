package mirror

import (
	"strings"

	"github.com/forPelevin/gomoji"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Picture references a local picture by path, file:// URI or URL.
type Picture struct {
	URI string
}

// FileName returns the last path segment of the URI.
func (p Picture) FileName() string {
	return p.URI[strings.LastIndex(p.URI, "/")+1:]
}

// AddItemInput holds the parameters for posting an item.
type AddItemInput struct {
	Emoji       string
	Coordinates domain.Coordinates
	Picture     Picture
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var v domain.ValidationError

	emoji := strings.TrimSpace(i.Emoji)
	switch {
	case emoji == "":
		v.Add("emoji", "required")
	case !gomoji.ContainsEmoji(emoji):
		v.Add("emoji", "must contain an emoji")
	}

	v.Merge(i.Coordinates.Validate())

	if i.Picture.FileName() == "" {
		v.Add("picture", "uri must end with a file name")
	}

	return v.Err()
}
