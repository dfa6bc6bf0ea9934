// Package thumbnail renders the inline picture preview stored with each item.
package thumbnail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/nfnt/resize"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Encoder scales pictures down and encodes them as base64 PNG.
type Encoder struct {
	interp resize.InterpolationFunction
	png    png.Encoder
}

// New creates an Encoder writing PNG with compression disabled.
func New() *Encoder {
	return &Encoder{
		interp: resize.Bilinear,
		png:    png.Encoder{CompressionLevel: png.NoCompression},
	}
}

// Thumbnail decodes data (PNG, JPEG or GIF), scales it to width keeping the
// aspect ratio and returns the PNG bytes base64-encoded. The preview is
// always exactly width pixels wide; narrower pictures are upscaled.
func (e *Encoder) Thumbnail(data []byte, width int) (string, error) {
	if width <= 0 {
		return "", domain.NewValidationError("width", "must be positive")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode picture: %w", err)
	}

	img = resize.Resize(uint(width), 0, img, e.interp)

	var buf bytes.Buffer
	if err := e.png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode %s preview: %w", format, err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
