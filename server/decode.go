package server

import (
	"bytes"
	"fmt"
	"image"

	// Formats accepted from uploads and clipboard pastes.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes user-supplied bytes into an image, returning the
// detected format name.
func decodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unsupported or corrupt image: %w", err)
	}
	return img, format, nil
}
