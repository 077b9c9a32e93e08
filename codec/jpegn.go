package codec

import (
	"image"
	"os"

	"github.com/gen2brain/jpegn"
)

// JPEGN decodes JPEG files with github.com/gen2brain/jpegn and defers to the
// embedded Imaging for every other format and for saving.
type JPEGN struct {
	Imaging

	// Options are passed to jpegn.Decode. A nil value keeps the image in
	// its native color space.
	Options *jpegn.Options
}

// Load decodes the image stored at path.
func (c JPEGN) Load(path string) (image.Image, error) {
	switch ext(path) {
	case ".jpg", ".jpeg":
	default:
		return c.Imaging.Load(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if c.Options != nil {
		return jpegn.Decode(f, c.Options)
	}
	return jpegn.Decode(f)
}
