package codec

import (
	"bufio"
	"bytes"
	"image"
	"io"
	"io/ioutil"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	farbfeld "github.com/hullerob/go.farbfeld"
	_ "golang.org/x/image/webp" // register decoder
)

// Imaging loads and saves images using github.com/disintegration/imaging.
type Imaging struct {
	// JPEGQuality is the quality used when saving JPEG files, 1 to 100.
	// Zero uses the imaging default.
	JPEGQuality int

	// GIFColors is the maximum palette size used when saving GIF files,
	// 1 to 256. Zero uses the imaging default.
	GIFColors int
}

// Load decodes the image stored at path.
func (c Imaging) Load(path string) (image.Image, error) {
	if ext(path) == farbfeldExt {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return farbfeld.Decode(bufio.NewReader(f))
	}

	return imaging.Open(path, imaging.AutoOrientation(false))
}

func (c Imaging) encode(w io.Writer, path string, m image.Image) error {
	if ext(path) == farbfeldExt {
		return farbfeld.Encode(w, m)
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return ErrUnsupportedFormat
	}

	// GIF palettes are built with median cut
	opts := []imaging.EncodeOption{
		imaging.GIFQuantizer(&quantize.MedianCutQuantizer{}),
	}
	if c.JPEGQuality > 0 {
		opts = append(opts, imaging.JPEGQuality(c.JPEGQuality))
	}
	if c.GIFColors > 0 {
		opts = append(opts, imaging.GIFNumColors(c.GIFColors))
	}

	return imaging.Encode(w, m, format, opts...)
}

// Save encodes m in the format implied by the extension of path and writes
// it out. The file is only created once encoding has succeeded.
func (c Imaging) Save(path string, m image.Image) error {
	b := new(bytes.Buffer)
	if err := c.encode(b, path, m); err != nil {
		return err
	}

	return ioutil.WriteFile(path, b.Bytes(), 0644)
}
