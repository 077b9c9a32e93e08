package retile

import (
	"fmt"
	"image"
	"image/draw"
)

// RearrangeImage returns a copy of m with its tiles moved according to
// ordering, where ordering[i] is the index of the tile in m that ends up at
// position i. m itself is not modified.
func RearrangeImage(m image.Image, tileSize image.Point, ordering []int) (draw.Image, error) {
	b := m.Bounds()

	if !IsValid(b.Size(), tileSize, ordering) {
		return nil, ErrInvalidConfiguration
	}

	g := NewGrid(b, tileSize)

	for _, i := range ordering {
		if i < 0 || i >= g.Len() {
			return nil, fmt.Errorf("%w: %d", ErrTileOutOfRange, i)
		}
	}

	dst := newCanvas(m)
	for n, o := range ordering {
		copyTile(dst, g.Rect(n), m, g.Rect(o).Min)
	}

	return dst, nil
}

// Rearrange loads the image at imagePath, moves its tiles according to
// ordering and saves the result to outPath. Nothing is written to outPath if
// the configuration is invalid.
func (r *Rearranger) Rearrange(imagePath string, tileSize image.Point, ordering []int, outPath string) error {
	m, err := r.codec.Load(imagePath)
	if err != nil {
		return err
	}

	b := m.Bounds()
	r.logger.Printf("Loaded \"%s\", %dx%d pixels\n", imagePath, b.Dx(), b.Dy())

	dst, err := RearrangeImage(m, tileSize, ordering)
	if err != nil {
		return err
	}

	g := NewGrid(b, tileSize)
	r.logger.Printf("Moved %d tiles in a %dx%d grid\n", g.Len(), g.Cols, g.Rows)

	if err := r.codec.Save(outPath, dst); err != nil {
		return err
	}

	r.logger.Printf("Wrote \"%s\"\n", outPath)

	return nil
}
