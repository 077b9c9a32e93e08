package retile

import (
	"image"
	"image/color"
	"image/draw"
)

// newCanvas returns a zeroed image with the same bounds as m. The pixel type
// matches m wherever the image package provides a drawable equivalent, read
// only types such as *image.YCbCr fall back to *image.RGBA.
func newCanvas(m image.Image) draw.Image {
	b := m.Bounds()
	switch m := m.(type) {
	case *image.RGBA:
		return image.NewRGBA(b)
	case *image.NRGBA:
		return image.NewNRGBA(b)
	case *image.RGBA64:
		return image.NewRGBA64(b)
	case *image.NRGBA64:
		return image.NewNRGBA64(b)
	case *image.Gray:
		return image.NewGray(b)
	case *image.Gray16:
		return image.NewGray16(b)
	case *image.Alpha:
		return image.NewAlpha(b)
	case *image.Alpha16:
		return image.NewAlpha16(b)
	case *image.CMYK:
		return image.NewCMYK(b)
	case *image.Paletted:
		return image.NewPaletted(b, append(color.Palette(nil), m.Palette...))
	default:
		return image.NewRGBA(b)
	}
}

type pixelKind int

const (
	kindNone pixelKind = iota
	kindRGBA
	kindNRGBA
	kindRGBA64
	kindNRGBA64
	kindGray
	kindGray16
	kindAlpha
	kindAlpha16
	kindCMYK
	kindPaletted
)

// pixels is a view of the raw pixel storage of the image types that have one.
type pixels struct {
	kind   pixelKind
	pix    []uint8
	stride int
	bpp    int
	rect   image.Rectangle
}

func pixelsOf(m image.Image) pixels {
	switch m := m.(type) {
	case *image.RGBA:
		return pixels{kindRGBA, m.Pix, m.Stride, 4, m.Rect}
	case *image.NRGBA:
		return pixels{kindNRGBA, m.Pix, m.Stride, 4, m.Rect}
	case *image.RGBA64:
		return pixels{kindRGBA64, m.Pix, m.Stride, 8, m.Rect}
	case *image.NRGBA64:
		return pixels{kindNRGBA64, m.Pix, m.Stride, 8, m.Rect}
	case *image.Gray:
		return pixels{kindGray, m.Pix, m.Stride, 1, m.Rect}
	case *image.Gray16:
		return pixels{kindGray16, m.Pix, m.Stride, 2, m.Rect}
	case *image.Alpha:
		return pixels{kindAlpha, m.Pix, m.Stride, 1, m.Rect}
	case *image.Alpha16:
		return pixels{kindAlpha16, m.Pix, m.Stride, 2, m.Rect}
	case *image.CMYK:
		return pixels{kindCMYK, m.Pix, m.Stride, 4, m.Rect}
	case *image.Paletted:
		return pixels{kindPaletted, m.Pix, m.Stride, 1, m.Rect}
	}
	return pixels{}
}

func (p pixels) offset(pt image.Point) int {
	return (pt.Y-p.rect.Min.Y)*p.stride + (pt.X-p.rect.Min.X)*p.bpp
}

// copyTile copies the rectangle of src starting at sp into r of dst. When both
// images share a pixel type the bytes are copied verbatim, otherwise the
// pixels go through draw.Draw with the Src operator.
func copyTile(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	d, s := pixelsOf(dst), pixelsOf(src)
	if d.kind == kindNone || d.kind != s.kind {
		draw.Draw(dst, r, src, sp, draw.Src)
		return
	}

	n := r.Dx() * d.bpp
	for y := 0; y < r.Dy(); y++ {
		di := d.offset(image.Pt(r.Min.X, r.Min.Y+y))
		si := s.offset(image.Pt(sp.X, sp.Y+y))
		copy(d.pix[di:di+n], s.pix[si:si+n])
	}
}
