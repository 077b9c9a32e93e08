package codec

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int, alpha bool) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(0xff)
			if alpha {
				a = uint8(x * 255 / w)
			}
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 8), uint8(y * 8), uint8(x ^ y), a})
		}
	}
	return m
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			if !assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga}, "pixel (%d, %d)", x, y) {
				return
			}
		}
	}
}

func TestSupported(t *testing.T) {
	for _, file := range []string{"a.png", "b.PNG", "c.jpg", "d.jpeg", "e.gif", "f.tif", "g.tiff", "h.bmp", "i.ff"} {
		assert.True(t, Supported(file), file)
	}
	for _, file := range []string{"a.webp", "b.txt", "c", "d.png.bak"} {
		assert.False(t, Supported(file), file)
	}
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".bmp", ".ff", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff"}, Extensions())
}

func TestImagingLossless(t *testing.T) {
	tables := []struct {
		file  string
		alpha bool
		model color.Model
	}{
		{"alpha.png", true, color.NRGBAModel},
		{"opaque.png", false, color.RGBAModel},
		{"opaque.bmp", false, color.RGBAModel},
		{"alpha.tiff", true, color.NRGBAModel},
		{"opaque.ff", false, nil},
	}

	dir := t.TempDir()
	for _, table := range tables {
		t.Run(table.file, func(t *testing.T) {
			file := filepath.Join(dir, table.file)
			m := testImage(16, 8, table.alpha)

			require.NoError(t, Imaging{}.Save(file, m))

			got, err := Imaging{}.Load(file)
			require.NoError(t, err)
			if table.model != nil {
				assert.Equal(t, table.model, got.ColorModel())
			}
			assertSamePixels(t, m, got)
		})
	}
}

func TestImagingGIF(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.gif")
	m := testImage(32, 32, false)

	require.NoError(t, Imaging{GIFColors: 16}.Save(file, m))

	got, err := Imaging{}.Load(file)
	require.NoError(t, err)
	require.IsType(t, &image.Paletted{}, got)
	assert.Equal(t, m.Bounds(), got.Bounds())
	assert.LessOrEqual(t, len(got.(*image.Paletted).Palette), 16)
}

func TestImagingJPEG(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.jpg")
	m := testImage(32, 16, false)

	require.NoError(t, Imaging{JPEGQuality: 100}.Save(file, m))

	got, err := Imaging{}.Load(file)
	require.NoError(t, err)
	assert.IsType(t, &image.YCbCr{}, got)
	assert.Equal(t, m.Bounds(), got.Bounds())
}

func TestImagingUnsupported(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.xyz")

	err := Imaging{}.Save(file, testImage(4, 4, false))
	assert.Equal(t, ErrUnsupportedFormat, err)

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestImagingMissing(t *testing.T) {
	dir := t.TempDir()
	for _, file := range []string{"missing.png", "missing.ff"} {
		_, err := Imaging{}.Load(filepath.Join(dir, file))
		assert.True(t, os.IsNotExist(err), file)
	}
}

func TestImagingCorrupt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(file, []byte("definitely not an image"), 0644))

	_, err := Imaging{}.Load(file)
	assert.Equal(t, image.ErrFormat, err)
}

func TestJPEGN(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.jpg")
	m := testImage(32, 16, false)

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, m, &jpeg.Options{Quality: 90}))
	require.NoError(t, f.Close())

	got, err := JPEGN{}.Load(file)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), got.Bounds())

	ref, err := Imaging{}.Load(file)
	require.NoError(t, err)
	assert.Equal(t, ref.Bounds(), got.Bounds())

	_, err = JPEGN{}.Load(filepath.Join(dir, "missing.jpeg"))
	assert.True(t, os.IsNotExist(err))
}

func TestJPEGNDelegates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.png")
	m := testImage(8, 8, true)

	c := JPEGN{}
	require.NoError(t, c.Save(file, m))

	got, err := c.Load(file)
	require.NoError(t, err)
	assertSamePixels(t, m, got)
}
