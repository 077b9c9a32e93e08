/*
Package codec implements loading and saving images for retile.

Two backends are provided. Imaging uses the image package decoders (extended
with WebP and farbfeld) and encodes based on the file extension. JPEGN
behaves the same except that JPEG files are decoded with a faster pure Go
decoder.

Images are always returned in their native pixel format, no color space
conversion or orientation correction is applied on load.
*/
package codec

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrUnsupportedFormat is returned when the file extension doesn't map to a
// known image format.
var ErrUnsupportedFormat = errors.New("codec: unsupported image format")

const farbfeldExt = ".ff"

// Extensions that can be both loaded and saved.
var extensions = map[string]struct{}{
	".png":      {},
	".jpg":      {},
	".jpeg":     {},
	".gif":      {},
	".tif":      {},
	".tiff":     {},
	".bmp":      {},
	farbfeldExt: {},
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Supported reports whether path has an extension that can be loaded and
// saved.
func Supported(path string) bool {
	_, ok := extensions[ext(path)]
	return ok
}

// Extensions returns the sorted list of file extensions that can be loaded and
// saved.
func Extensions() []string {
	e := lo.Keys(extensions)
	sort.Strings(e)
	return e
}
