/*
Package retile is a library for rearranging the tiles of an image.

An image is split into a grid of equally sized tiles which are numbered in
row-major order starting from zero at the top-left. An ordering lists, for
each tile position in the output, the index of the input tile that should be
placed there, so an ordering of [3, 2, 1, 0] for a 2 by 2 grid rotates the
image by 180 degrees at tile granularity.
*/
package retile

import (
	"errors"
	"image"
	"io/ioutil"
	"log"
)

var (
	// ErrInvalidConfiguration is returned when the tile size does not
	// divide the image exactly, the ordering has the wrong number of
	// entries or the ordering contains duplicates.
	ErrInvalidConfiguration = errors.New("The tile size or ordering are not valid for the given image")

	// ErrTileOutOfRange is returned when an ordering entry does not name a
	// tile in the image.
	ErrTileOutOfRange = errors.New("tile index out of range")
)

// Codec loads and saves images on the filesystem.
type Codec interface {
	Load(path string) (image.Image, error)
	Save(path string, m image.Image) error
}

type Rearranger struct {
	codec  Codec
	logger *log.Logger
}

// New returns a Rearranger that uses codec for all image I/O. If logger is
// nil, logging is discarded.
func New(codec Codec, logger *log.Logger) *Rearranger {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Rearranger{
		codec:  codec,
		logger: logger,
	}
}
