package retile

import "image"

// Grid describes how an image is divided into tiles. It assumes the tile size
// divides the image bounds exactly, which IsValid guarantees.
type Grid struct {
	Bounds image.Rectangle
	Tile   image.Point
	Cols   int
	Rows   int
}

// NewGrid returns the tile grid for bounds split into tiles of tileSize.
func NewGrid(bounds image.Rectangle, tileSize image.Point) Grid {
	g := Grid{
		Bounds: bounds,
		Tile:   tileSize,
	}
	if tileSize.X > 0 && tileSize.Y > 0 {
		g.Cols = bounds.Dx() / tileSize.X
		g.Rows = bounds.Dy() / tileSize.Y
	}
	return g
}

// Len returns the number of tiles in the grid.
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Cell returns the row and column of tile i.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// Rect returns the pixel rectangle covered by tile i.
func (g Grid) Rect(i int) image.Rectangle {
	row, col := g.Cell(i)
	p := g.Bounds.Min.Add(image.Pt(col*g.Tile.X, row*g.Tile.Y))
	return image.Rectangle{Min: p, Max: p.Add(g.Tile)}
}
