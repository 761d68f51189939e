// Package board holds the tile grid both the battle client and the map editor
// paint into and read from.
package board

import (
	"fmt"
	"math"
)

// Tile is one cell of the board. A zero Tile is an empty, passable cell.
type Tile struct {
	Name           string
	BlocksMovement bool
	MoveSpeed      float64 // multiplier applied to a tank's max speed, >= 0
}

// Board is a Width x Height grid of tiles, Scale pixels per tile.
type Board struct {
	Width, Height int
	Scale         int
	tiles         []Tile
}

// New creates an empty board.
func New(width, height, scale int) *Board {
	if width <= 0 || height <= 0 || scale <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d scale %d", width, height, scale))
	}
	return &Board{
		Width:  width,
		Height: height,
		Scale:  scale,
		tiles:  make([]Tile, width*height),
	}
}

// Fill sets every cell to t.
func (b *Board) Fill(t Tile) {
	for i := range b.tiles {
		b.tiles[i] = t
	}
}

// InGrid reports whether (x, y) is a valid cell.
func (b *Board) InGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At returns the tile at grid cell (x, y). Out-of-range lookups are
// programming errors.
func (b *Board) At(x, y int) Tile {
	if !b.InGrid(x, y) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", x, y, b.Width, b.Height))
	}
	return b.tiles[y*b.Width+x]
}

// Set paints grid cell (x, y).
func (b *Board) Set(x, y int, t Tile) {
	if !b.InGrid(x, y) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", x, y, b.Width, b.Height))
	}
	b.tiles[y*b.Width+x] = t
}

// ScreenToGrid converts a pixel position to the cell containing it.
func (b *Board) ScreenToGrid(px, py float64) (int, int) {
	s := float64(b.Scale)
	return int(math.Floor(px / s)), int(math.Floor(py / s))
}

// TileAtScreen returns the tile under pixel position (px, py).
func (b *Board) TileAtScreen(px, py float64) Tile {
	x, y := b.ScreenToGrid(px, py)
	return b.At(x, y)
}

// Bounds returns the board size in pixels.
func (b *Board) Bounds() (float64, float64) {
	return float64(b.Width * b.Scale), float64(b.Height * b.Scale)
}

// Mirror returns the cell mirrored across both board axes.
func (b *Board) Mirror(x, y int) (int, int) {
	return b.Width - x - 1, b.Height - y - 1
}

// CellCenter returns the pixel position at the centre of grid cell (x, y).
func (b *Board) CellCenter(x, y int) (float64, float64) {
	s := float64(b.Scale)
	return (float64(x) + 0.5) * s, (float64(y) + 0.5) * s
}
