// Package editor implements the map editor: a board painted with the mouse,
// up to three mirrored cursors and a list of spawn points.
package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/shared/gamemath"
)

// CursorKind indexes Editor.Cursors.
type CursorKind int

const (
	CursorNormal CursorKind = iota
	CursorX
	CursorY
	CursorPoint
	cursorCount
)

func (k CursorKind) String() string {
	switch k {
	case CursorNormal:
		return "normal"
	case CursorX:
		return "x_symmetry"
	case CursorY:
		return "y_symmetry"
	case CursorPoint:
		return "point_symmetry"
	}
	return "unknown"
}

// Cursor is a highlighted grid cell.
type Cursor struct {
	X, Y    int
	Visible bool
}

// Symmetry holds the mirror toggles.
type Symmetry struct {
	X     bool // mirror across the vertical centre line
	Y     bool // mirror across the horizontal centre line
	Point bool // mirror through the centre
}

// pointActive reports whether the point-mirrored cell is painted.
func (s Symmetry) pointActive() bool {
	return (s.X && s.Y) || s.Point
}

// Editor is the editable map state.
type Editor struct {
	Board    *board.Board
	Palette  []board.Tile
	Spawns   []board.SpawnPoint
	Symmetry Symmetry
	Cursors  [cursorCount]Cursor

	RotationStep float64 // degrees added by RotateSpawnPoint

	tileIndex int
}

// New creates an editor over a width x height board filled with palette[0].
func New(width, height, scale int, palette []board.Tile, rotationStep float64) (*Editor, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("editor: empty tile palette")
	}
	e := &Editor{
		Board:        board.New(width, height, scale),
		Palette:      palette,
		RotationStep: rotationStep,
	}
	e.Fill(palette[0])
	e.Cursors[CursorNormal].Visible = true
	return e, nil
}

// Fill paints the whole board with t.
func (e *Editor) Fill(t board.Tile) { e.Board.Fill(t) }

// CurrentTile is the tile the left mouse button paints.
func (e *Editor) CurrentTile() board.Tile { return e.Palette[e.tileIndex] }

// CycleTile selects the next palette entry.
func (e *Editor) CycleTile() board.Tile {
	e.tileIndex = (e.tileIndex + 1) % len(e.Palette)
	return e.CurrentTile()
}

// MoveCursor places all four cursors for the cell under pixel (px, py). The
// main cursor is hidden while it is off the board.
func (e *Editor) MoveCursor(px, py float64) {
	x, y := e.Board.ScreenToGrid(px, py)
	mx, my := e.Board.Mirror(x, y)
	e.Cursors[CursorNormal].Visible = e.Board.InGrid(x, y)
	e.Cursors[CursorNormal].X, e.Cursors[CursorNormal].Y = x, y
	e.Cursors[CursorX].X, e.Cursors[CursorX].Y = mx, y
	e.Cursors[CursorY].X, e.Cursors[CursorY].Y = x, my
	e.Cursors[CursorPoint].X, e.Cursors[CursorPoint].Y = mx, my
}

// Cell returns the grid cell under the main cursor.
func (e *Editor) Cell() (int, int) {
	c := e.Cursors[CursorNormal]
	return c.X, c.Y
}

// ToggleX flips x symmetry. Point symmetry is switched off.
func (e *Editor) ToggleX() {
	e.Symmetry.X = !e.Symmetry.X
	e.Symmetry.Point = false
	e.syncCursors()
}

// ToggleY flips y symmetry. Point symmetry is switched off.
func (e *Editor) ToggleY() {
	e.Symmetry.Y = !e.Symmetry.Y
	e.Symmetry.Point = false
	e.syncCursors()
}

// TogglePoint flips point symmetry. Turning it on clears x and y symmetry.
func (e *Editor) TogglePoint() {
	e.Symmetry.Point = !e.Symmetry.Point
	if e.Symmetry.Point {
		e.Symmetry.X = false
		e.Symmetry.Y = false
	}
	e.syncCursors()
}

func (e *Editor) syncCursors() {
	e.Cursors[CursorX].Visible = e.Symmetry.X
	e.Cursors[CursorY].Visible = e.Symmetry.Y
	e.Cursors[CursorPoint].Visible = e.Symmetry.pointActive()
}

// Paint sets the current tile under the cursor and at every active mirror.
// Nothing happens while the cursor is off the board.
func (e *Editor) Paint() {
	x, y := e.Cell()
	if !e.Board.InGrid(x, y) {
		return
	}
	t := e.CurrentTile()
	mx, my := e.Board.Mirror(x, y)

	e.Board.Set(x, y, t)
	if e.Symmetry.X {
		e.Board.Set(mx, y, t)
	}
	if e.Symmetry.Y {
		e.Board.Set(x, my, t)
	}
	if e.Symmetry.pointActive() {
		e.Board.Set(mx, my, t)
	}
}

// ToggleSpawnPoint adds a spawn point at (x, y) or removes the existing one.
func (e *Editor) ToggleSpawnPoint(x, y int) {
	if !e.Board.InGrid(x, y) {
		return
	}
	if i := e.spawnIndex(x, y); i >= 0 {
		e.Spawns = append(e.Spawns[:i], e.Spawns[i+1:]...)
		return
	}
	e.Spawns = append(e.Spawns, board.SpawnPoint{X: x, Y: y})
}

// RotateSpawnPoint turns the spawn point at (x, y) by RotationStep.
func (e *Editor) RotateSpawnPoint(x, y int) {
	if i := e.spawnIndex(x, y); i >= 0 {
		e.Spawns[i].Angle = gamemath.WrapAngle(e.Spawns[i].Angle + e.RotationStep)
	}
}

func (e *Editor) spawnIndex(x, y int) int {
	for i, sp := range e.Spawns {
		if sp.X == x && sp.Y == y {
			return i
		}
	}
	return -1
}

// Save writes the map file to path, replacing it atomically.
func (e *Editor) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".map-*.json")
	if err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := board.Encode(tmp, e.Board, e.Spawns); err != nil {
		tmp.Close()
		return fmt.Errorf("save map: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}

// Load replaces the board and spawn points with the contents of path.
func (e *Editor) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	defer f.Close()

	b, spawns, err := board.Decode(f, e.Board.Scale, e.palette())
	if err != nil {
		return fmt.Errorf("load map %s: %w", path, err)
	}
	e.Board = b
	e.Spawns = spawns
	return nil
}

func (e *Editor) palette() board.Palette {
	p := make(board.Palette, len(e.Palette))
	for _, t := range e.Palette {
		p[t.Name] = t
	}
	return p
}
