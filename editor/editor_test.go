package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distracted-programming/tanks/board"
)

var (
	grass = board.Tile{Name: "grass", MoveSpeed: 1}
	wall  = board.Tile{Name: "wall", BlocksMovement: true, MoveSpeed: 1}
	sand  = board.Tile{Name: "sand", MoveSpeed: 0.7}
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(16, 12, 50, []board.Tile{grass, wall, sand}, 45)
	require.NoError(t, err)
	return e
}

func TestNewFillsWithFirstTile(t *testing.T) {
	e := newTestEditor(t)
	assert.Equal(t, grass, e.Board.At(0, 0))
	assert.Equal(t, grass, e.Board.At(15, 11))
	assert.True(t, e.Cursors[CursorNormal].Visible)
	assert.False(t, e.Cursors[CursorX].Visible)

	_, err := New(4, 4, 50, nil, 45)
	assert.Error(t, err)
}

func TestCursorPositions(t *testing.T) {
	e := newTestEditor(t)
	e.MoveCursor(125, 60)

	assert.Equal(t, Cursor{X: 2, Y: 1, Visible: true}, e.Cursors[CursorNormal])
	assert.Equal(t, 13, e.Cursors[CursorX].X)
	assert.Equal(t, 1, e.Cursors[CursorX].Y)
	assert.Equal(t, 2, e.Cursors[CursorY].X)
	assert.Equal(t, 10, e.Cursors[CursorY].Y)
	assert.Equal(t, 13, e.Cursors[CursorPoint].X)
	assert.Equal(t, 10, e.Cursors[CursorPoint].Y)
}

func TestCursorHiddenOffBoard(t *testing.T) {
	e := newTestEditor(t)
	e.MoveCursor(-10, 60)
	assert.False(t, e.Cursors[CursorNormal].Visible)

	e.MoveCursor(10, 60)
	assert.True(t, e.Cursors[CursorNormal].Visible)
}

func TestPointSymmetryExcludesAxes(t *testing.T) {
	e := newTestEditor(t)
	e.ToggleX()
	e.ToggleY()
	assert.Equal(t, Symmetry{X: true, Y: true}, e.Symmetry)
	assert.True(t, e.Cursors[CursorPoint].Visible, "x and y together imply the point mirror")

	e.TogglePoint()
	assert.Equal(t, Symmetry{Point: true}, e.Symmetry)
	assert.False(t, e.Cursors[CursorX].Visible)
	assert.False(t, e.Cursors[CursorY].Visible)
	assert.True(t, e.Cursors[CursorPoint].Visible)

	e.ToggleX()
	assert.Equal(t, Symmetry{X: true}, e.Symmetry)
	assert.False(t, e.Cursors[CursorPoint].Visible)

	e.TogglePoint()
	e.TogglePoint()
	assert.Equal(t, Symmetry{}, e.Symmetry)
	assert.False(t, e.Cursors[CursorPoint].Visible)
}

func TestPaintMirrors(t *testing.T) {
	tests := []struct {
		name   string
		toggle func(*Editor)
		want   [][2]int
	}{
		{"none", func(*Editor) {}, [][2]int{{2, 1}}},
		{"x", (*Editor).ToggleX, [][2]int{{2, 1}, {13, 1}}},
		{"y", (*Editor).ToggleY, [][2]int{{2, 1}, {2, 10}}},
		{"point", (*Editor).TogglePoint, [][2]int{{2, 1}, {13, 10}}},
		{"x and y", func(e *Editor) { e.ToggleX(); e.ToggleY() }, [][2]int{{2, 1}, {13, 1}, {2, 10}, {13, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			tt.toggle(e)
			e.CycleTile()
			e.MoveCursor(125, 60)

			e.Paint()

			painted := 0
			for y := range e.Board.Height {
				for x := range e.Board.Width {
					if e.Board.At(x, y) == wall {
						painted++
					}
				}
			}
			assert.Equal(t, len(tt.want), painted)
			for _, c := range tt.want {
				assert.Equal(t, wall, e.Board.At(c[0], c[1]), "cell %v", c)
			}
		})
	}
}

func TestPaintOffBoardIsIgnored(t *testing.T) {
	e := newTestEditor(t)
	e.CycleTile()
	e.MoveCursor(-10, 900)
	assert.NotPanics(t, e.Paint)
}

func TestCycleTileWraps(t *testing.T) {
	e := newTestEditor(t)
	assert.Equal(t, wall, e.CycleTile())
	assert.Equal(t, sand, e.CycleTile())
	assert.Equal(t, grass, e.CycleTile())
}

func TestToggleSpawnPointTwice(t *testing.T) {
	e := newTestEditor(t)
	e.ToggleSpawnPoint(3, 4)
	require.Equal(t, []board.SpawnPoint{{X: 3, Y: 4}}, e.Spawns)

	e.ToggleSpawnPoint(3, 4)
	assert.Empty(t, e.Spawns)
}

func TestToggleKeepsOtherSpawns(t *testing.T) {
	e := newTestEditor(t)
	e.ToggleSpawnPoint(1, 1)
	e.ToggleSpawnPoint(2, 2)
	e.ToggleSpawnPoint(3, 3)

	e.ToggleSpawnPoint(2, 2)

	assert.Equal(t, []board.SpawnPoint{{X: 1, Y: 1}, {X: 3, Y: 3}}, e.Spawns)
}

func TestRotateSpawnPoint(t *testing.T) {
	e := newTestEditor(t)
	e.ToggleSpawnPoint(5, 5)

	for range 3 {
		e.RotateSpawnPoint(5, 5)
	}
	assert.Equal(t, 135.0, e.Spawns[0].Angle)

	for range 5 {
		e.RotateSpawnPoint(5, 5)
	}
	assert.Equal(t, 0.0, e.Spawns[0].Angle)

	e.RotateSpawnPoint(6, 6)
	assert.Len(t, e.Spawns, 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	e := newTestEditor(t)
	e.CycleTile()
	e.ToggleX()
	e.MoveCursor(0, 0)
	e.Paint()
	e.ToggleSpawnPoint(4, 4)
	e.RotateSpawnPoint(4, 4)
	require.NoError(t, e.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"spawn_points":[[4,4,45]]`)
	assert.Contains(t, string(raw), `"map_data":[["wall","grass"`)

	loaded := newTestEditor(t)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, wall, loaded.Board.At(0, 0))
	assert.Equal(t, wall, loaded.Board.At(15, 0))
	assert.Equal(t, grass, loaded.Board.At(1, 0))
	assert.Equal(t, []board.SpawnPoint{{X: 4, Y: 4, Angle: 45}}, loaded.Spawns)
}

func TestLoadMissingFile(t *testing.T) {
	e := newTestEditor(t)
	err := e.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Equal(t, grass, e.Board.At(0, 0))
}
