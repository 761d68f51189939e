package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/distracted-programming/tanks/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	grass = Tile{Name: "grass", MoveSpeed: 1}
	sand  = Tile{Name: "sand", MoveSpeed: 0.6}
	wall  = Tile{Name: "wall", BlocksMovement: true, MoveSpeed: 1}
)

func TestBoard_TileAtScreen(t *testing.T) {
	b := New(4, 3, 50)
	b.Fill(grass)
	b.Set(2, 1, wall)

	assert.Equal(t, wall, b.TileAtScreen(100, 50))
	assert.Equal(t, wall, b.TileAtScreen(149.9, 99.9))
	assert.Equal(t, grass, b.TileAtScreen(150, 50))
	assert.Equal(t, grass, b.TileAtScreen(0, 0))

	w, h := b.Bounds()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 150.0, h)
}

func TestBoard_OutOfRangePanics(t *testing.T) {
	b := New(2, 2, 10)
	assert.Panics(t, func() { b.At(2, 0) })
	assert.Panics(t, func() { b.TileAtScreen(-1, 5) })
	assert.Panics(t, func() { b.Set(0, -1, grass) })
}

func TestBoard_Mirror(t *testing.T) {
	b := New(16, 12, 50)
	x, y := b.Mirror(0, 0)
	assert.Equal(t, 15, x)
	assert.Equal(t, 11, y)
	x, y = b.Mirror(5, 7)
	assert.Equal(t, 10, x)
	assert.Equal(t, 4, y)
}

func TestBoard_CellCenter(t *testing.T) {
	b := New(4, 3, 50)
	x, y := b.CellCenter(2, 1)
	assert.Equal(t, 125.0, x)
	assert.Equal(t, 75.0, y)

	gx, gy := b.ScreenToGrid(x, y)
	assert.Equal(t, 2, gx)
	assert.Equal(t, 1, gy)
}

func TestMapFile_RoundTrip(t *testing.T) {
	b := New(3, 2, 50)
	b.Fill(grass)
	b.Set(0, 1, sand)
	b.Set(2, 0, wall)
	spawns := []SpawnPoint{{X: 1, Y: 1, Angle: 90}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b, spawns))
	assert.Contains(t, buf.String(), `"spawn_points":[[1,1,90]]`)

	palette := Palette{"grass": grass, "sand": sand, "wall": wall}
	got, gotSpawns, err := Decode(&buf, 50, palette)
	require.NoError(t, err)
	assert.Equal(t, spawns, gotSpawns)
	assert.Equal(t, sand, got.At(0, 1))
	assert.Equal(t, wall, got.At(2, 0))
	assert.Equal(t, grass, got.At(1, 0))
}

func TestMapFile_DecodeErrors(t *testing.T) {
	palette := Palette{"grass": grass}
	tests := []struct {
		name, input, wantErr string
	}{
		{"empty", `{"spawn_points":[],"map_data":[]}`, "empty map_data"},
		{"unknown tile", `{"spawn_points":[],"map_data":[["lava"]]}`, `unknown tile "lava"`},
		{"ragged", `{"spawn_points":[],"map_data":[["grass","grass"],["grass"]]}`, "row 1"},
		{"spawn outside", `{"spawn_points":[[3,0,0]],"map_data":[["grass"]]}`, "outside grid"},
		{"bad spawn", `{"spawn_points":[["a"]],"map_data":[["grass"]]}`, "spawn point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(tt.input), 50, palette)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromLevel(t *testing.T) {
	data := &leveldata.LevelData{
		Width: 3, Height: 2, TileSize: 50,
		Tiles: []leveldata.TileRef{
			{X: 1, Y: 0, Name: "wall", BlocksMovement: true, MoveSpeed: 1},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 2, Y: 1, Angle: 180}},
	}
	b, spawns := FromLevel(data, grass)
	assert.Equal(t, wall, b.At(1, 0))
	assert.Equal(t, grass, b.At(0, 0))
	assert.Equal(t, []SpawnPoint{{X: 2, Y: 1, Angle: 180}}, spawns)
}
