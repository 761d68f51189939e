package board

import (
	"encoding/json"
	"fmt"
	"io"
)

// SpawnPoint is a tank spawn cell with its starting heading in degrees.
// It is encoded as a JSON triple [x, y, angle].
type SpawnPoint struct {
	X, Y  int
	Angle float64
}

func (sp SpawnPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{float64(sp.X), float64(sp.Y), sp.Angle})
}

func (sp *SpawnPoint) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("spawn point: %w", err)
	}
	sp.X, sp.Y, sp.Angle = int(triple[0]), int(triple[1]), triple[2]
	return nil
}

// MapFile is the on-disk map format written by the editor: spawn points plus
// the tile names of every row.
type MapFile struct {
	SpawnPoints []SpawnPoint `json:"spawn_points"`
	MapData     [][]string   `json:"map_data"`
}

// Palette resolves tile names stored in a map file.
type Palette map[string]Tile

// Encode writes the board and spawn points as a MapFile.
func Encode(w io.Writer, b *Board, spawns []SpawnPoint) error {
	mf := MapFile{
		SpawnPoints: spawns,
		MapData:     make([][]string, b.Height),
	}
	if mf.SpawnPoints == nil {
		mf.SpawnPoints = []SpawnPoint{}
	}
	for y := 0; y < b.Height; y++ {
		row := make([]string, b.Width)
		for x := 0; x < b.Width; x++ {
			row[x] = b.At(x, y).Name
		}
		mf.MapData[y] = row
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(mf); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return nil
}

// Decode reads a MapFile and rebuilds the board, resolving tile names through
// palette. Unknown names are an error.
func Decode(r io.Reader, scale int, palette Palette) (*Board, []SpawnPoint, error) {
	var mf MapFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, nil, fmt.Errorf("decode map: %w", err)
	}
	if len(mf.MapData) == 0 || len(mf.MapData[0]) == 0 {
		return nil, nil, fmt.Errorf("decode map: empty map_data")
	}

	height, width := len(mf.MapData), len(mf.MapData[0])
	b := New(width, height, scale)
	for y, row := range mf.MapData {
		if len(row) != width {
			return nil, nil, fmt.Errorf("decode map: row %d has %d tiles, want %d", y, len(row), width)
		}
		for x, name := range row {
			t, ok := palette[name]
			if !ok {
				return nil, nil, fmt.Errorf("decode map: unknown tile %q at (%d,%d)", name, x, y)
			}
			b.Set(x, y, t)
		}
	}

	for _, sp := range mf.SpawnPoints {
		if !b.InGrid(sp.X, sp.Y) {
			return nil, nil, fmt.Errorf("decode map: spawn point (%d,%d) outside grid", sp.X, sp.Y)
		}
	}

	return b, mf.SpawnPoints, nil
}
