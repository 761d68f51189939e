// Package leveldata provides TMX level parsing shared between client and server.
// It has no ebitengine, donburi or resolv dependencies.
package leveldata

// LevelData holds the tile grid and spawn points parsed from a TMX level file.
type LevelData struct {
	Width, Height int // in tiles
	TileSize      int // in pixels
	Tiles         []TileRef
	SpawnPoints   []SpawnPoint
}

// TileRef is one painted cell of the "ground" layer.
type TileRef struct {
	X, Y           int
	Name           string
	BlocksMovement bool
	MoveSpeed      float64
}

// SpawnPoint is a tank spawn location in grid coordinates, with the heading
// the tank starts with.
type SpawnPoint struct {
	X, Y  int
	Angle float64
}

// PixelPosition returns the centre of the spawn cell in screen pixels.
func (sp SpawnPoint) PixelPosition(tileSize int) (float64, float64) {
	half := float64(tileSize) / 2
	return float64(sp.X*tileSize) + half, float64(sp.Y*tileSize) + half
}
