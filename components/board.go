package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/board"
)

// BoardData is the tile grid being played on or edited.
type BoardData struct {
	Board  *board.Board
	Spawns []board.SpawnPoint
	Colors map[string]color.RGBA

	// Image caches the drawn tiles; Dirty forces a redraw.
	Image *ebiten.Image
	Dirty bool
}

var Board = donburi.NewComponentType[BoardData]()
