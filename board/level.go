package board

import "github.com/distracted-programming/tanks/shared/leveldata"

// FromLevel builds a board from a parsed TMX level. Cells the level leaves
// unpainted get fill.
func FromLevel(data *leveldata.LevelData, fill Tile) (*Board, []SpawnPoint) {
	b := New(data.Width, data.Height, data.TileSize)
	b.Fill(fill)
	for _, ref := range data.Tiles {
		b.Set(ref.X, ref.Y, Tile{
			Name:           ref.Name,
			BlocksMovement: ref.BlocksMovement,
			MoveSpeed:      ref.MoveSpeed,
		})
	}

	spawns := make([]SpawnPoint, 0, len(data.SpawnPoints))
	for _, sp := range data.SpawnPoints {
		spawns = append(spawns, SpawnPoint{X: sp.X, Y: sp.Y, Angle: sp.Angle})
	}
	return b, spawns
}
