package factory

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/components"
)

func CreateBoard(ecs *ecs.ECS, b *board.Board, spawns []board.SpawnPoint, colors map[string]color.RGBA) *donburi.Entry {
	entry := archetypes.Board.Spawn(ecs)
	components.Board.SetValue(entry, components.BoardData{
		Board:  b,
		Spawns: spawns,
		Colors: colors,
		Dirty:  true,
	})
	return entry
}
