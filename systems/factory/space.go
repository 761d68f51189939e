package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/components"
)

// CreateSpace builds the hit detection grid for b, one cell per tile, and a
// wall object for every tile that blocks movement.
func CreateSpace(ecs *ecs.ECS, b *board.Board) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w, h := b.Bounds()
	spaceData := resolv.NewSpace(int(w), int(h), b.Scale, b.Scale)
	components.Space.Set(space, spaceData)

	s := float64(b.Scale)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y).BlocksMovement {
				CreateWall(ecs, float64(x)*s, float64(y)*s, s, s)
			}
		}
	}
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveObject takes the entry's object out of the space.
func RemoveObject(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
