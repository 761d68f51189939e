package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/tags"
)

var (
	Tank = newArchetype(
		tags.Tank,
		components.Tank,
		components.Object,
		components.ShieldFX,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	HPBar = newArchetype(
		tags.HPBar,
		components.HPBar,
		components.Visibility,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Board = newArchetype(
		components.Board,
	)
	Input = newArchetype(
		components.Input,
	)
	Battle = newArchetype(
		components.Battle,
	)
	Editor = newArchetype(
		components.Editor,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
		components.Visibility,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
