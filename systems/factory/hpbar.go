package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
)

func CreateHPBar(ecs *ecs.ECS, b *combat.HPBar) *donburi.Entry {
	bar := archetypes.HPBar.Spawn(ecs)
	f := b.Fraction()
	components.HPBar.SetValue(bar, components.HPBarData{
		Bar:    b,
		Shown:  f,
		Target: f,
	})
	components.Visibility.SetValue(bar, components.VisibilityData{Visible: true})
	return bar
}
