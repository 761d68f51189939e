package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/tags"
)

// CreateTank spawns the entity mirroring t. The local tank also carries
// tags.LocalTank.
func CreateTank(ecs *ecs.ECS, t *combat.Tank, name, loadout string, local bool) *donburi.Entry {
	var tank *donburi.Entry
	if local {
		tank = archetypes.Tank.Spawn(ecs, tags.LocalTank)
	} else {
		tank = archetypes.Tank.Spawn(ecs)
	}

	r := cfg.Combat.TankRadius
	obj := resolv.NewObject(t.X-r, t.Y-r, 2*r, 2*r, tags.ResolvTank)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = tank

	components.Object.SetValue(tank, components.ObjectData{Object: obj})
	components.Tank.SetValue(tank, components.TankData{
		Tank:    t,
		Name:    name,
		Loadout: loadout,
		Local:   local,
	})
	components.ShieldFX.SetValue(tank, components.ShieldFXData{
		Pulse:  NewShieldPulse(true),
		Rising: true,
		Alpha:  ShieldPulseMin,
	})
	components.Flash.SetValue(tank, components.FlashData{LastHP: t.HP})
	addToSpace(ecs, obj)

	return tank
}

// SyncTankObject moves the hit box to the tank's position.
func SyncTankObject(entry *donburi.Entry) {
	t := components.Tank.Get(entry).Tank
	obj := components.Object.Get(entry)
	r := cfg.Combat.TankRadius
	obj.X, obj.Y = t.X-r, t.Y-r
	obj.Update()
}
