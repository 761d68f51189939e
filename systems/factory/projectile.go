package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	"github.com/distracted-programming/tanks/tags"
)

func CreateProjectile(ecs *ecs.ECS, p *combat.Projectile) *donburi.Entry {
	shell := archetypes.Projectile.Spawn(ecs)

	r := p.Ammo.Radius
	if r < 1 {
		r = 1
	}
	obj := resolv.NewObject(p.X-r, p.Y-r, 2*r, 2*r, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = shell

	components.Object.SetValue(shell, components.ObjectData{Object: obj})
	components.Projectile.SetValue(shell, components.ProjectileData{Projectile: p})
	addToSpace(ecs, obj)

	return shell
}

// SyncProjectileObject moves the object to the projectile's position.
func SyncProjectileObject(entry *donburi.Entry) {
	p := components.Projectile.Get(entry).Projectile
	obj := components.Object.Get(entry)
	obj.X, obj.Y = p.X-obj.W/2, p.Y-obj.H/2
	obj.Update()
}
