package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/systems/factory"
	"github.com/distracted-programming/tanks/tags"
)

type projectileRemoval struct {
	id       combat.ProjectileID
	announce bool
}

// NewProjectileSystem moves every projectile and resolves what it ran into.
// Each client only judges hits on its own tank and announces the removal;
// shells leaving the field or striking a wall are announced by their owner.
func NewProjectileSystem(s *Session) func(*ecs.ECS) {
	var removals []projectileRemoval

	return func(e *ecs.ECS) {
		dt := s.Dt()
		w, h := s.Board().Bounds()
		localPlayer := s.LocalPlayer()
		local, hasLocal := s.LocalTank()
		localEntry, _ := s.TankEntry(localPlayer)

		removals = removals[:0]
		tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
			p := components.Projectile.Get(entry).Projectile
			p.Step(dt)
			mine := p.Mine(localPlayer)

			if p.Expired(w, h) {
				removals = append(removals, projectileRemoval{p.ID, mine})
				return
			}
			factory.SyncProjectileObject(entry)

			check := components.Object.Get(entry).Check(0, 0, tags.ResolvSolid, tags.ResolvTank)
			if check == nil {
				return
			}
			if len(check.ObjectsByTags(tags.ResolvSolid)) > 0 && s.Board().TileAtScreen(p.X, p.Y).BlocksMovement {
				removals = append(removals, projectileRemoval{p.ID, mine})
				return
			}
			if mine || !hasLocal || !local.Alive() {
				return
			}
			for _, o := range check.ObjectsByTags(tags.ResolvTank) {
				hit, ok := o.Data.(*donburi.Entry)
				if !ok || hit.Entity() != localEntry.Entity() {
					continue
				}
				if p.Hits(local.X, local.Y, cfg.Combat.TankRadius) {
					local.OffsetHP(-p.Ammo.Damage)
					removals = append(removals, projectileRemoval{p.ID, true})
				}
				break
			}
		})

		for _, r := range removals {
			s.RemoveProjectile(r.id, r.announce)
		}
	}
}
