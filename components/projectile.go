package components

import (
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/combat"
)

type ProjectileData struct {
	Projectile *combat.Projectile
}

var Projectile = donburi.NewComponentType[ProjectileData]()
