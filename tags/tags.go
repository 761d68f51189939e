package tags

import "github.com/yohamta/donburi"

var (
	Tank       = donburi.NewTag().SetName("Tank")
	LocalTank  = donburi.NewTag().SetName("LocalTank")
	Projectile = donburi.NewTag().SetName("Projectile")
	HPBar      = donburi.NewTag().SetName("HPBar")
	Wall       = donburi.NewTag().SetName("Wall")
	Cursor     = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for hit detection
const (
	ResolvSolid      = "solid"
	ResolvTank       = "tank"
	ResolvProjectile = "projectile"
)
