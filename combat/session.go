package combat

import "github.com/distracted-programming/tanks/board"

// TileSource answers tile queries in screen coordinates.
type TileSource interface {
	TileAtScreen(x, y float64) board.Tile
	Bounds() (w, h float64)
}

// Network is the outbound half of the connection. Sends are fire-and-forget.
type Network interface {
	SendTankState(s TankState)
	SendProjectileAdd(id ProjectileID, x, y, angle float64)
}

// Session is the running match a tank belongs to.
type Session interface {
	AddProjectile(p *Projectile)
	AddHPBar(b *HPBar)
	RemoveHPBar(b *HPBar)
	Network() Network
	Tiles() TileSource
}

// TankState is the authoritative part of a tank as sent over the wire.
type TankState struct {
	X, Y         float64
	Angle        float64
	HP           float64
	TurretAngle  float64
	ShieldActive bool
}
