package combat

import "github.com/distracted-programming/tanks/shared/gamemath"

// Projectile is a shell in flight. Locally fired shells carry the sequence
// number they were issued for; remote ones have Seq 0.
type Projectile struct {
	ID     ProjectileID
	Seq    uint64
	Owner  *Tank
	Turret *Turret
	X, Y   float64
	Angle  float64
	Ammo   AmmoProfile
	Age    float64
}

// Step moves the projectile along its angle.
func (p *Projectile) Step(dt float64) {
	d := gamemath.Heading(p.Angle).Scale(p.Ammo.Speed * dt)
	p.X += d.X
	p.Y += d.Y
	p.Age += dt
}

// Expired reports whether the projectile left a w x h field or outlived its ammo.
func (p *Projectile) Expired(w, h float64) bool {
	if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
		return true
	}
	return p.Ammo.Lifetime > 0 && p.Age >= p.Ammo.Lifetime
}

// Hits reports whether the projectile overlaps a circle of radius r around (x, y).
func (p *Projectile) Hits(x, y, r float64) bool {
	d := gamemath.Vector{X: p.X - x, Y: p.Y - y}
	reach := r + p.Ammo.Radius
	return d.LenSq() <= reach*reach
}

// Mine reports whether the projectile was fired by the local player's tank.
func (p *Projectile) Mine(localPlayer int) bool {
	return OwnerOf(p.ID) == localPlayer
}
