package combat

import (
	"math/rand/v2"
	"sort"

	"github.com/distracted-programming/tanks/shared/gamemath"
)

// Turret is the rotating gun mounted on a tank. It owns the projectiles it fired.
type Turret struct {
	tank    *Tank
	Profile TurretProfile
	Ammo    AmmoProfile

	Angle         float64 // relative to the chassis
	AbsoluteAngle float64 // tank.Angle + Angle, refreshed before use

	CurrentCooldown float64

	offsetIndex int
	ids         idAllocator
	projectiles map[ProjectileID]*Projectile
	random      func() float64
	alive       bool
}

func newTurret(tank *Tank, profile TurretProfile, ammo AmmoProfile, idRange int) *Turret {
	t := &Turret{
		tank:        tank,
		Profile:     profile,
		Ammo:        ammo,
		ids:         newIDAllocator(tank.PlayerNo, idRange),
		projectiles: make(map[ProjectileID]*Projectile),
		random:      rand.Float64,
		alive:       true,
	}
	t.refreshAbsolute()
	return t
}

// Tank returns the chassis the turret is mounted on.
func (t *Turret) Tank() *Tank { return t.tank }

func (t *Turret) Alive() bool { return t.alive }

// Rotate turns the turret by direction*RotationSpeed degrees. Limited turrets
// stay within [-MaxLeftAngle, MaxRightAngle].
func (t *Turret) Rotate(direction float64) {
	t.Angle += direction * t.Profile.RotationSpeed
	if t.Profile.FullRotation {
		t.Angle = gamemath.WrapAngle(t.Angle)
	} else {
		t.Angle = gamemath.Clamp(t.Angle, -t.Profile.MaxLeftAngle, t.Profile.MaxRightAngle)
	}
	t.refreshAbsolute()
}

// Update ticks the fire cooldown and re-derives the absolute angle when the
// chassis has turned since the last refresh.
func (t *Turret) Update(dt float64) {
	t.CurrentCooldown -= dt
	if t.AbsoluteAngle != t.tank.Angle+t.Angle {
		t.refreshAbsolute()
	}
}

// SyncAngleFromNetwork applies the relative angle reported for a remote tank.
func (t *Turret) SyncAngleFromNetwork(angle float64) {
	t.Angle = angle
	t.refreshAbsolute()
}

func (t *Turret) refreshAbsolute() {
	t.AbsoluteAngle = t.tank.Angle + t.Angle
}

// Shoot fires one volley if the cooldown allows it and returns the new
// projectiles. Each one is registered with the turret and the session and
// announced over the network.
func (t *Turret) Shoot() []*Projectile {
	if t.CurrentCooldown > 0 {
		return nil
	}
	t.CurrentCooldown = t.Profile.Cooldown
	t.refreshAbsolute()

	shots := make([]*Projectile, 0, t.Profile.ProjectilesPerShot)
	for range t.Profile.ProjectilesPerShot {
		id, seq, ok := t.ids.next(t.live)
		if !ok {
			break
		}
		// muzzles rotate but do not bend the shot
		t.nextMuzzle()
		angle := t.AbsoluteAngle + (t.random()-0.5)*t.Profile.Inaccuracy*2
		p := &Projectile{
			ID:     id,
			Seq:    seq,
			Owner:  t.tank,
			Turret: t,
			X:      t.tank.X,
			Y:      t.tank.Y,
			Angle:  gamemath.WrapAngle(angle),
			Ammo:   t.Ammo,
		}
		t.projectiles[id] = p
		t.tank.session.AddProjectile(p)
		t.tank.session.Network().SendProjectileAdd(id, p.X, p.Y, p.Angle)
		shots = append(shots, p)
	}
	return shots
}

func (t *Turret) nextMuzzle() MuzzleOffset {
	offsets := t.Profile.ProjectileOffsets
	if len(offsets) == 0 {
		return MuzzleOffset{}
	}
	o := offsets[t.offsetIndex%len(offsets)]
	t.offsetIndex = (t.offsetIndex + 1) % len(offsets)
	return o
}

func (t *Turret) live(id ProjectileID) bool {
	_, ok := t.projectiles[id]
	return ok
}

// AssignIDFromServer registers a projectile another client fired through this
// turret. An id that is already live is updated in place.
func (t *Turret) AssignIDFromServer(id ProjectileID, x, y, angle float64) *Projectile {
	if p, ok := t.projectiles[id]; ok {
		p.X, p.Y, p.Angle = x, y, angle
		return p
	}
	p := &Projectile{
		ID:     id,
		Owner:  t.tank,
		Turret: t,
		X:      x,
		Y:      y,
		Angle:  angle,
		Ammo:   t.Ammo,
	}
	t.projectiles[id] = p
	t.tank.session.AddProjectile(p)
	return p
}

// Projectile looks up a live projectile by id.
func (t *Turret) Projectile(id ProjectileID) (*Projectile, bool) {
	p, ok := t.projectiles[id]
	return p, ok
}

// DeleteProjectile forgets a projectile. It reports whether the id was live.
func (t *Turret) DeleteProjectile(id ProjectileID) bool {
	if _, ok := t.projectiles[id]; !ok {
		return false
	}
	delete(t.projectiles, id)
	return true
}

// UpdateProjectile moves a live projectile to a server supplied position.
func (t *Turret) UpdateProjectile(id ProjectileID, x, y float64) bool {
	p, ok := t.projectiles[id]
	if !ok {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// Projectiles returns the live projectiles ordered by id.
func (t *Turret) Projectiles() []*Projectile {
	out := make([]*Projectile, 0, len(t.projectiles))
	for _, p := range t.projectiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (t *Turret) kill() {
	t.alive = false
}
