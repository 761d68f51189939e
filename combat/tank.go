// Package combat is the tank simulation: chassis physics, the shield state
// machine, the turret and the projectiles it fires. It has no rendering or
// networking code of its own and talks to the outside through Session.
package combat

import (
	"fmt"
	"math"

	"github.com/distracted-programming/tanks/shared/gamemath"
)

// Direction is the way a tank was travelling when it last left rest.
type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Kinematics is the moving part of a tank.
type Kinematics struct {
	X, Y               float64
	Velocity           gamemath.Vector
	Angle              float64 // degrees, [0, 360)
	Direction          Direction
	MaxSpeedMultiplier float64
}

// Stats are fixed at construction.
type Stats struct {
	MaxHP        float64
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	Drag         float64
	TurnRate     float64
	Driftiness   float64
}

// Shield is the shield state machine.
type Shield struct {
	Active          bool
	HP              float64
	MaxHP           float64
	Cooldown        float64
	CurrentCooldown float64
	Decay           float64
}

// Collision tracks wall contact.
type Collision struct {
	InCollision bool
	Cooldown    float64
}

// Spawn is everything NewTank needs.
type Spawn struct {
	PlayerNo int
	X, Y     float64
	Angle    float64
	Loadout  Loadout
	Rules    Rules
}

// Tank is one player's chassis.
type Tank struct {
	PlayerNo int
	Kinematics
	Stats     Stats
	HP        float64
	Shield    Shield
	Collision Collision

	Turret    *Turret
	HPBar     *HPBar
	ShieldBar *HPBar

	keys    PressedKeys
	rules   Rules
	session Session
	alive   bool
}

// NewTank builds a tank and registers its HP bar with the session.
func NewTank(s Spawn, session Session) *Tank {
	l := s.Loadout
	t := &Tank{
		PlayerNo: s.PlayerNo,
		Kinematics: Kinematics{
			X:                  s.X,
			Y:                  s.Y,
			Angle:              gamemath.WrapAngle(s.Angle),
			Direction:          Forward,
			MaxSpeedMultiplier: 1,
		},
		Stats: Stats{
			MaxHP:        l.Tank.HP,
			MaxSpeed:     l.Tank.MaxSpeed,
			Acceleration: l.Tank.Acceleration,
			Deceleration: l.Tank.Deceleration,
			Drag:         l.Tank.Drag,
			TurnRate:     l.Tank.TurnRate,
			Driftiness:   l.Tank.Driftiness,
		},
		HP: l.Tank.HP,
		Shield: Shield{
			HP:       l.Shield.HP,
			MaxHP:    l.Shield.HP,
			Cooldown: l.Shield.Cooldown,
			Decay:    l.Shield.Decay,
		},
		rules:   s.Rules,
		session: session,
		alive:   true,
	}
	t.HPBar = &HPBar{Owner: t, Kind: HealthBar, Max: t.Stats.MaxHP, Current: t.HP}
	t.ShieldBar = &HPBar{Owner: t, Kind: ShieldBar, Max: t.Shield.MaxHP, Current: t.Shield.HP}
	t.Turret = newTurret(t, l.Turret, l.Ammo, s.Rules.ProjectilesPerPlayer)
	session.AddHPBar(t.HPBar)
	return t
}

func (t *Tank) Alive() bool { return t.alive }

// Destroyed reports whether the tank ran out of hit points.
func (t *Tank) Destroyed() bool { return t.HP <= 0 }

// Keys returns the last input snapshot.
func (t *Tank) Keys() PressedKeys { return t.keys }

// HandleInput stores the keys held this tick. They are consumed by SimulateLocal.
func (t *Tank) HandleInput(keys PressedKeys) { t.keys = keys }

// State returns the fields other clients need to mirror this tank.
func (t *Tank) State() TankState {
	return TankState{
		X:            t.X,
		Y:            t.Y,
		Angle:        t.Angle,
		HP:           t.HP,
		TurretAngle:  t.Turret.Angle,
		ShieldActive: t.Shield.Active,
	}
}

// SimulateLocal runs one physics tick for the tank this client controls and
// sends the result to the server.
func (t *Tank) SimulateLocal(dt float64) {
	t.mustBeAlive()

	t.Collision.Cooldown -= dt
	if t.Shield.Active {
		t.OffsetShieldHP(-t.Shield.Decay * dt)
	} else {
		t.Shield.CurrentCooldown -= dt
	}

	t.applyInput(dt)

	if !t.Velocity.IsZero() {
		t.steer(dt)
		t.move(dt)
	}

	t.session.Network().SendTankState(t.State())
}

// ReconcileRemote mirrors a tank driven by another client. Only shield decay
// is advanced locally; everything else comes from the snapshot.
func (t *Tank) ReconcileRemote(s TankState, dt float64) {
	t.mustBeAlive()

	t.X, t.Y = s.X, s.Y
	t.Angle = gamemath.WrapAngle(s.Angle)
	t.HP = s.HP
	t.HPBar.Update(t.HP)
	t.Turret.SyncAngleFromNetwork(s.TurretAngle)

	if s.ShieldActive != t.Shield.Active {
		if s.ShieldActive {
			t.ActivateShield()
		} else {
			t.DeactivateShield()
		}
	}
	if t.Shield.Active {
		t.OffsetShieldHP(-t.Shield.Decay * dt)
	}
}

func (t *Tank) applyInput(dt float64) {
	k := t.keys
	moving := false
	if k[ActionForward] {
		if t.Direction == Forward || t.Velocity.IsZero() {
			t.ApplyAcceleration(t.Stats.Acceleration * dt)
		} else {
			t.ApplyDrag(t.Stats.Acceleration * dt)
		}
		moving = true
	}
	if k[ActionBackward] {
		if t.Direction == Backward || t.Velocity.IsZero() {
			t.ApplyAcceleration(-t.Stats.Deceleration * dt)
		} else {
			t.ApplyDrag(t.Stats.Deceleration * dt)
		}
		moving = true
	}
	if !moving {
		t.ApplyDrag(t.Stats.Drag * dt)
	}

	if k[ActionTurnLeft] {
		t.Rotate(t.Stats.TurnRate * dt)
	}
	if k[ActionTurnRight] {
		t.Rotate(-t.Stats.TurnRate * dt)
	}
	if k[ActionTurretLeft] {
		t.RotateTurret(dt)
	}
	if k[ActionTurretRight] {
		t.RotateTurret(-dt)
	}
	if k[ActionFire] {
		t.Turret.Shoot()
	}
	if k[ActionShield] && t.Shield.CurrentCooldown <= 0 {
		t.ActivateShield()
	}
}

func (t *Tank) maxSpeed() float64 {
	return t.Stats.MaxSpeed * t.MaxSpeedMultiplier
}

// steer bends the velocity towards the heading while keeping its magnitude.
// High driftiness at high speed lets the tank slide.
func (t *Tank) steer(dt float64) {
	speed := t.Velocity.Len()
	target := gamemath.Heading(t.Angle).Scale(speed)
	if t.Direction == Backward {
		target = target.Neg()
	}
	if t.Stats.Driftiness <= 0 {
		t.Velocity = target
		return
	}

	looseness := 1.0
	if m := t.maxSpeed(); m > 0 {
		frac := speed / m
		looseness = math.Min(t.Stats.Driftiness*frac*frac*frac, 1)
	}
	v := t.Velocity.Lerp(target, 1-math.Pow(looseness, dt))
	if v.IsZero() {
		t.Velocity = target
		return
	}
	t.Velocity = v.Normalize().Scale(speed)
}

// move displaces the tank one axis at a time so it can slide along walls.
func (t *Tank) move(dt float64) {
	tiles := t.session.Tiles()
	dx, dy := t.Velocity.X*dt, t.Velocity.Y*dt

	t.Collision.InCollision = false
	if t.passable(tiles, t.X+dx, t.Y) {
		t.X += dx
	} else {
		t.Collision.InCollision = true
		t.Velocity.X = 0
	}
	if t.passable(tiles, t.X, t.Y+dy) {
		t.Y += dy
	} else {
		t.Collision.InCollision = true
		t.Velocity.Y = 0
	}

	t.MaxSpeedMultiplier = tiles.TileAtScreen(t.X, t.Y).MoveSpeed
	if t.Collision.InCollision {
		t.MaxSpeedMultiplier *= t.rules.CollisionSpeedMultiplier
		if t.Collision.Cooldown <= 0 {
			t.Collision.Cooldown = t.rules.CollisionCooldown
			t.OffsetHP(-t.rules.CollisionDamage)
		}
	}
}

func (t *Tank) passable(tiles TileSource, x, y float64) bool {
	w, h := tiles.Bounds()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return !tiles.TileAtScreen(x, y).BlocksMovement
}

// ApplyAcceleration pushes the tank a along its heading. Leaving rest fixes
// the travel direction from the sign of a.
func (t *Tank) ApplyAcceleration(a float64) {
	if t.Velocity.IsZero() {
		if a > 0 {
			t.Direction = Forward
		} else {
			t.Direction = Backward
		}
	}
	t.Velocity = t.Velocity.Add(gamemath.Heading(t.Angle).Scale(a))
	t.Velocity = gamemath.ClampLength(t.Velocity, t.maxSpeed())
}

// ApplyDrag shrinks the speed by d. A component that would change sign stops
// the tank instead.
func (t *Tank) ApplyDrag(d float64) {
	if t.Velocity.IsZero() {
		return
	}
	before := t.Velocity
	t.Velocity = before.Sub(before.Normalize().Scale(d))
	if before.X*t.Velocity.X < 0 || before.Y*t.Velocity.Y < 0 {
		t.Velocity = gamemath.Vector{}
	}
}

// Rotate turns the chassis by deg degrees.
func (t *Tank) Rotate(deg float64) {
	t.Angle = gamemath.WrapAngle(t.Angle + deg)
	t.Turret.refreshAbsolute()
}

// RotateTurret turns the turret in the given direction.
func (t *Tank) RotateTurret(direction float64) {
	t.Turret.Rotate(direction)
}

// OffsetHP changes hit points. Active shields absorb everything.
func (t *Tank) OffsetHP(v float64) {
	if t.Shield.Active {
		return
	}
	t.HP += v
	t.HPBar.Update(t.HP)
}

// OffsetShieldHP changes shield hit points and drops the shield once they
// are used up.
func (t *Tank) OffsetShieldHP(v float64) {
	t.Shield.HP += v
	if t.Shield.HP <= 0 {
		t.DeactivateShield()
		return
	}
	t.ShieldBar.Update(t.Shield.HP)
}

// ActivateShield raises a fully charged shield.
func (t *Tank) ActivateShield() {
	if t.Shield.Active {
		return
	}
	t.Shield.Active = true
	t.Shield.CurrentCooldown = t.Shield.Cooldown
	t.Shield.HP = t.Shield.MaxHP
	t.ShieldBar.Update(t.Shield.HP)
	t.session.AddHPBar(t.ShieldBar)
}

// DeactivateShield drops the shield and restarts its cooldown.
func (t *Tank) DeactivateShield() {
	if !t.Shield.Active {
		return
	}
	t.Shield.Active = false
	t.Shield.CurrentCooldown = t.Shield.Cooldown
	t.session.RemoveHPBar(t.ShieldBar)
}

// Kill removes the tank together with its turret and bars. Killing a tank
// twice is a bug in the caller.
func (t *Tank) Kill() {
	t.mustBeAlive()
	t.alive = false
	if t.Shield.Active {
		t.session.RemoveHPBar(t.ShieldBar)
	}
	t.session.RemoveHPBar(t.HPBar)
	t.Turret.kill()
}

func (t *Tank) mustBeAlive() {
	if !t.alive {
		panic(fmt.Sprintf("combat: tank %d used after Kill", t.PlayerNo))
	}
}
