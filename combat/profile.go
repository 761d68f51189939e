package combat

import (
	"errors"
	"fmt"

	"github.com/distracted-programming/tanks/shared/netconfig"
)

// TankProfile is the chassis attribute bundle of a tank resource.
type TankProfile struct {
	Name         string  `mapstructure:"name"`
	HP           float64 `mapstructure:"hp"`
	MaxSpeed     float64 `mapstructure:"max_speed"`
	Acceleration float64 `mapstructure:"acceleration"`
	Deceleration float64 `mapstructure:"deceleration"`
	Drag         float64 `mapstructure:"drag"`
	TurnRate     float64 `mapstructure:"turn_rate"`
	Driftiness   float64 `mapstructure:"driftiness"`
	Turret       string  `mapstructure:"turret"`
	Shield       string  `mapstructure:"shield"`
}

// MuzzleOffset is a firing point relative to the turret pivot.
type MuzzleOffset struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
}

// TurretProfile is the attribute bundle of a turret resource.
type TurretProfile struct {
	Name               string         `mapstructure:"name"`
	RotationSpeed      float64        `mapstructure:"rotation_speed"`
	FullRotation       bool           `mapstructure:"full_rotation"`
	MaxLeftAngle       float64        `mapstructure:"max_left_angle"`
	MaxRightAngle      float64        `mapstructure:"max_right_angle"`
	Cooldown           float64        `mapstructure:"cooldown"`
	ProjectileOffsets  []MuzzleOffset `mapstructure:"projectile_offsets"`
	ProjectilesPerShot int            `mapstructure:"projectiles_per_shot"`
	Inaccuracy         float64        `mapstructure:"inaccuracy"`
	Ammo               string         `mapstructure:"ammo"`
}

// AmmoProfile is the attribute bundle of an ammo resource.
type AmmoProfile struct {
	Name     string  `mapstructure:"name"`
	Speed    float64 `mapstructure:"speed"` // px/s
	Damage   float64 `mapstructure:"damage"`
	Radius   float64 `mapstructure:"radius"`
	Lifetime float64 `mapstructure:"lifetime"` // seconds, 0 = until it leaves the field
}

// ShieldProfile is the attribute bundle of a shield resource.
type ShieldProfile struct {
	Name     string  `mapstructure:"name"`
	HP       float64 `mapstructure:"hp"`
	Cooldown float64 `mapstructure:"cooldown"`
	Decay    float64 `mapstructure:"decay"` // shield hp lost per second while active
}

// Loadout is everything needed to build one tank.
type Loadout struct {
	Tank   TankProfile
	Turret TurretProfile
	Ammo   AmmoProfile
	Shield ShieldProfile
}

// Validate rejects attribute bundles the simulation cannot run with. It is
// meant to be called once at startup.
func (l Loadout) Validate() error {
	var errs []error
	if l.Tank.HP <= 0 {
		errs = append(errs, fmt.Errorf("tank %q: hp must be positive", l.Tank.Name))
	}
	if l.Tank.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("tank %q: max_speed must be positive", l.Tank.Name))
	}
	if l.Tank.Acceleration < 0 || l.Tank.Deceleration < 0 || l.Tank.Drag < 0 {
		errs = append(errs, fmt.Errorf("tank %q: acceleration, deceleration and drag must not be negative", l.Tank.Name))
	}
	if l.Tank.Driftiness < 0 {
		errs = append(errs, fmt.Errorf("tank %q: driftiness must not be negative", l.Tank.Name))
	}
	if l.Turret.ProjectilesPerShot < 1 {
		errs = append(errs, fmt.Errorf("turret %q: projectiles_per_shot must be at least 1", l.Turret.Name))
	}
	if l.Turret.ProjectilesPerShot > netconfig.MaxProjectilesPerPlayer {
		errs = append(errs, fmt.Errorf("turret %q: projectiles_per_shot exceeds the per-player id range", l.Turret.Name))
	}
	if l.Turret.MaxLeftAngle < 0 || l.Turret.MaxRightAngle < 0 {
		errs = append(errs, fmt.Errorf("turret %q: max angles must not be negative", l.Turret.Name))
	}
	if l.Ammo.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ammo %q: speed must be positive", l.Ammo.Name))
	}
	if l.Shield.HP <= 0 {
		errs = append(errs, fmt.Errorf("shield %q: hp must be positive", l.Shield.Name))
	}
	return errors.Join(errs...)
}

// Rules are the match-wide constants the tank simulation reads.
type Rules struct {
	CollisionSpeedMultiplier float64 // max speed factor while pushing against a wall
	CollisionCooldown        float64 // seconds between two collision damage ticks
	CollisionDamage          float64
	ProjectilesPerPlayer     int // size of each player's projectile id range
}

// DefaultRules returns the rules used when the configuration does not override them.
func DefaultRules() Rules {
	return Rules{
		CollisionSpeedMultiplier: 0.5,
		CollisionCooldown:        1.0,
		CollisionDamage:          5,
		ProjectilesPerPlayer:     netconfig.MaxProjectilesPerPlayer,
	}
}
