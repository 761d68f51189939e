package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distracted-programming/tanks/shared/gamemath"
	"github.com/distracted-programming/tanks/shared/netconfig"
)

func TestTurretClampsLimitedRotation(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())

	for range 10 {
		tank.RotateTurret(1)
	}
	assert.Equal(t, 30.0, tank.Turret.Angle)

	for range 10 {
		tank.RotateTurret(-1)
	}
	assert.Equal(t, -30.0, tank.Turret.Angle)
}

func TestTurretFullRotationWraps(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.Turret.Profile.FullRotation = true

	for range 9 {
		tank.RotateTurret(1)
	}
	assert.InDelta(t, 45, tank.Turret.Angle, 1e-9)
}

func TestAbsoluteAngleFollowsChassis(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.RotateTurret(0.5)
	tank.Rotate(10)

	tank.Turret.Update(0)

	assert.InDelta(t, 32.5, tank.Turret.AbsoluteAngle, 1e-9)
}

func TestShootIsCooldownGated(t *testing.T) {
	tank, sess := newTestTank(0, 400, 300, openField())
	tank.Turret.random = func() float64 { return 0.5 }

	first := tank.Turret.Shoot()
	require.Len(t, first, 1)
	assert.Empty(t, tank.Turret.Shoot(), "cooldown not elapsed")

	tank.Turret.Update(0.5)
	assert.Len(t, tank.Turret.Shoot(), 1)

	assert.Len(t, sess.projectiles, 2)
	assert.Len(t, sess.net.projectiles, 2)
}

func TestShootAnnouncesProjectile(t *testing.T) {
	tank, sess := newTestTank(2, 120, 80, openField())
	tank.Turret.random = func() float64 { return 0.5 }
	tank.Rotate(90)
	tank.RotateTurret(-0.5)

	shots := tank.Turret.Shoot()

	require.Len(t, shots, 1)
	p := shots[0]
	lo, _ := netconfig.ProjectileRange(2)
	assert.Equal(t, ProjectileID(lo), p.ID)
	assert.Equal(t, 120.0, p.X)
	assert.Equal(t, 80.0, p.Y)
	assert.InDelta(t, 67.5, p.Angle, 1e-9)
	assert.Same(t, tank, p.Owner)
	assert.Equal(t, []sentProjectile{{p.ID, 120, 80, p.Angle}}, sess.net.projectiles)
}

func TestShootJitterBoundedByInaccuracy(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.Turret.Profile.Inaccuracy = 5
	tank.Turret.Profile.Cooldown = 0
	tank.Rotate(180)

	for _, r := range []float64{0, 0.25, 0.5, 0.999} {
		tank.Turret.random = func() float64 { return r }
		shots := tank.Turret.Shoot()
		require.Len(t, shots, 1)
		assert.InDelta(t, 180, shots[0].Angle, 5)
	}
}

func TestMuzzleOffsetsRoundRobin(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.Turret.random = func() float64 { return 0.5 }
	tank.Turret.Profile.ProjectilesPerShot = 3
	tank.Turret.Profile.ProjectileOffsets = []MuzzleOffset{{Angle: 10}, {Angle: 350}}
	tank.Rotate(180)

	shots := tank.Turret.Shoot()

	require.Len(t, shots, 3)
	for _, p := range shots {
		assert.InDelta(t, 180, p.Angle, 1e-9)
	}
	assert.Equal(t, 1, tank.Turret.offsetIndex)
}

func TestMuzzleOffsetsKeepSpreadWithinInaccuracy(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.Turret.Profile.Cooldown = 0
	tank.Turret.Profile.Inaccuracy = 6
	tank.Turret.Profile.ProjectilesPerShot = 3
	tank.Turret.Profile.ProjectileOffsets = []MuzzleOffset{{Angle: -10}, {Angle: 0}, {Angle: 10}}

	for _, r := range []float64{0, 0.5, 0.999} {
		tank.Turret.random = func() float64 { return r }
		shots := tank.Turret.Shoot()
		require.Len(t, shots, 3)
		for _, p := range shots {
			dev := math.Abs(gamemath.WrapAngle(p.Angle-tank.Turret.AbsoluteAngle+180) - 180)
			assert.LessOrEqual(t, dev, 6.0, "shell %d at %.2f", p.ID, p.Angle)
			tank.Turret.DeleteProjectile(p.ID)
		}
	}
}

func TestProjectileIDsStayInRange(t *testing.T) {
	for player := range netconfig.MaxPlayers {
		tank, _ := newTestTank(player, 400, 300, openField())
		tank.Turret.Profile.Cooldown = 0
		lo, hi := netconfig.ProjectileRange(player)

		for range 3 * netconfig.MaxProjectilesPerPlayer {
			for _, p := range tank.Turret.Shoot() {
				assert.GreaterOrEqual(t, int(p.ID), lo)
				assert.Less(t, int(p.ID), hi)
				assert.Equal(t, player, OwnerOf(p.ID))
				tank.Turret.DeleteProjectile(p.ID)
			}
		}
	}
}

func TestProjectileIDsWrap(t *testing.T) {
	tank, _ := newTestTank(1, 400, 300, openField())
	tank.Turret.Profile.Cooldown = 0
	lo, _ := netconfig.ProjectileRange(1)

	var ids []ProjectileID
	for range netconfig.MaxProjectilesPerPlayer + 1 {
		p := tank.Turret.Shoot()[0]
		ids = append(ids, p.ID)
		tank.Turret.DeleteProjectile(p.ID)
	}

	assert.Equal(t, ProjectileID(lo), ids[0])
	assert.Equal(t, ProjectileID(lo+1), ids[1])
	assert.Equal(t, ProjectileID(lo), ids[netconfig.MaxProjectilesPerPlayer])
}

func TestLiveIDsAreSkipped(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.Turret.Profile.Cooldown = 0

	first := tank.Turret.Shoot()[0]
	for range netconfig.MaxProjectilesPerPlayer - 1 {
		p := tank.Turret.Shoot()[0]
		tank.Turret.DeleteProjectile(p.ID)
	}

	// the sequence wraps onto the first id, which is still in flight
	next := tank.Turret.Shoot()[0]
	assert.NotEqual(t, first.ID, next.ID)
	assert.Equal(t, first.ID+1, next.ID)
}

func TestShootRefusedWhenRangeExhausted(t *testing.T) {
	tank, sess := newTestTank(0, 400, 300, openField())
	tank.Turret.Profile.Cooldown = 0

	for range netconfig.MaxProjectilesPerPlayer {
		require.Len(t, tank.Turret.Shoot(), 1)
	}
	assert.Empty(t, tank.Turret.Shoot())
	assert.Len(t, sess.net.projectiles, netconfig.MaxProjectilesPerPlayer)
}

func TestAssignIDFromServer(t *testing.T) {
	tank, sess := newTestTank(1, 400, 300, openField())

	p := tank.Turret.AssignIDFromServer(70, 10, 20, 45)

	assert.Equal(t, ProjectileID(70), p.ID)
	assert.Same(t, tank.Turret, p.Turret)
	got, ok := tank.Turret.Projectile(70)
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Len(t, sess.projectiles, 1)
	assert.Empty(t, sess.net.projectiles, "remote projectiles are not re-announced")

	again := tank.Turret.AssignIDFromServer(70, 11, 21, 45)
	assert.Same(t, p, again)
	assert.Equal(t, 11.0, p.X)
	assert.Len(t, sess.projectiles, 1)
}

func TestDeleteAndUpdateProjectile(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	p := tank.Turret.Shoot()[0]

	assert.True(t, tank.Turret.UpdateProjectile(p.ID, 5, 6))
	assert.Equal(t, 5.0, p.X)
	assert.Equal(t, 6.0, p.Y)

	assert.True(t, tank.Turret.DeleteProjectile(p.ID))
	assert.False(t, tank.Turret.DeleteProjectile(p.ID))
	assert.False(t, tank.Turret.UpdateProjectile(p.ID, 1, 1))
	assert.Empty(t, tank.Turret.Projectiles())
}

func TestFireKeyShootsThroughSimulate(t *testing.T) {
	tank, sess := newTestTank(0, 400, 300, openField())

	tank.Turret.Update(1.0 / 60)
	tank.HandleInput(keys(ActionFire))
	tank.SimulateLocal(1.0 / 60)

	assert.Len(t, sess.net.projectiles, 1)
	assert.Len(t, tank.Turret.Projectiles(), 1)
}
