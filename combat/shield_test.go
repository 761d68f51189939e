package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShieldAbsorbsDamage(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.ActivateShield()

	tank.OffsetHP(-40)

	assert.Equal(t, 100.0, tank.HP)
}

func TestShieldBreaks(t *testing.T) {
	tank, sess := newTestTank(0, 400, 300, openField())
	tank.ActivateShield()
	tank.Shield.CurrentCooldown = 0

	tank.OffsetShieldHP(-60)

	assert.False(t, tank.Shield.Active)
	assert.Equal(t, 5.0, tank.Shield.CurrentCooldown)
	assert.False(t, sess.bars[tank.ShieldBar])

	tank.OffsetHP(-10)
	assert.Equal(t, 90.0, tank.HP)
}

func TestShieldRechargesFully(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.ActivateShield()
	tank.OffsetShieldHP(-30)
	tank.DeactivateShield()

	tank.ActivateShield()

	assert.Equal(t, 50.0, tank.Shield.HP)
	assert.Equal(t, 50.0, tank.ShieldBar.Current)
}

func TestShieldDecaysWhileActive(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.HandleInput(keys(ActionShield))
	tank.SimulateLocal(0.1)
	assert.True(t, tank.Shield.Active)
	assert.Equal(t, 50.0, tank.Shield.HP)

	tank.HandleInput(PressedKeys{})
	for range 10 {
		tank.SimulateLocal(0.5)
	}
	assert.False(t, tank.Shield.Active, "decay of 10/s empties a 50 hp shield in 5s")
}

func TestShieldCooldownGatesActivation(t *testing.T) {
	tank, _ := newTestTank(0, 400, 300, openField())
	tank.ActivateShield()
	tank.DeactivateShield()

	tank.HandleInput(keys(ActionShield))
	tank.SimulateLocal(1)
	assert.False(t, tank.Shield.Active)
	assert.Equal(t, 4.0, tank.Shield.CurrentCooldown)

	for range 4 {
		tank.SimulateLocal(1)
	}
	assert.True(t, tank.Shield.Active)
}

func TestShieldActivationIsIdempotent(t *testing.T) {
	tank, sess := newTestTank(0, 400, 300, openField())
	tank.ActivateShield()
	tank.OffsetShieldHP(-20)

	tank.ActivateShield()

	assert.Equal(t, 30.0, tank.Shield.HP)
	assert.Len(t, sess.bars, 2)
}
