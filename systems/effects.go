package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/components"
	"github.com/distracted-programming/tanks/systems/factory"
	"github.com/distracted-programming/tanks/tags"
)

const flashFrames = 12

// NewEffectsSystem advances the shield pulse, the damage flash and the HP bar
// drain animations.
func NewEffectsSystem(s *Session) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		dt := float32(s.Dt())

		tags.Tank.Each(e.World, func(entry *donburi.Entry) {
			t := components.Tank.Get(entry).Tank
			updateShieldFX(components.ShieldFX.Get(entry), t.Shield.Active, dt)

			flash := components.Flash.Get(entry)
			if t.HP < flash.LastHP {
				flash.Duration = flashFrames
			} else if flash.Duration > 0 {
				flash.Duration--
			}
			flash.LastHP = t.HP
		})

		tags.HPBar.Each(e.World, func(entry *donburi.Entry) {
			updateBar(components.HPBar.Get(entry), dt)
		})
	}
}

func updateShieldFX(fx *components.ShieldFXData, active bool, dt float32) {
	if !active {
		fx.Alpha = factory.ShieldPulseMin
		return
	}
	alpha, finished := fx.Pulse.Update(dt)
	fx.Alpha = alpha
	if finished {
		fx.Rising = !fx.Rising
		fx.Pulse = factory.NewShieldPulse(fx.Rising)
	}
}

func updateBar(b *components.HPBarData, dt float32) {
	target := b.Bar.Fraction()
	if target != b.Target {
		b.Target = target
		b.Tween = factory.NewBarTween(b.Shown, target)
	}
	if b.Tween == nil {
		b.Shown = target
		return
	}
	shown, finished := b.Tween.Update(dt)
	b.Shown = float64(shown)
	if finished {
		b.Shown = b.Target
		b.Tween = nil
	}
}
