package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shield bubble alpha swings between these bounds.
const (
	ShieldPulseMin      = 0.35
	ShieldPulseMax      = 1.0
	shieldPulseDuration = 0.6 // seconds per half cycle
)

// NewShieldPulse returns one half of the shield bubble's pulse.
func NewShieldPulse(rising bool) *gween.Tween {
	if rising {
		return gween.New(ShieldPulseMin, ShieldPulseMax, shieldPulseDuration, ease.InOutSine)
	}
	return gween.New(ShieldPulseMax, ShieldPulseMin, shieldPulseDuration, ease.InOutSine)
}

// NewBarTween eases a bar from one fill fraction to another.
func NewBarTween(from, to float64) *gween.Tween {
	return gween.New(float32(from), float32(to), 0.25, ease.OutQuad)
}
