package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShieldFXData pulses the shield bubble drawn around a shielded tank.
type ShieldFXData struct {
	Pulse  *gween.Tween
	Rising bool
	Alpha  float32 // 0..1 multiplier on the ring colour
}

var ShieldFX = donburi.NewComponentType[ShieldFXData]()

// FlashData tints a tank for a few frames after it loses hit points.
type FlashData struct {
	Duration int     // frames remaining
	LastHP   float64 // hit points seen last frame
}

var Flash = donburi.NewComponentType[FlashData]()
