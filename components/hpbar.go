package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/combat"
)

// HPBarData is the drawn state of a health or shield bar. Shown eases towards
// Bar.Fraction() so hits read as a drain rather than a jump.
type HPBarData struct {
	Bar    *combat.HPBar
	Shown  float64
	Target float64
	Tween  *gween.Tween
}

var HPBar = donburi.NewComponentType[HPBarData]()
