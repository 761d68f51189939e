package components

import (
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/combat"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  combat.PressedKeys
	Previous combat.PressedKeys
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a combat.Action) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
