package config

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/distracted-programming/tanks/combat"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[combat.Action]InputBinding
	AnalogDeadzone float64
}

// EditorKeys are the map editor's single-press commands.
type EditorKeys struct {
	ToggleX     ebiten.Key
	ToggleY     ebiten.Key
	TogglePoint ebiten.Key
	CycleTile   ebiten.Key
	ToggleSpawn ebiten.Key
	RotateSpawn ebiten.Key
	Save        ebiten.Key
	Load        ebiten.Key
	Quit        ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

// EditorInput is the editor key map.
var EditorInput EditorKeys

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.3,
		Bindings: map[combat.Action]InputBinding{
			combat.ActionForward: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			combat.ActionBackward: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			combat.ActionTurnLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			combat.ActionTurnRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			combat.ActionTurretLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			combat.ActionTurretRight: {
				Keys: []ebiten.Key{ebiten.KeyE},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			combat.ActionFire: {
				Keys: []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			combat.ActionShield: {
				Keys: []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}

	EditorInput = EditorKeys{
		ToggleX:     ebiten.KeyX,
		ToggleY:     ebiten.KeyY,
		TogglePoint: ebiten.KeyP,
		CycleTile:   ebiten.KeyC,
		ToggleSpawn: ebiten.KeyT,
		RotateSpawn: ebiten.KeyR,
		Save:        ebiten.KeyS,
		Load:        ebiten.KeyL,
		Quit:        ebiten.KeyEscape,
	}
}
