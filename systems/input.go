package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input component.
// Must run before the tank system.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = combat.PressedKeys{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[action] = true
				}
			}
		}
	}

	mergeAnalogStick(&input.Current, gamepadIDs)
}

// mergeAnalogStick maps the left stick onto driving and the right stick's
// horizontal axis onto the turret.
func mergeAnalogStick(keys *combat.PressedKeys, gamepads []ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		turret := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)

		if horizontal < -deadzone {
			keys[combat.ActionTurnLeft] = true
		}
		if horizontal > deadzone {
			keys[combat.ActionTurnRight] = true
		}
		if vertical < -deadzone {
			keys[combat.ActionForward] = true
		}
		if vertical > deadzone {
			keys[combat.ActionBackward] = true
		}
		if turret < -deadzone {
			keys[combat.ActionTurretLeft] = true
		}
		if turret > deadzone {
			keys[combat.ActionTurretRight] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
