package combat

// Action is one thing a player can ask their tank to do.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionTurretLeft
	ActionTurretRight
	ActionFire
	ActionShield
	ActionCount
)

var actionNames = [ActionCount]string{
	"forward", "backward", "turn_left", "turn_right",
	"turret_left", "turret_right", "fire", "shield",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a config key back to an Action.
func ActionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// PressedKeys is the set of actions held during one tick.
type PressedKeys [ActionCount]bool

// Any reports whether at least one action is held.
func (k PressedKeys) Any() bool {
	for _, p := range k {
		if p {
			return true
		}
	}
	return false
}
