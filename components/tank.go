package components

import (
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/combat"
)

// TankData links a battle entity to its simulated tank.
type TankData struct {
	Tank    *combat.Tank
	Name    string
	Loadout string
	Local   bool

	// Remote is the last state received for a tank another client drives.
	Remote    combat.TankState
	HasRemote bool
}

var Tank = donburi.NewComponentType[TankData]()
