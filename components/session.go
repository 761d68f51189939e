package components

import "github.com/yohamta/donburi"

// BattleData is the scoreboard and status shown on the battle HUD.
type BattleData struct {
	LocalPlayer int
	Connection  string
	Deaths      int
	RespawnIn   float64 // seconds, > 0 while the local tank is destroyed
	Offline     bool
}

var Battle = donburi.NewComponentType[BattleData]()
