package netcomponents

import "github.com/yohamta/donburi"

// NetTankData is the server-held copy of a player's tank, synced to every
// client through esync snapshots.
type NetTankData struct {
	PlayerNo     int
	Name         string
	Loadout      string
	X, Y         float64
	Angle        float64
	HP           float64
	TurretAngle  float64
	ShieldActive bool
}

var NetTank = donburi.NewComponentType[NetTankData]()

// LerpNetTank interpolates position between two snapshots. Angles and discrete
// state are taken from the newer snapshot.
func LerpNetTank(from, to NetTankData, t float64) *NetTankData {
	return &NetTankData{
		PlayerNo:     to.PlayerNo,
		Name:         to.Name,
		Loadout:      to.Loadout,
		X:            from.X + (to.X-from.X)*t,
		Y:            from.Y + (to.Y-from.Y)*t,
		Angle:        to.Angle,
		HP:           to.HP,
		TurretAngle:  to.TurretAngle,
		ShieldActive: to.ShieldActive,
	}
}
