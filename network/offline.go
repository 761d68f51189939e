package network

import "github.com/distracted-programming/tanks/combat"

// Offline drops every outbound message. It backs practice matches that run
// without a server.
type Offline struct{}

func (Offline) SendTankState(combat.TankState)                                   {}
func (Offline) SendProjectileAdd(combat.ProjectileID, float64, float64, float64) {}
func (Offline) SendProjectileRemove(combat.ProjectileID)                         {}
