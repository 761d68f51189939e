package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/systems/factory"
)

// NewTankSystem ticks every tank in player order. Turrets update first so a
// shot fired this tick sees the refreshed cooldown. The local tank is
// simulated from input; remote tanks are reconciled from their last
// snapshot. Destroyed tanks are removed and the local one respawns after
// cfg.Game.Respawn seconds.
func NewTankSystem(s *Session) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		dt := s.Dt()
		input := getOrCreateInput(e)
		battle := getBattle(e)

		var dead []int
		for _, playerNo := range s.Players() {
			entry, _ := s.TankEntry(playerNo)
			td := components.Tank.Get(entry)
			t := td.Tank

			t.Turret.Update(dt)
			switch {
			case td.Local:
				if t.Destroyed() {
					dead = append(dead, playerNo)
					continue
				}
				t.HandleInput(input.Current)
				t.SimulateLocal(dt)
			case td.HasRemote:
				t.ReconcileRemote(td.Remote, dt)
				if t.Destroyed() {
					dead = append(dead, playerNo)
					continue
				}
			}
			factory.SyncTankObject(entry)
		}

		for _, playerNo := range dead {
			if playerNo == s.LocalPlayer() {
				if t, ok := s.LocalTank(); ok {
					// the last state carries hp <= 0 so the others remove the tank too
					s.net.SendTankState(t.State())
				}
				if battle != nil {
					battle.Deaths++
					battle.RespawnIn = cfg.Game.Respawn
				}
				s.log.Info().Int("player", playerNo).Msg("local tank destroyed")
			}
			s.DestroyTank(playerNo)
		}

		if battle == nil || battle.RespawnIn <= 0 {
			return
		}
		battle.RespawnIn -= dt
		if battle.RespawnIn <= 0 {
			battle.RespawnIn = 0
			if _, err := s.SpawnLocalTank(); err != nil {
				s.log.Error().Err(err).Msg("respawn failed")
			}
		}
	}
}

func getBattle(e *ecs.ECS) *components.BattleData {
	entry, ok := components.Battle.First(e.World)
	if !ok {
		return nil
	}
	return components.Battle.Get(entry)
}
