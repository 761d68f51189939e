package systems

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/messages"
	"github.com/distracted-programming/tanks/shared/netcomponents"
)

// NetEvents is what the battle drains from the connection once per tick.
type NetEvents interface {
	LatestSnapshot() *esync.WorldSnapshot
	DrainProjectileAdds() []messages.ProjectileAdd
	DrainProjectileRemoves() []messages.ProjectileRemove
	DrainPlayersLeft() []messages.PlayerLeft
}

// NewNetSyncSystem applies everything the server sent since the last tick.
// It runs first so remote tanks are reconciled against fresh state.
// A remote tank missing from a snapshot is removed.
func NewNetSyncSystem(s *Session, events NetEvents) func(*ecs.ECS) {
	present := make(map[int]bool)
	log := logging.For("netsync")

	return func(e *ecs.ECS) {
		if snap := events.LatestSnapshot(); snap != nil {
			clear(present)
			for _, ent := range *snap {
				for _, componentBytes := range ent.State {
					instance, err := esync.Mapper.Deserialize(componentBytes)
					if err != nil {
						log.Debug().Err(err).Msg("skipping undecodable component")
						continue
					}
					if n, ok := instance.(netcomponents.NetTankData); ok {
						present[n.PlayerNo] = true
						s.ApplyRemoteTank(n)
					}
				}
			}
			for _, playerNo := range s.Players() {
				if playerNo != s.LocalPlayer() && !present[playerNo] {
					s.DestroyTank(playerNo)
				}
			}
		}

		for _, evt := range events.DrainProjectileAdds() {
			s.ApplyProjectileAdd(evt)
		}
		for _, evt := range events.DrainProjectileRemoves() {
			s.ApplyProjectileRemove(evt)
		}
		for _, evt := range events.DrainPlayersLeft() {
			log.Info().Int("player", evt.PlayerNo).Msg("player left")
			s.ApplyPlayerLeft(evt)
		}
	}
}
