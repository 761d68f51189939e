package systems

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/messages"
	"github.com/distracted-programming/tanks/shared/netcomponents"
	"github.com/distracted-programming/tanks/systems/factory"
)

// Outbound is everything a battle tells the other clients.
type Outbound interface {
	combat.Network
	SendProjectileRemove(id combat.ProjectileID)
}

// LoadoutSource resolves a loadout by tank name.
type LoadoutSource func(name string) (combat.Loadout, error)

// Session is the battle's entity registry. It implements combat.Session so
// tanks and turrets register projectiles and HP bars as ECS entities, and it
// maps player numbers and projectile ids to their entries.
type Session struct {
	ecs      *ecs.ECS
	board    *board.Board
	spawns   []board.SpawnPoint
	net      Outbound
	loadouts LoadoutSource
	rules    combat.Rules

	localPlayer  int
	localName    string
	localLoadout string
	dt           float64

	tanks       map[int]*donburi.Entry
	projectiles map[combat.ProjectileID]*donburi.Entry
	bars        map[*combat.HPBar]*donburi.Entry

	log zerolog.Logger
}

// SessionConfig collects what NewSession needs.
type SessionConfig struct {
	Board        *board.Board
	Spawns       []board.SpawnPoint
	Net          Outbound
	Loadouts     LoadoutSource
	Rules        combat.Rules
	LocalPlayer  int
	LocalName    string
	LocalLoadout string
	TPS          int
}

func NewSession(e *ecs.ECS, c SessionConfig) *Session {
	tps := c.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Session{
		ecs:          e,
		board:        c.Board,
		spawns:       c.Spawns,
		net:          c.Net,
		loadouts:     c.Loadouts,
		rules:        c.Rules,
		localPlayer:  c.LocalPlayer,
		localName:    c.LocalName,
		localLoadout: c.LocalLoadout,
		dt:           1 / float64(tps),
		tanks:        make(map[int]*donburi.Entry),
		projectiles:  make(map[combat.ProjectileID]*donburi.Entry),
		bars:         make(map[*combat.HPBar]*donburi.Entry),
		log:          logging.For("session"),
	}
}

// AddProjectile creates the entity for a projectile a turret just registered.
func (s *Session) AddProjectile(p *combat.Projectile) {
	if _, ok := s.projectiles[p.ID]; ok {
		return
	}
	s.projectiles[p.ID] = factory.CreateProjectile(s.ecs, p)
}

// AddHPBar shows a bar, creating its entity the first time.
func (s *Session) AddHPBar(b *combat.HPBar) {
	if entry, ok := s.bars[b]; ok {
		components.Visibility.Get(entry).Visible = true
		return
	}
	s.bars[b] = factory.CreateHPBar(s.ecs, b)
}

// RemoveHPBar hides a bar. Bars of a killed tank are destroyed.
func (s *Session) RemoveHPBar(b *combat.HPBar) {
	entry, ok := s.bars[b]
	if !ok {
		return
	}
	if b.Owner != nil && b.Owner.Alive() {
		components.Visibility.Get(entry).Visible = false
		return
	}
	delete(s.bars, b)
	s.ecs.World.Remove(entry.Entity())
}

func (s *Session) Network() combat.Network { return s.net }

func (s *Session) Tiles() combat.TileSource { return s.board }

// Dt is the fixed tick length in seconds.
func (s *Session) Dt() float64 { return s.dt }

func (s *Session) LocalPlayer() int { return s.localPlayer }

func (s *Session) Board() *board.Board { return s.board }

// SpawnPoint returns the pixel position and heading a player starts at.
// Players beyond the map's spawn list reuse them round-robin; a map without
// spawn points starts everyone in the middle.
func (s *Session) SpawnPoint(playerNo int) (x, y, angle float64) {
	if len(s.spawns) == 0 {
		w, h := s.board.Bounds()
		return w / 2, h / 2, 0
	}
	sp := s.spawns[playerNo%len(s.spawns)]
	x, y = s.board.CellCenter(sp.X, sp.Y)
	return x, y, sp.Angle
}

// SpawnTank creates a tank and its entity. A player may only have one tank.
func (s *Session) SpawnTank(playerNo int, name, loadoutName string, x, y, angle float64) (*donburi.Entry, error) {
	if _, ok := s.tanks[playerNo]; ok {
		return nil, fmt.Errorf("player %d already has a tank", playerNo)
	}
	loadout, err := s.loadouts(loadoutName)
	if err != nil {
		return nil, fmt.Errorf("loadout %q: %w", loadoutName, err)
	}
	t := combat.NewTank(combat.Spawn{
		PlayerNo: playerNo,
		X:        x,
		Y:        y,
		Angle:    angle,
		Loadout:  loadout,
		Rules:    s.rules,
	}, s)
	local := playerNo == s.localPlayer
	entry := factory.CreateTank(s.ecs, t, name, loadoutName, local)
	s.tanks[playerNo] = entry

	s.log.Debug().
		Int("player", playerNo).
		Str("loadout", loadoutName).
		Bool("local", local).
		Msg("tank spawned")
	return entry, nil
}

// SpawnLocalTank places the local player's tank at its spawn point.
func (s *Session) SpawnLocalTank() (*donburi.Entry, error) {
	x, y, angle := s.SpawnPoint(s.localPlayer)
	return s.SpawnTank(s.localPlayer, s.localName, s.localLoadout, x, y, angle)
}

// TankEntry looks up a player's tank.
func (s *Session) TankEntry(playerNo int) (*donburi.Entry, bool) {
	e, ok := s.tanks[playerNo]
	return e, ok
}

// LocalTank returns the tank this client drives, if it is alive.
func (s *Session) LocalTank() (*combat.Tank, bool) {
	e, ok := s.tanks[s.localPlayer]
	if !ok {
		return nil, false
	}
	return components.Tank.Get(e).Tank, true
}

// Players returns the player numbers that currently have a tank, sorted.
func (s *Session) Players() []int {
	out := make([]int, 0, len(s.tanks))
	for p := range s.tanks {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// DestroyTank kills a player's tank and removes it together with its
// projectiles. It is a no-op for players without a tank.
func (s *Session) DestroyTank(playerNo int) {
	entry, ok := s.tanks[playerNo]
	if !ok {
		return
	}
	t := components.Tank.Get(entry).Tank
	for _, p := range t.Turret.Projectiles() {
		s.RemoveProjectile(p.ID, false)
	}
	if t.Alive() {
		t.Kill()
	}
	s.RemoveHPBar(t.ShieldBar)
	factory.RemoveObject(s.ecs, entry)
	s.ecs.World.Remove(entry.Entity())
	delete(s.tanks, playerNo)

	s.log.Debug().Int("player", playerNo).Msg("tank destroyed")
}

// ProjectileEntry looks up a live projectile.
func (s *Session) ProjectileEntry(id combat.ProjectileID) (*donburi.Entry, bool) {
	e, ok := s.projectiles[id]
	return e, ok
}

// ProjectileCount returns the number of live projectiles.
func (s *Session) ProjectileCount() int { return len(s.projectiles) }

// RemoveProjectile deletes a projectile from its turret and the world.
// announce tells the other clients about it.
func (s *Session) RemoveProjectile(id combat.ProjectileID, announce bool) bool {
	entry, ok := s.projectiles[id]
	if !ok {
		return false
	}
	p := components.Projectile.Get(entry).Projectile
	p.Turret.DeleteProjectile(id)
	factory.RemoveObject(s.ecs, entry)
	s.ecs.World.Remove(entry.Entity())
	delete(s.projectiles, id)

	if announce {
		s.net.SendProjectileRemove(id)
	}
	return true
}

// ApplyRemoteTank mirrors a tank another client drives. A tank that is not
// on the field yet is spawned once it has hit points; a dead one is left to
// the tank system to remove.
func (s *Session) ApplyRemoteTank(n netcomponents.NetTankData) {
	if n.PlayerNo == s.localPlayer {
		return
	}
	entry, ok := s.tanks[n.PlayerNo]
	if !ok {
		if n.HP <= 0 {
			return
		}
		var err error
		entry, err = s.SpawnTank(n.PlayerNo, n.Name, n.Loadout, n.X, n.Y, n.Angle)
		if err != nil {
			s.log.Warn().Err(err).Int("player", n.PlayerNo).Msg("cannot mirror remote tank")
			return
		}
	}
	td := components.Tank.Get(entry)
	td.Name = n.Name
	td.Remote = combat.TankState{
		X:            n.X,
		Y:            n.Y,
		Angle:        n.Angle,
		HP:           n.HP,
		TurretAngle:  n.TurretAngle,
		ShieldActive: n.ShieldActive,
	}
	td.HasRemote = true
}

// ApplyProjectileAdd registers a projectile another client fired.
func (s *Session) ApplyProjectileAdd(evt messages.ProjectileAdd) {
	if evt.Owner == s.localPlayer {
		return
	}
	entry, ok := s.tanks[evt.Owner]
	if !ok {
		s.log.Debug().Int("id", evt.ID).Int("owner", evt.Owner).Msg("projectile for unknown tank dropped")
		return
	}
	t := components.Tank.Get(entry).Tank
	t.Turret.AssignIDFromServer(combat.ProjectileID(evt.ID), evt.X, evt.Y, evt.Angle)
}

// ApplyProjectileRemove drops a projectile another client removed.
func (s *Session) ApplyProjectileRemove(evt messages.ProjectileRemove) {
	s.RemoveProjectile(combat.ProjectileID(evt.ID), false)
}

// ApplyPlayerLeft removes a departed player's tank.
func (s *Session) ApplyPlayerLeft(evt messages.PlayerLeft) {
	if evt.PlayerNo == s.localPlayer {
		return
	}
	s.DestroyTank(evt.PlayerNo)
}
