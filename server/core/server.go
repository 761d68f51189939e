package core

import (
	"sync"

	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/messages"
	"github.com/distracted-programming/tanks/shared/netcomponents"
	"github.com/distracted-programming/tanks/shared/netconfig"
)

const commandBuffer = 1024

// Peer is a connected client as the relay sees it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

// Config is what the relay tells joining clients.
type Config struct {
	Name     string
	Version  string // required client version, empty accepts any
	Level    string
	TickRate int
}

type player struct {
	no     int
	name   string
	peer   Peer
	entity donburi.Entity
}

// Server relays tank states and projectile events between up to
// netconfig.MaxPlayers clients. It never simulates: every client owns its
// tank and the server only stores the last state each one reported.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	cfg       Config

	// Router callbacks run on network goroutines; they only enqueue.
	// Everything below is touched on the loop goroutine.
	commands chan func()
	players  map[string]*player
	slots    [netconfig.MaxPlayers]*player

	mu          sync.RWMutex
	playerCount int

	log zerolog.Logger
}

// NewServer creates a new relay server
func NewServer(cfg Config) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = netconfig.DefaultTickRate
	}
	world := donburi.NewWorld()

	s := &Server{
		world:    world,
		cfg:      cfg,
		commands: make(chan func(), commandBuffer),
		players:  make(map[string]*player),
		log:      logging.For("server"),
	}
	s.loop = NewGameLoop(s, cfg.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.Info().Str("client", client.Id()).Msg("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(func() { s.onJoin(client, req) })
	})

	router.On(func(client *router.NetworkClient, state messages.TankState) {
		s.enqueue(func() { s.onTankState(client, state) })
	})

	router.On(func(client *router.NetworkClient, evt messages.ProjectileAdd) {
		s.enqueue(func() { s.onProjectileAdd(client, evt) })
	})

	router.On(func(client *router.NetworkClient, evt messages.ProjectileRemove) {
		s.enqueue(func() { s.onProjectileRemove(client, evt) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Error().Err(err).Str("client", client.Id()).Msg("client error")
	})
}

func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		s.log.Warn().Msg("command queue full, dropping message")
	}
}

// ProcessCommands runs every queued client message in arrival order.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) onJoin(peer Peer, req messages.JoinRequest) {
	log := s.log.With().Str("client", peer.Id()).Str("name", req.PlayerName).Logger()

	if _, ok := s.players[peer.Id()]; ok {
		log.Warn().Msg("duplicate join request ignored")
		return
	}
	if s.cfg.Version != "" && req.Version != s.cfg.Version {
		log.Warn().Str("version", req.Version).Str("want", s.cfg.Version).Msg("join rejected: version mismatch")
		s.send(peer, messages.JoinRejected{Reason: "version mismatch: server runs " + s.cfg.Version})
		return
	}

	no := s.freeSlot()
	if no < 0 {
		log.Warn().Msg("join rejected: server full")
		s.send(peer, messages.JoinRejected{Reason: "server full"})
		return
	}

	entity := s.world.Create(netcomponents.NetTank)
	entry := s.world.Entry(entity)
	// hp stays 0 until the first tank state so nobody spawns the tank early
	netcomponents.NetTank.Set(entry, &netcomponents.NetTankData{
		PlayerNo: no,
		Name:     req.PlayerName,
		Loadout:  req.Tank,
	})

	if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetTank)); err != nil {
		log.Error().Err(err).Msg("failed to set up network sync for tank")
		s.world.Remove(entity)
		s.send(peer, messages.JoinRejected{Reason: "internal error"})
		return
	}

	p := &player{no: no, name: req.PlayerName, peer: peer, entity: entity}
	s.players[peer.Id()] = p
	s.slots[no] = p
	s.setPlayerCount(len(s.players))

	accepted := messages.JoinAccepted{
		PlayerNo:   no,
		ServerName: s.cfg.Name,
		Level:      s.cfg.Level,
		TickRate:   s.cfg.TickRate,
	}
	if nid := esync.GetNetworkId(entry); nid != nil {
		accepted.NetworkID = *nid
	}
	s.send(peer, accepted)

	log.Info().Int("player", no).Str("tank", req.Tank).Msg("player joined")
}

func (s *Server) freeSlot() int {
	for i, p := range s.slots {
		if p == nil {
			return i
		}
	}
	return -1
}

func (s *Server) onTankState(peer Peer, state messages.TankState) {
	p, ok := s.players[peer.Id()]
	if !ok || !s.world.Valid(p.entity) {
		return
	}
	tank := netcomponents.NetTank.Get(s.world.Entry(p.entity))
	tank.X = state.X
	tank.Y = state.Y
	tank.Angle = state.Angle
	tank.HP = state.HP
	tank.TurretAngle = state.TurretAngle
	tank.ShieldActive = state.ShieldActive
}

func (s *Server) onProjectileAdd(peer Peer, evt messages.ProjectileAdd) {
	p, ok := s.players[peer.Id()]
	if !ok {
		return
	}
	// only the owner announces a new projectile, and only from its own range
	if evt.Owner != p.no || netconfig.ProjectileOwner(evt.ID) != p.no {
		s.log.Warn().Int("player", p.no).Int("id", evt.ID).Int("owner", evt.Owner).Msg("projectile add outside own range dropped")
		return
	}
	s.relay(p, evt)
}

func (s *Server) onProjectileRemove(peer Peer, evt messages.ProjectileRemove) {
	p, ok := s.players[peer.Id()]
	if !ok {
		return
	}
	owner := netconfig.ProjectileOwner(evt.ID)
	if owner < 0 || owner >= netconfig.MaxPlayers || owner != evt.Owner {
		s.log.Warn().Int("player", p.no).Int("id", evt.ID).Int("owner", evt.Owner).Msg("malformed projectile remove dropped")
		return
	}
	// a victim removes the shooter's projectile, so any player may announce it
	s.relay(p, evt)
}

func (s *Server) onDisconnect(peer Peer, err error) {
	log := s.log.With().Str("client", peer.Id()).Logger()
	if err != nil {
		log.Info().Err(err).Msg("client disconnected with error")
	} else {
		log.Info().Msg("client disconnected")
	}

	p, ok := s.players[peer.Id()]
	if !ok {
		return
	}
	delete(s.players, peer.Id())
	s.slots[p.no] = nil
	s.setPlayerCount(len(s.players))

	if s.world.Valid(p.entity) {
		s.world.Remove(p.entity)
	}
	s.broadcast(messages.PlayerLeft{PlayerNo: p.no})
	log.Info().Int("player", p.no).Msg("player left")
}

// relay sends msg to every joined player except from.
func (s *Server) relay(from *player, msg any) {
	for _, p := range s.slots {
		if p == nil || p == from {
			continue
		}
		s.send(p.peer, msg)
	}
}

func (s *Server) broadcast(msg any) {
	s.relay(nil, msg)
}

func (s *Server) send(peer Peer, msg any) {
	if err := peer.SendMessage(msg); err != nil {
		s.log.Warn().Err(err).Str("client", peer.Id()).Type("message", msg).Msg("send failed")
	}
}

func (s *Server) setPlayerCount(n int) {
	s.mu.Lock()
	s.playerCount = n
	s.mu.Unlock()
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerCount
}

// tank returns the stored state of the tank in slot playerNo. Loop goroutine only.
func (s *Server) tank(playerNo int) (netcomponents.NetTankData, bool) {
	if playerNo < 0 || playerNo >= len(s.slots) || s.slots[playerNo] == nil {
		return netcomponents.NetTankData{}, false
	}
	p := s.slots[playerNo]
	if !s.world.Valid(p.entity) {
		return netcomponents.NetTankData{}, false
	}
	return *netcomponents.NetTank.Get(s.world.Entry(p.entity)), true
}
