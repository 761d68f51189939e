package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"

	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/messages"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client manages a WebSocket connection to the relay server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	joined    messages.JoinAccepted
	conn      *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	addCh    chan messages.ProjectileAdd
	removeCh chan messages.ProjectileRemove
	leftCh   chan messages.PlayerLeft

	sent *SentStates
	log  zerolog.Logger
}

// NewClient creates a disconnected client. eventBuffer bounds each event queue.
func NewClient(eventBuffer int) *Client {
	if eventBuffer <= 0 {
		eventBuffer = 64
	}
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		addCh:      make(chan messages.ProjectileAdd, eventBuffer),
		removeCh:   make(chan messages.ProjectileRemove, eventBuffer),
		leftCh:     make(chan messages.PlayerLeft, eventBuffer),
		sent:       NewSentStates(),
		log:        logging.For("client"),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName, tank string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		c.log.Info().Str("address", address).Msg("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
			Tank:       tank,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.log.Info().
			Int("player", msg.PlayerNo).
			Str("server", msg.ServerName).
			Str("level", msg.Level).
			Int("tickRate", msg.TickRate).
			Msg("join accepted")
		c.mu.Lock()
		c.joined = msg
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.log.Warn().Str("reason", msg.Reason).Msg("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.ProjectileAdd) {
		push(c, c.addCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.ProjectileRemove) {
		push(c, c.removeCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.PlayerLeft) {
		push(c, c.leftCh, evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.log.Info().Err(err).Msg("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.log.Error().Err(err).Msg("network error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// push enqueues an event without blocking the network goroutine. A full
// queue drops the event.
func push[T any](c *Client, ch chan T, evt T) {
	select {
	case ch <- evt:
	default:
		c.log.Warn().Type("event", evt).Msg("event queue full, dropping")
	}
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Joined returns the server's answer to the join request.
func (c *Client) Joined() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.NetworkID
}

func (c *Client) PlayerNo() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.PlayerNo
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// SendTankState reports the local tank. Failures are logged, never returned.
func (c *Client) SendTankState(s combat.TankState) {
	if c.State() != StateJoinedGame {
		return
	}
	if !c.sent.Changed(s) {
		return
	}
	if err := c.SendMessage(messages.TankState{
		X:            s.X,
		Y:            s.Y,
		Angle:        s.Angle,
		HP:           s.HP,
		TurretAngle:  s.TurretAngle,
		ShieldActive: s.ShieldActive,
	}); err != nil {
		c.log.Warn().Err(err).Msg("send tank state")
		return
	}
	c.sent.Record(s)
}

// SendProjectileAdd announces a projectile fired by the local tank.
func (c *Client) SendProjectileAdd(id combat.ProjectileID, x, y, angle float64) {
	if c.State() != StateJoinedGame {
		return
	}
	err := c.SendMessage(messages.ProjectileAdd{
		ID:    int(id),
		Owner: combat.OwnerOf(id),
		X:     x,
		Y:     y,
		Angle: angle,
	})
	if err != nil {
		c.log.Warn().Err(err).Int("id", int(id)).Msg("send projectile add")
	}
}

// SendProjectileRemove announces that a projectile is gone.
func (c *Client) SendProjectileRemove(id combat.ProjectileID) {
	if c.State() != StateJoinedGame {
		return
	}
	err := c.SendMessage(messages.ProjectileRemove{ID: int(id), Owner: combat.OwnerOf(id)})
	if err != nil {
		c.log.Warn().Err(err).Int("id", int(id)).Msg("send projectile remove")
	}
}

func (c *Client) setError(err error) {
	c.log.Error().Err(err).Msg("client error")
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainProjectileAdds returns all pending projectile announcements, non-blocking.
func (c *Client) DrainProjectileAdds() []messages.ProjectileAdd {
	return drainChan(c.addCh)
}

// DrainProjectileRemoves returns all pending removals, non-blocking.
func (c *Client) DrainProjectileRemoves() []messages.ProjectileRemove {
	return drainChan(c.removeCh)
}

// DrainPlayersLeft returns all pending departures, non-blocking.
func (c *Client) DrainPlayersLeft() []messages.PlayerLeft {
	return drainChan(c.leftCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
