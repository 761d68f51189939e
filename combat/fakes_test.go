package combat

import (
	"github.com/distracted-programming/tanks/board"
)

type sentProjectile struct {
	ID       ProjectileID
	X, Y, An float64
}

type fakeNetwork struct {
	states      []TankState
	projectiles []sentProjectile
}

func (n *fakeNetwork) SendTankState(s TankState) { n.states = append(n.states, s) }

func (n *fakeNetwork) SendProjectileAdd(id ProjectileID, x, y, angle float64) {
	n.projectiles = append(n.projectiles, sentProjectile{id, x, y, angle})
}

type fakeSession struct {
	net         *fakeNetwork
	tiles       TileSource
	projectiles []*Projectile
	bars        map[*HPBar]bool
}

func newFakeSession(tiles TileSource) *fakeSession {
	return &fakeSession{net: &fakeNetwork{}, tiles: tiles, bars: map[*HPBar]bool{}}
}

func (s *fakeSession) AddProjectile(p *Projectile) { s.projectiles = append(s.projectiles, p) }
func (s *fakeSession) AddHPBar(b *HPBar)           { s.bars[b] = true }
func (s *fakeSession) RemoveHPBar(b *HPBar)        { delete(s.bars, b) }
func (s *fakeSession) Network() Network            { return s.net }
func (s *fakeSession) Tiles() TileSource           { return s.tiles }

var (
	grass = board.Tile{Name: "grass", MoveSpeed: 1}
	mud   = board.Tile{Name: "mud", MoveSpeed: 0.5}
	wall  = board.Tile{Name: "wall", BlocksMovement: true, MoveSpeed: 1}
)

// openField is a 16x12 grid of 50px grass tiles, the size of the default window.
func openField() *board.Board {
	b := board.New(16, 12, 50)
	b.Fill(grass)
	return b
}

func testLoadout() Loadout {
	return Loadout{
		Tank: TankProfile{
			Name:         "test",
			HP:           100,
			MaxSpeed:     10,
			Acceleration: 5,
			Deceleration: 5,
			Drag:         1,
			TurnRate:     90,
			Driftiness:   0,
		},
		Turret: TurretProfile{
			Name:               "test",
			RotationSpeed:      45,
			MaxLeftAngle:       30,
			MaxRightAngle:      30,
			Cooldown:           0.5,
			ProjectilesPerShot: 1,
		},
		Ammo:   AmmoProfile{Name: "test", Speed: 100, Damage: 10, Radius: 3},
		Shield: ShieldProfile{Name: "test", HP: 50, Cooldown: 5, Decay: 10},
	}
}

func newTestTank(playerNo int, x, y float64, tiles TileSource) (*Tank, *fakeSession) {
	s := newFakeSession(tiles)
	t := NewTank(Spawn{
		PlayerNo: playerNo,
		X:        x,
		Y:        y,
		Loadout:  testLoadout(),
		Rules:    DefaultRules(),
	}, s)
	return t, s
}

func keys(actions ...Action) PressedKeys {
	var k PressedKeys
	for _, a := range actions {
		k[a] = true
	}
	return k
}
