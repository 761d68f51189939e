package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	"github.com/distracted-programming/tanks/shared/messages"
	"github.com/distracted-programming/tanks/shared/netcomponents"
	"github.com/distracted-programming/tanks/systems/factory"
	"github.com/distracted-programming/tanks/tags"
)

type recordingNet struct {
	states  []combat.TankState
	adds    []combat.ProjectileID
	removes []combat.ProjectileID
}

func (n *recordingNet) SendTankState(s combat.TankState) { n.states = append(n.states, s) }

func (n *recordingNet) SendProjectileAdd(id combat.ProjectileID, _, _, _ float64) {
	n.adds = append(n.adds, id)
}

func (n *recordingNet) SendProjectileRemove(id combat.ProjectileID) {
	n.removes = append(n.removes, id)
}

var (
	grass = board.Tile{Name: "grass", MoveSpeed: 1}
	wall  = board.Tile{Name: "wall", BlocksMovement: true, MoveSpeed: 1}
)

func testLoadouts(name string) (combat.Loadout, error) {
	if name == "missing" {
		return combat.Loadout{}, errors.New("no such tank")
	}
	return combat.Loadout{
		Tank: combat.TankProfile{
			Name: name, HP: 100, MaxSpeed: 100, Acceleration: 50, Deceleration: 50, Drag: 20, TurnRate: 90,
		},
		Turret: combat.TurretProfile{
			Name: "cannon", RotationSpeed: 45, FullRotation: true, Cooldown: 0.5, ProjectilesPerShot: 1,
		},
		Ammo:   combat.AmmoProfile{Name: "shell", Speed: 300, Damage: 10, Radius: 3},
		Shield: combat.ShieldProfile{Name: "basic", HP: 50, Cooldown: 5, Decay: 10},
	}, nil
}

type battle struct {
	ecs  *ecs.ECS
	s    *Session
	net  *recordingNet
	data *components.BattleData

	tanks       func(*ecs.ECS)
	projectiles func(*ecs.ECS)
}

// newBattle sets up a 16x12 grass board with a wall at cell (8, 1) and
// spawn points at cells (1,1) and (3,1).
func newBattle(t *testing.T) *battle {
	t.Helper()
	b := board.New(16, 12, 50)
	b.Fill(grass)
	b.Set(8, 1, wall)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, b)
	entry := archetypes.Battle.Spawn(e)
	net := &recordingNet{}

	s := NewSession(e, SessionConfig{
		Board:        b,
		Spawns:       []board.SpawnPoint{{X: 1, Y: 1, Angle: 270}, {X: 3, Y: 1, Angle: 90}},
		Net:          net,
		Loadouts:     testLoadouts,
		Rules:        combat.DefaultRules(),
		LocalPlayer:  0,
		LocalName:    "me",
		LocalLoadout: "light",
		TPS:          60,
	})
	return &battle{
		ecs:         e,
		s:           s,
		net:         net,
		data:        components.Battle.Get(entry),
		tanks:       NewTankSystem(s),
		projectiles: NewProjectileSystem(s),
	}
}

func countHPBars(e *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(tags.HPBar)).Count(e.World)
}

func (b *battle) press(keys ...combat.Action) {
	input := getOrCreateInput(b.ecs)
	input.Previous = input.Current
	input.Current = combat.PressedKeys{}
	for _, k := range keys {
		input.Current[k] = true
	}
}

func (b *battle) tick() {
	b.tanks(b.ecs)
	b.projectiles(b.ecs)
}

func TestSession_SpawnLocalTank(t *testing.T) {
	b := newBattle(t)

	entry, err := b.s.SpawnLocalTank()
	require.NoError(t, err)
	assert.True(t, entry.HasComponent(tags.LocalTank))

	tank, ok := b.s.LocalTank()
	require.True(t, ok)
	assert.Equal(t, 75.0, tank.X)
	assert.Equal(t, 75.0, tank.Y)
	assert.Equal(t, 270.0, tank.Angle)
	assert.Equal(t, 1, countHPBars(b.ecs))

	_, err = b.s.SpawnLocalTank()
	assert.Error(t, err)

	_, err = b.s.SpawnTank(1, "x", "missing", 0, 0, 0)
	assert.Error(t, err)
}

func TestSession_SpawnPointWithoutSpawns(t *testing.T) {
	b := newBattle(t)
	b.s.spawns = nil

	x, y, angle := b.s.SpawnPoint(2)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
	assert.Equal(t, 0.0, angle)
}

func TestTankSystem_LocalFireCreatesAnnouncedProjectile(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)

	b.press(combat.ActionFire)
	b.tanks(b.ecs)

	assert.Equal(t, 1, b.s.ProjectileCount())
	assert.Equal(t, []combat.ProjectileID{0}, b.net.adds)
	require.Len(t, b.net.states, 1)

	_, ok := b.s.ProjectileEntry(0)
	assert.True(t, ok)
}

func TestProjectileSystem_OwnerAnnouncesWallHit(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)

	// facing 270 means heading +x, so the shell flies right into the wall at cell (8,1)
	b.press(combat.ActionFire)
	b.tick()
	require.Equal(t, 1, b.s.ProjectileCount())

	b.press()
	for range 120 {
		b.tick()
	}
	assert.Equal(t, 0, b.s.ProjectileCount())
	assert.Equal(t, []combat.ProjectileID{0}, b.net.removes)
}

func TestProjectileSystem_RemoteShellDamagesLocalTank(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)

	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 1, Name: "them", Loadout: "heavy", X: 175, Y: 75, HP: 100})
	_, ok := b.s.TankEntry(1)
	require.True(t, ok)

	id := 64 // first id in player 1's range
	b.s.ApplyProjectileAdd(messages.ProjectileAdd{ID: id, Owner: 1, X: 78, Y: 75, Angle: 90})
	require.Equal(t, 1, b.s.ProjectileCount())

	b.tick()

	tank, _ := b.s.LocalTank()
	assert.Equal(t, 90.0, tank.HP)
	assert.Equal(t, 0, b.s.ProjectileCount())
	assert.Equal(t, []combat.ProjectileID{combat.ProjectileID(id)}, b.net.removes)
}

func TestProjectileSystem_ShieldAbsorbsHit(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)
	tank, _ := b.s.LocalTank()
	tank.ActivateShield()
	shieldHP := tank.Shield.HP

	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 1, Loadout: "heavy", X: 175, Y: 75, HP: 100})
	b.s.ApplyProjectileAdd(messages.ProjectileAdd{ID: 64, Owner: 1, X: 75, Y: 75, Angle: 90})
	b.projectiles(b.ecs)

	assert.Equal(t, 100.0, tank.HP)
	assert.True(t, tank.Shield.Active)
	assert.Equal(t, shieldHP, tank.Shield.HP, "hits never drain the shield")
	assert.Equal(t, 0, b.s.ProjectileCount())
}

func TestSession_IgnoresOwnEchoAndUnknownOwners(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)

	b.s.ApplyProjectileAdd(messages.ProjectileAdd{ID: 3, Owner: 0, X: 10, Y: 10})
	b.s.ApplyProjectileAdd(messages.ProjectileAdd{ID: 130, Owner: 2, X: 10, Y: 10})
	assert.Equal(t, 0, b.s.ProjectileCount())
}

func TestSession_RemoteTankLifecycle(t *testing.T) {
	b := newBattle(t)

	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 1, Loadout: "heavy", HP: 0})
	_, ok := b.s.TankEntry(1)
	assert.False(t, ok, "a dead remote tank is not spawned")

	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 1, Name: "them", Loadout: "heavy", X: 300, Y: 300, Angle: 10, HP: 80})
	entry, ok := b.s.TankEntry(1)
	require.True(t, ok)
	assert.False(t, entry.HasComponent(tags.LocalTank))

	b.tick()
	remote := components.Tank.Get(entry).Tank
	assert.Equal(t, 80.0, remote.HP)
	assert.Equal(t, 10.0, remote.Angle)

	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 1, Loadout: "heavy", X: 300, Y: 300, HP: -5})
	b.tick()
	_, ok = b.s.TankEntry(1)
	assert.False(t, ok)
	assert.False(t, remote.Alive())
	assert.Equal(t, 0, countHPBars(b.ecs))
}

func TestSession_PlayerLeftRemovesTankAndShells(t *testing.T) {
	b := newBattle(t)
	b.s.ApplyRemoteTank(netcomponents.NetTankData{PlayerNo: 2, Loadout: "heavy", X: 300, Y: 300, HP: 100})
	b.s.ApplyProjectileAdd(messages.ProjectileAdd{ID: 130, Owner: 2, X: 300, Y: 300})
	require.Equal(t, 1, b.s.ProjectileCount())

	b.s.ApplyPlayerLeft(messages.PlayerLeft{PlayerNo: 2})

	_, ok := b.s.TankEntry(2)
	assert.False(t, ok)
	assert.Equal(t, 0, b.s.ProjectileCount())
	assert.Empty(t, b.net.removes)
}

func TestSession_ShieldBarVisibility(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)
	tank, _ := b.s.LocalTank()

	tank.ActivateShield()
	require.Equal(t, 2, countHPBars(b.ecs))
	shield := b.s.bars[tank.ShieldBar]
	assert.True(t, components.Visibility.Get(shield).Visible)

	tank.DeactivateShield()
	assert.False(t, components.Visibility.Get(shield).Visible)
	assert.Equal(t, 2, countHPBars(b.ecs))

	b.s.DestroyTank(0)
	assert.Equal(t, 0, countHPBars(b.ecs))
}

func TestTankSystem_LocalDeathAndRespawn(t *testing.T) {
	b := newBattle(t)
	_, err := b.s.SpawnLocalTank()
	require.NoError(t, err)
	tank, _ := b.s.LocalTank()
	tank.OffsetHP(-200)

	b.tick()
	_, ok := b.s.LocalTank()
	assert.False(t, ok)
	assert.Equal(t, 1, b.data.Deaths)
	assert.Greater(t, b.data.RespawnIn, 0.0)
	require.NotEmpty(t, b.net.states)
	assert.LessOrEqual(t, b.net.states[len(b.net.states)-1].HP, 0.0)

	for range 60*3 + 1 {
		b.tick()
	}
	respawned, ok := b.s.LocalTank()
	require.True(t, ok)
	assert.Equal(t, 100.0, respawned.HP)
	assert.Equal(t, 0.0, b.data.RespawnIn)
}
