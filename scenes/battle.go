package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/assets"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/network"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/systems"
	"github.com/distracted-programming/tanks/systems/factory"
)

// BattleScene runs one battle. With a nil client it is a practice battle
// against nobody and every outbound message is dropped.
type BattleScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	session      *systems.Session
	battle       *components.BattleData
	once         sync.Once

	failed string
	log    zerolog.Logger
}

func NewBattleScene(sc SceneChanger, client *network.Client) *BattleScene {
	return &BattleScene{
		sceneChanger: sc,
		netClient:    client,
		log:          logging.For("battle"),
	}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	if bs.failed != "" {
		bs.leave(bs.failed)
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		bs.leave("")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Game.ShowDebug = !cfg.Game.ShowDebug
	}

	if bs.netClient != nil {
		state := bs.netClient.State()
		bs.battle.Connection = state.String()
		if state == network.StateDisconnected || state == network.StateError {
			msg := "Disconnected from server"
			if err := bs.netClient.LastError(); err != nil {
				msg = err.Error()
			}
			bs.log.Info().Str("state", state.String()).Msg("connection lost, leaving battle")
			bs.leave(msg)
			return
		}
	}

	bs.ecsWorld.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if bs.ecsWorld == nil {
		return
	}

	bs.ecsWorld.Draw(screen)
}

func (bs *BattleScene) configure() {
	level := cfg.Game.Level
	if bs.netClient != nil {
		if joined := bs.netClient.Joined(); joined.Level != "" {
			level = joined.Level
		}
	}

	m, err := assets.LoadMap(level, cfg.Game.MapFile, cfg.Game.FillTile)
	if err != nil {
		bs.log.Error().Err(err).Str("level", level).Str("map", cfg.Game.MapFile).Msg("could not load map")
		bs.failed = "Could not load map: " + err.Error()
		return
	}

	bs.ecsWorld = ecs.NewECS(donburi.NewWorld())
	factory.CreateBoard(bs.ecsWorld, m.Board, m.Spawns, m.Colors)
	factory.CreateSpace(bs.ecsWorld, m.Board)

	battleEntry := archetypes.Battle.Spawn(bs.ecsWorld)
	bs.battle = components.Battle.Get(battleEntry)

	var out systems.Outbound = network.Offline{}
	localPlayer := 0
	if bs.netClient != nil {
		out = bs.netClient
		localPlayer = bs.netClient.PlayerNo()
	} else {
		bs.battle.Offline = true
		bs.battle.Connection = "practice"
	}
	bs.battle.LocalPlayer = localPlayer

	bs.session = systems.NewSession(bs.ecsWorld, systems.SessionConfig{
		Board:        m.Board,
		Spawns:       m.Spawns,
		Net:          out,
		Loadouts:     assets.LoadLoadout,
		Rules:        cfg.Combat.Rules(),
		LocalPlayer:  localPlayer,
		LocalName:    cfg.Network.PlayerName,
		LocalLoadout: cfg.Game.Tank,
		TPS:          ebiten.TPS(),
	})
	if _, err := bs.session.SpawnLocalTank(); err != nil {
		bs.log.Error().Err(err).Str("tank", cfg.Game.Tank).Msg("could not spawn local tank")
		bs.failed = "Could not spawn tank: " + err.Error()
		return
	}
	bs.log.Info().
		Int("player", localPlayer).
		Str("level", level).
		Str("map", cfg.Game.MapFile).
		Bool("offline", bs.netClient == nil).
		Msg("battle started")

	if bs.netClient != nil {
		bs.ecsWorld.AddSystem(systems.NewNetSyncSystem(bs.session, bs.netClient))
	}
	bs.ecsWorld.AddSystem(systems.UpdateInput)
	bs.ecsWorld.AddSystem(systems.NewTankSystem(bs.session))
	bs.ecsWorld.AddSystem(systems.NewProjectileSystem(bs.session))
	bs.ecsWorld.AddSystem(systems.NewEffectsSystem(bs.session))

	bs.ecsWorld.AddRenderer(cfg.Default, systems.DrawBoard)
	bs.ecsWorld.AddRenderer(cfg.Default, systems.DrawProjectiles)
	bs.ecsWorld.AddRenderer(cfg.Default, systems.DrawTanks)
	bs.ecsWorld.AddRenderer(cfg.Default, systems.DrawHPBars)
	bs.ecsWorld.AddRenderer(cfg.Default, systems.DrawDebug)
	bs.ecsWorld.AddRenderer(cfg.Default, systems.NewHUDRenderer(bs.session))
}

func (bs *BattleScene) leave(status string) {
	if bs.netClient != nil {
		bs.netClient.Disconnect()
		bs.netClient = nil
	}
	bs.sceneChanger.ChangeScene(NewConnectScene(bs.sceneChanger, status))
}
