package main

import (
	"flag"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/fonts"
	"github.com/distracted-programming/tanks/scenes"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/protocol"
	"github.com/distracted-programming/tanks/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(offline bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if offline {
		g.scene = scenes.NewBattleScene(g, nil)
	} else {
		g.scene = scenes.NewConnectScene(g, "")
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "Directory searched for "+config.FileName)
	mapFile := flag.String("map", "", "Play on a map saved by the editor instead of the server's level")
	tank := flag.String("tank", "", "Tank loadout (overrides saved settings)")
	offline := flag.Bool("offline", false, "Skip the connect screen and start a practice battle")
	flag.Parse()

	logging.Setup(config.Game.LogLevel)
	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	logging.Setup(config.Game.LogLevel)

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal().Err(err).Msg("failed to register network components")
	}
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.LabelFontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Tanks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
		systems.ApplySavedWindow(saved)
	}

	if *mapFile != "" {
		config.Game.MapFile = *mapFile
	}
	if *tank != "" {
		config.Game.Tank = *tank
	}

	if err := ebiten.RunGame(NewGame(*offline)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
