package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/fonts"
	"github.com/distracted-programming/tanks/scenes"
	"github.com/distracted-programming/tanks/shared/logging"
)

type Editor struct {
	scene *scenes.EditorScene
}

func (e *Editor) Update() error {
	e.scene.Update()
	if e.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.scene.Draw(screen)
}

func (e *Editor) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "Directory searched for "+config.FileName)
	saveFile := flag.String("file", "", "Map file written by S and read by L")
	flag.Parse()

	logging.Setup(config.Game.LogLevel)
	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	logging.Setup(config.Game.LogLevel)
	if *saveFile != "" {
		config.Editor.SaveFile = *saveFile
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.LabelFontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	scene, err := scenes.NewEditorScene()
	if err != nil {
		log.Fatal().Err(err).Msg("could not start editor")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Tanks map editor")
	ebiten.SetTPS(config.Editor.TPS)

	log.Info().Str("file", config.Editor.SaveFile).Msg("editor ready")
	if err := ebiten.RunGame(&Editor{scene: scene}); err != nil {
		log.Fatal().Err(err).Msg("editor exited")
	}
}
