package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/assets"
	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/editor"
	"github.com/distracted-programming/tanks/shared/netconfig"
	"github.com/distracted-programming/tanks/systems"
	"github.com/distracted-programming/tanks/systems/factory"
)

// EditorScene paints a board and its spawn points.
type EditorScene struct {
	ecsWorld *ecs.ECS
	data     *components.EditorData
}

// NewEditorScene builds an editor over a world-sized board filled with the
// first configured tile.
func NewEditorScene() (*EditorScene, error) {
	tiles, err := assets.LoadTiles(cfg.Editor.Tiles)
	if err != nil {
		return nil, fmt.Errorf("editor tiles: %w", err)
	}
	palette := make([]board.Tile, len(tiles))
	for i, t := range tiles {
		palette[i] = t.Tile()
	}

	ed, err := editor.New(
		netconfig.WorldWidth/netconfig.TileSize,
		netconfig.WorldHeight/netconfig.TileSize,
		netconfig.TileSize,
		palette,
		cfg.Editor.RotationAngle,
	)
	if err != nil {
		return nil, err
	}

	es := &EditorScene{ecsWorld: ecs.NewECS(donburi.NewWorld())}
	factory.CreateBoard(es.ecsWorld, ed.Board, nil, assets.Colors(tiles))
	es.data = components.Editor.Get(factory.CreateEditor(es.ecsWorld, ed))

	es.ecsWorld.AddSystem(systems.UpdateEditor)
	es.ecsWorld.AddRenderer(cfg.Default, systems.DrawBoard)
	es.ecsWorld.AddRenderer(cfg.Default, systems.DrawSpawnPoints)
	es.ecsWorld.AddRenderer(cfg.Default, systems.DrawEditorCursors)
	es.ecsWorld.AddRenderer(cfg.Default, systems.DrawEditorStatus)
	return es, nil
}

func (es *EditorScene) Update() {
	es.ecsWorld.Update()
}

func (es *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	es.ecsWorld.Draw(screen)
}

// Done reports whether the quit key was pressed.
func (es *EditorScene) Done() bool {
	return es.data.Quit
}
