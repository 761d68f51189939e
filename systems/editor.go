package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/editor"
	"github.com/distracted-programming/tanks/fonts"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/tags"
)

const statusFrames = 180

var editorLog = logging.For("editor")

// EditorCommands are the editor actions triggered in one frame.
type EditorCommands struct {
	MouseX, MouseY float64
	Paint          bool
	ToggleX        bool
	ToggleY        bool
	TogglePoint    bool
	CycleTile      bool
	ToggleSpawn    bool
	RotateSpawn    bool
	Save           bool
	Load           bool
	Quit           bool
}

func pollEditorCommands() EditorCommands {
	keys := cfg.EditorInput
	mx, my := ebiten.CursorPosition()
	return EditorCommands{
		MouseX:      float64(mx),
		MouseY:      float64(my),
		Paint:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ToggleX:     inpututil.IsKeyJustPressed(keys.ToggleX),
		ToggleY:     inpututil.IsKeyJustPressed(keys.ToggleY),
		TogglePoint: inpututil.IsKeyJustPressed(keys.TogglePoint),
		CycleTile:   inpututil.IsKeyJustPressed(keys.CycleTile),
		ToggleSpawn: inpututil.IsKeyJustPressed(keys.ToggleSpawn),
		RotateSpawn: inpututil.IsKeyJustPressed(keys.RotateSpawn),
		Save:        inpututil.IsKeyJustPressed(keys.Save),
		Load:        inpututil.IsKeyJustPressed(keys.Load),
		Quit:        inpututil.IsKeyJustPressed(keys.Quit),
	}
}

// UpdateEditor applies the frame's mouse and keyboard input to the map.
func UpdateEditor(ecs *ecs.ECS) {
	ApplyEditorCommands(ecs, pollEditorCommands())
}

// ApplyEditorCommands runs one editor tick for the given input.
func ApplyEditorCommands(ecs *ecs.ECS, cmd EditorCommands) {
	entry, ok := components.Editor.First(ecs.World)
	if !ok {
		return
	}
	ed := components.Editor.Get(entry)
	boardEntry, ok := components.Board.First(ecs.World)
	if !ok {
		return
	}
	bd := components.Board.Get(boardEntry)
	e := ed.Editor

	e.MoveCursor(cmd.MouseX, cmd.MouseY)
	x, y := e.Cell()

	if cmd.ToggleX {
		e.ToggleX()
	}
	if cmd.ToggleY {
		e.ToggleY()
	}
	if cmd.TogglePoint {
		e.TogglePoint()
	}
	if cmd.CycleTile {
		setStatus(ed, "tile: "+e.CycleTile().Name)
	}
	if cmd.Paint && e.Board.InGrid(x, y) {
		e.Paint()
		bd.Dirty = true
	}
	if cmd.ToggleSpawn {
		e.ToggleSpawnPoint(x, y)
	}
	if cmd.RotateSpawn {
		e.RotateSpawnPoint(x, y)
	}
	if cmd.Save {
		if err := e.Save(cfg.Editor.SaveFile); err != nil {
			editorLog.Error().Err(err).Msg("save failed")
			setStatus(ed, "save failed: "+err.Error())
		} else {
			editorLog.Info().Str("file", cfg.Editor.SaveFile).Int("spawns", len(e.Spawns)).Msg("map saved")
			setStatus(ed, "saved "+cfg.Editor.SaveFile)
		}
	}
	if cmd.Load {
		if err := e.Load(cfg.Editor.SaveFile); err != nil {
			editorLog.Error().Err(err).Msg("load failed")
			setStatus(ed, "load failed: "+err.Error())
		} else {
			editorLog.Info().Str("file", cfg.Editor.SaveFile).Msg("map loaded")
			setStatus(ed, "loaded "+cfg.Editor.SaveFile)
			bd.Board = e.Board
			bd.Dirty = true
		}
	}
	if cmd.Quit {
		ed.Quit = true
	}

	bd.Spawns = e.Spawns
	syncCursorEntities(ecs, e)

	if ed.StatusTTL > 0 {
		ed.StatusTTL--
		if ed.StatusTTL == 0 {
			ed.Status = ""
		}
	}
}

func setStatus(ed *components.EditorData, msg string) {
	ed.Status = msg
	ed.StatusTTL = statusFrames
}

func syncCursorEntities(ecs *ecs.ECS, e *editor.Editor) {
	tags.Cursor.Each(ecs.World, func(entry *donburi.Entry) {
		kind := components.Cursor.Get(entry).Kind
		components.Visibility.Get(entry).Visible = e.Cursors[kind].Visible
	})
}

// DrawEditorCursors outlines every visible cursor cell.
func DrawEditorCursors(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Editor.First(ecs.World)
	if !ok {
		return
	}
	e := components.Editor.Get(entry).Editor
	s := float32(e.Board.Scale)

	tags.Cursor.Each(ecs.World, func(c *donburi.Entry) {
		if !components.Visibility.Get(c).Visible {
			return
		}
		kind := components.Cursor.Get(c).Kind
		cur := e.Cursors[kind]
		if !e.Board.InGrid(cur.X, cur.Y) {
			return
		}
		clr := cfg.Editor.MirrorColor
		if kind == editor.CursorNormal {
			clr = cfg.Editor.CursorColor
		}
		vector.StrokeRect(screen, float32(cur.X)*s, float32(cur.Y)*s, s, s, 3, clr, false)
	})
}

// DrawEditorStatus shows the selected tile, the symmetry flags and the last
// status message along the bottom edge.
func DrawEditorStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Editor.First(ecs.World)
	if !ok {
		return
	}
	ed := components.Editor.Get(entry)
	line := editorStatusLine(ed)

	face := fonts.HUD.Get()
	y := screen.Bounds().Dy() - hudMargin
	vector.FillRect(screen, 0, float32(y-hudLineHeight), float32(screen.Bounds().Dx()), float32(hudLineHeight+hudMargin), cfg.BlackOverlay, false)
	text.Draw(screen, line, face, hudMargin, y, cfg.UI.HUDTextColor)
}

func editorStatusLine(ed *components.EditorData) string {
	e := ed.Editor
	flag := func(on bool, name string) string {
		if on {
			return name
		}
		return "-"
	}
	line := fmt.Sprintf("tile %s  sym %s%s%s  spawns %d",
		e.CurrentTile().Name,
		flag(e.Symmetry.X, "X"), flag(e.Symmetry.Y, "Y"), flag(e.Symmetry.Point, "P"),
		len(e.Spawns))
	if ed.Status != "" {
		line += "  " + ed.Status
	}
	return line
}
