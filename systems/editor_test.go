package systems

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/editor"
	"github.com/distracted-programming/tanks/systems/factory"
	"github.com/distracted-programming/tanks/tags"
)

func newEditorWorld(t *testing.T) (*ecs.ECS, *components.EditorData, *components.BoardData) {
	t.Helper()
	ed, err := editor.New(16, 12, 50, []board.Tile{grass, wall}, 45)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	bEntry := factory.CreateBoard(e, ed.Board, nil, map[string]color.RGBA{"grass": {G: 200, A: 255}})
	eEntry := factory.CreateEditor(e, ed)
	return e, components.Editor.Get(eEntry), components.Board.Get(bEntry)
}

func cursorVisibility(e *ecs.ECS) map[editor.CursorKind]bool {
	out := map[editor.CursorKind]bool{}
	tags.Cursor.Each(e.World, func(entry *donburi.Entry) {
		out[components.Cursor.Get(entry).Kind] = components.Visibility.Get(entry).Visible
	})
	return out
}

func TestEditorSystem_SymmetryPaint(t *testing.T) {
	e, ed, bd := newEditorWorld(t)
	bd.Dirty = false

	ApplyEditorCommands(e, EditorCommands{MouseX: 125, MouseY: 60, ToggleX: true, CycleTile: true, Paint: true})

	assert.Equal(t, wall, ed.Editor.Board.At(2, 1))
	assert.Equal(t, wall, ed.Editor.Board.At(13, 1))
	assert.Equal(t, grass, ed.Editor.Board.At(2, 10))
	assert.True(t, bd.Dirty)
	assert.Equal(t, "tile: wall", ed.Status)

	vis := cursorVisibility(e)
	assert.True(t, vis[editor.CursorNormal])
	assert.True(t, vis[editor.CursorX])
	assert.False(t, vis[editor.CursorY])
	assert.False(t, vis[editor.CursorPoint])

	ApplyEditorCommands(e, EditorCommands{MouseX: 125, MouseY: 60, TogglePoint: true})
	vis = cursorVisibility(e)
	assert.False(t, vis[editor.CursorX])
	assert.True(t, vis[editor.CursorPoint])
}

func TestEditorSystem_OffBoardPaintIgnored(t *testing.T) {
	e, ed, bd := newEditorWorld(t)
	bd.Dirty = false

	ApplyEditorCommands(e, EditorCommands{MouseX: 900, MouseY: 60, Paint: true, ToggleSpawn: true})

	assert.False(t, bd.Dirty)
	assert.Empty(t, ed.Editor.Spawns)
	assert.False(t, cursorVisibility(e)[editor.CursorNormal])
}

func TestEditorSystem_SpawnsSaveLoad(t *testing.T) {
	old := cfg.Editor.SaveFile
	cfg.Editor.SaveFile = filepath.Join(t.TempDir(), "save.json")
	t.Cleanup(func() { cfg.Editor.SaveFile = old })

	e, ed, bd := newEditorWorld(t)
	at := EditorCommands{MouseX: 210, MouseY: 210}

	cmd := at
	cmd.ToggleSpawn = true
	ApplyEditorCommands(e, cmd)
	cmd = at
	cmd.RotateSpawn = true
	ApplyEditorCommands(e, cmd)
	require.Equal(t, []board.SpawnPoint{{X: 4, Y: 4, Angle: 45}}, bd.Spawns)

	cmd = at
	cmd.Save = true
	ApplyEditorCommands(e, cmd)
	assert.Contains(t, ed.Status, "saved")

	cmd = at
	cmd.ToggleSpawn = true
	ApplyEditorCommands(e, cmd)
	require.Empty(t, bd.Spawns)

	cmd = at
	cmd.Load = true
	ApplyEditorCommands(e, cmd)
	assert.Contains(t, ed.Status, "loaded")
	assert.Equal(t, []board.SpawnPoint{{X: 4, Y: 4, Angle: 45}}, bd.Spawns)
	assert.Same(t, ed.Editor.Board, bd.Board)
}

func TestEditorSystem_QuitAndStatusLine(t *testing.T) {
	e, ed, _ := newEditorWorld(t)

	ApplyEditorCommands(e, EditorCommands{ToggleY: true, Quit: true})
	assert.True(t, ed.Quit)
	assert.Equal(t, "tile grass  sym -Y-  spawns 0", editorStatusLine(ed))

	ed.Status, ed.StatusTTL = "hello", 1
	ApplyEditorCommands(e, EditorCommands{})
	assert.Empty(t, ed.Status)
}
