package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/archetypes"
	"github.com/distracted-programming/tanks/components"
	"github.com/distracted-programming/tanks/editor"
)

// CreateEditor spawns the editor state and one entity per cursor.
func CreateEditor(ecs *ecs.ECS, ed *editor.Editor) *donburi.Entry {
	entry := archetypes.Editor.Spawn(ecs)
	components.Editor.SetValue(entry, components.EditorData{Editor: ed})

	for i := range ed.Cursors {
		c := archetypes.Cursor.Spawn(ecs)
		components.Cursor.SetValue(c, components.CursorData{Kind: editor.CursorKind(i)})
		components.Visibility.SetValue(c, components.VisibilityData{Visible: ed.Cursors[i].Visible})
	}
	return entry
}
