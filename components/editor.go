package components

import (
	"github.com/yohamta/donburi"

	"github.com/distracted-programming/tanks/editor"
)

// EditorData holds the map being edited and the last status line.
type EditorData struct {
	Editor    *editor.Editor
	Status    string
	StatusTTL int // frames left before Status is cleared
	Quit      bool
}

var Editor = donburi.NewComponentType[EditorData]()

// CursorData marks one of the editor's four cursor entities.
type CursorData struct {
	Kind editor.CursorKind
}

var Cursor = donburi.NewComponentType[CursorData]()
