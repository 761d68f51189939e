package components

import "github.com/yohamta/donburi"

// VisibilityData hides an entity from the renderers without removing it.
type VisibilityData struct {
	Visible bool
}

var Visibility = donburi.NewComponentType[VisibilityData]()
