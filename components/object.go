package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the collision space. obj.Data points
// back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the level's collision space (singleton).
var Space = donburi.NewComponentType[resolv.Space]()
