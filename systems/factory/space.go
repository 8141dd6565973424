package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to its entry and registers it with the level space.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newRectObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
