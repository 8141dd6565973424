package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, wall, newRectObject(x, y, w, h, tags.ResolvSolid))
	return wall
}
