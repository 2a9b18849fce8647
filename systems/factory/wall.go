package factory

import (
	"github.com/automoto/unexplored/archetypes"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addObject(ecs, wall, resolv.NewObject(x, y, w, h, tags.ResolvSolid))
	return wall
}

// CreateLadder creates a climbable area. Ladders do not block movement.
func CreateLadder(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	addObject(ecs, ladder, resolv.NewObject(x, y, w, h, tags.ResolvLadder))
	return ladder
}
