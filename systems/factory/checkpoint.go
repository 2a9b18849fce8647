package factory

import (
	"github.com/automoto/unexplored/archetypes"
	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/components"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint. Its respawn point is the bottom
// centre of the area, where the player's feet go.
func CreateCheckpoint(ecs *ecs.ECS, c assets.CheckpointSpawn) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	addObject(ecs, checkpoint, resolv.NewObject(c.X, c.Y, c.Width, c.Height, tags.ResolvCheckpoint))

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: c.CheckpointID,
		SpawnX:       c.X + c.Width/2,
		SpawnY:       c.Y + c.Height,
	})
	return checkpoint
}

func CreateGoal(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	addObject(ecs, goal, resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvGoal))
	return goal
}

// CreateHint places a message at the centre of the hint area.
func CreateHint(ecs *ecs.ECS, h assets.HintSpawn) *donburi.Entry {
	hint := archetypes.Hint.Spawn(ecs)
	components.Hint.SetValue(hint, components.HintData{
		Text: h.Text,
		X:    h.X + h.Width/2,
		Y:    h.Y + h.Height/2,
	})
	return hint
}
