package systems

import (
	"github.com/automoto/unexplored/components"
	"github.com/automoto/unexplored/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGoal returns the system that completes the level when the player
// touches the goal. onReached runs once with the final score.
func NewUpdateGoal(onReached func(score int)) ecs.System {
	return func(e *ecs.ECS) {
		complete := GetOrCreateLevelComplete(e)
		if complete.IsComplete {
			return
		}

		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		playerObj := components.Object.Get(playerEntry)

		check := playerObj.Check(0, 0, tags.ResolvGoal)
		if check == nil {
			return
		}
		for _, o := range check.ObjectsByTags(tags.ResolvGoal) {
			if !playerObj.Overlaps(o) {
				continue
			}
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || entry == nil {
				continue
			}
			components.Goal.Get(entry).Activated = true
			complete.IsComplete = true

			score := 0
			if level, ok := currentLevel(e); ok {
				score = level.Score
			}
			onReached(score)
			return
		}
	}
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component.
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}
