package factory

import (
	"github.com/automoto/unexplored/archetypes"
	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	levels := assets.NewLevelLoader().MustLoadLevels()
	return CreateLevel(ecs, levels, levelIndex)
}

// CreateLevel makes the level entity from already loaded levels. Out of range
// indexes fall back to the first level.
func CreateLevel(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:     levels,
		LevelIndex: levelIndex,
	}
	if len(levels) > 0 {
		levelData.CurrentLevel = &levels[levelIndex]
	}
	components.Level.Set(level, levelData)

	return level
}

// PopulateLevel creates the collision and pickup entities described by the
// level. The space must already exist.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level, sprites Sprites) {
	for _, r := range level.SolidTiles {
		CreateWall(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Ladders {
		CreateLadder(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, c := range level.Coins {
		CreateCoin(ecs, c, sprites.Coin)
	}
	for _, d := range level.Destructibles {
		CreateDestructible(ecs, d, sprites.Barrel)
	}
	for _, c := range level.Checkpoints {
		CreateCheckpoint(ecs, c)
	}
	for _, g := range level.Goals {
		CreateGoal(ecs, g)
	}
	for _, h := range level.Hints {
		CreateHint(ecs, h)
	}
}
