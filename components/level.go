package components

import (
	"github.com/automoto/unexplored/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel     *assets.Level
	LevelIndex       int
	Levels           []assets.Level
	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
	Score            int
}

var Level = donburi.NewComponentType[LevelData]()
