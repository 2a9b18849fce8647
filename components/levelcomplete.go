package components

import "github.com/yohamta/donburi"

// LevelCompleteData is set once the player reaches the goal. Gameplay stops
// while the screen fades out to the win scene.
type LevelCompleteData struct {
	IsComplete bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
