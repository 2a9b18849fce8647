package scenes

import (
	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/rig"
	"github.com/automoto/unexplored/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services are shared by every scene for the life of the process.
type Services struct {
	Changer SceneChanger
	Audio   *systems.AudioRegistry
	Levels  []assets.Level
	// RigParts are the player's images and offset tables, loaded at startup.
	RigParts *rig.Parts[*ebiten.Image]
	// LevelIndex is the level a new game starts in.
	LevelIndex int
	Quit       func()
}
