package components

import (
	"github.com/automoto/unexplored/rig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Rig *rig.CharacterRig[*ebiten.Image]
	// Aim target in world pixels.
	AimX, AimY float64
	// Feet position the player returns to after falling out of the map.
	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
