package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object
	OnLadder bool
	// CanJump is true when a floor or ladder is within the jump probe below the feet.
	CanJump bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
