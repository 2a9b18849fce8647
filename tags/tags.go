package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Wall         = donburi.NewTag().SetName("Wall")
	Ladder       = donburi.NewTag().SetName("Ladder")
	Coin         = donburi.NewTag().SetName("Coin")
	Destructible = donburi.NewTag().SetName("Destructible")
	Checkpoint   = donburi.NewTag().SetName("Checkpoint")
	Goal         = donburi.NewTag().SetName("Goal")
	Hint         = donburi.NewTag().SetName("Hint")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvLadder       = "ladder"
	ResolvPlayer       = "Player"
	ResolvProjectile   = "projectile"
	ResolvDestructible = "destructible"
	ResolvCoin         = "coin"
	ResolvCheckpoint   = "checkpoint"
	ResolvGoal         = "goal"
)
