package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the rig's intent to the body: walking, running,
// jumping, climbing and gravity. Collisions are resolved afterwards.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Both queries look at the body before it moves this tick.
		physics.OnLadder = isOnLadder(obj.Object)
		physics.CanJump = canJump(obj.Object, cfg.Player.JumpProbe)

		intent := player.Rig.Intent()
		applyIntent(physics, intent.MoveX, intent.MoveY, intent.Sprinting, intent.JumpRequested)
	})
}

func applyIntent(physics *components.PhysicsData, moveX, moveY float64, sprinting, jump bool) {
	speed := cfg.Player.WalkSpeed
	if sprinting {
		speed = cfg.Player.RunSpeed
	}
	physics.SpeedX = moveX * speed

	if physics.OnLadder {
		// No gravity on a ladder. The body hangs unless climbing.
		physics.SpeedY = moveY * cfg.Player.ClimbSpeed
		return
	}

	if jump && physics.CanJump {
		physics.SpeedY = -cfg.Player.JumpSpeed
	}
	physics.SpeedY += cfg.Physics.Gravity
	if physics.SpeedY > cfg.Physics.MaxFallSpeed {
		physics.SpeedY = cfg.Physics.MaxFallSpeed
	}
}

// isOnLadder reports whether the body overlaps a ladder.
func isOnLadder(obj *resolv.Object) bool {
	return overlapping(obj, tags.ResolvLadder) != nil
}

// canJump reports whether a floor or ladder lies within probe pixels below the feet.
func canJump(obj *resolv.Object, probe float64) bool {
	check := obj.Check(0, probe, tags.ResolvSolid, tags.ResolvLadder)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvLadder) {
		if components.OverlapsAt(obj, 0, probe, o) {
			return true
		}
	}
	return false
}
