package systems

import (
	"math"

	"github.com/automoto/unexplored/components"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by its speed and stops it against solids,
// one axis at a time.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
		obj.Update()
	})
}

// resolveHorizontalCollision handles horizontal movement and wall collision
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if contact, wall := contactDistance(object, check, dx, 0); wall != nil {
		physics.SpeedX = 0
		dx = contact
	}
	object.X += dx
}

// resolveVerticalCollision handles vertical movement, landing and head bumps
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// Probe one pixel further down so a resting body keeps its ground.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	contact, solid := contactDistance(object, check, 0, checkDistance)
	if solid == nil {
		object.Y += dy
		return
	}
	if dy >= 0 {
		physics.OnGround = solid
		dy = math.Min(dy, contact)
	} else {
		dy = contact
	}
	physics.SpeedY = 0
	object.Y += dy
}

// contactDistance returns how far the object can travel along (dx, dy)
// before touching the nearest solid it would overlap at the end of the move,
// and that solid. Only one of dx and dy may be non-zero.
func contactDistance(object *resolv.Object, check *resolv.Collision, dx, dy float64) (float64, *resolv.Object) {
	var nearest *resolv.Object
	best := dx + dy
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if !components.OverlapsAt(object, dx, dy, s) {
			continue
		}
		contact := check.ContactWithObject(s)
		d := contact.X()
		if dx == 0 {
			d = contact.Y()
		}
		if nearest == nil || math.Abs(d) < math.Abs(best) {
			best, nearest = d, s
		}
	}
	return best, nearest
}
