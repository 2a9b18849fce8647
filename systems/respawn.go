package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Respawner returns the player to the last spawn point after a fall out of
// the map, clearing everything still in flight.
type Respawner struct {
	Projectiles *ProjectileSystem
	Effects     *EffectSystem
	Camera      *CameraController
}

// NewUpdateRespawn returns the system that watches for the player dropping
// below the map.
func NewUpdateRespawn(r *Respawner) ecs.System {
	return func(e *ecs.ECS) {
		level, ok := currentLevel(e)
		if !ok {
			return
		}
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		obj := components.Object.Get(playerEntry)
		if obj.Y <= float64(level.CurrentLevel.Height)+cfg.Physics.FallMargin {
			return
		}

		logger.Log.Info("player fell out of the level",
			zap.String("level", level.CurrentLevel.Name), zap.Float64("y", obj.Y))
		r.Respawn(e, playerEntry)
	}
}

// Respawn places the player's feet on its spawn point.
func (r *Respawner) Respawn(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H
	obj.Update()
	*physics = components.PhysicsData{}

	cx, cy := obj.Centre()
	player.Rig.Reset(cx, cy)

	if r.Projectiles != nil {
		r.Projectiles.Clear()
	}
	if r.Effects != nil {
		r.Effects.Clear()
	}
	if r.Camera != nil {
		r.Camera.Snap(playerBounds(playerEntry))
	}
	ResetMessageState(e)
}
