package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DestructibleSystem applies projectile hits to barrels and crates.
type DestructibleSystem struct {
	ecs     *ecs.ECS
	effects *EffectSystem
	sound   SoundPlayer
}

func NewDestructibleSystem(e *ecs.ECS, effects *EffectSystem, sound SoundPlayer) *DestructibleSystem {
	return &DestructibleSystem{ecs: e, effects: effects, sound: sound}
}

// HitDestructible takes one point of damage off the object's entity. At zero
// the entity is removed, and explosive ones blow up on the next tick.
func (s *DestructibleSystem) HitDestructible(obj *resolv.Object) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Destructible) {
		return
	}

	d := components.Destructible.Get(entry)
	d.HP--
	if entry.HasComponent(components.Flash) {
		components.Flash.Get(entry).Duration = cfg.Pickup.HitFlash
	}
	if d.HP > 0 {
		return
	}

	x, y := obj.X+obj.W/2, obj.Y+obj.H/2
	if d.Explosive {
		s.effects.QueueExplosion(x, y)
		TriggerScreenShake(s.ecs, cfg.ScreenShake.ExplosionIntensity, cfg.ScreenShake.ExplosionDuration)
		s.sound.Play(cfg.SoundExplosion)
	}
	logger.Log.Debug("destructible broken",
		zap.Float64("x", x), zap.Float64("y", y), zap.Bool("explosive", d.Explosive))
	removeWithObject(entry)
}

// UpdateFlash counts down hit flashes.
func UpdateFlash(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}
